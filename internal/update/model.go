// Package update wires the task list, theme controller and credits
// client into the terminal event loop.
package update

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"todotui/internal/credits"
	"todotui/internal/engine"
	"todotui/internal/model"
	"todotui/internal/theme"
)

// StatusBar holds the transient message under the task panel.
type StatusBar struct {
	Text    string
	IsError bool
}

// GlobalKeyMap maps actions to their key strings so the handlers and
// the footer hint stay in sync.
type GlobalKeyMap struct {
	Add    string
	Edit   string
	Toggle string
	Delete string
	Theme  string
	Help   string
	Quit   string
}

func DefaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Add:    "a",
		Edit:   "e",
		Toggle: "x",
		Delete: "d",
		Theme:  "t",
		Help:   "?",
		Quit:   "q",
	}
}

// CommandPaletteState tracks the "/" command input.
type CommandPaletteState struct {
	Active bool
	Input  string
}

// Deps carries the long-lived collaborators into NewModel. Credits may
// be nil when no endpoint is configured.
type Deps struct {
	Engine  *engine.List
	Themes  *theme.Controller
	Credits *credits.Client
	Logger  *log.Logger
}

type Model struct {
	Engine  *engine.List
	Themes  *theme.Controller
	Credits *credits.Client

	Links          model.SocialLinks
	CreditsPending bool

	Cursor      int
	CaptureMode bool
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool

	logger *log.Logger

	quickAddInput textinput.Model
	editInput     textinput.Model
	commandInput  textinput.Model
	fetchSpinner  spinner.Model
}

func NewModel(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		Engine:         deps.Engine,
		Themes:         deps.Themes,
		Credits:        deps.Credits,
		CreditsPending: deps.Credits != nil,
		Keys:           DefaultKeyMap(),
		logger:         logger,
	}
	m.initComponents()
	return m
}

func (m *Model) initComponents() {
	quick := textinput.New()
	quick.Placeholder = "what needs doing?"
	quick.CharLimit = 200
	quick.Width = 40
	m.quickAddInput = quick

	edit := textinput.New()
	edit.CharLimit = 200
	edit.Width = 40
	m.editInput = edit

	command := textinput.New()
	command.Placeholder = "add buy milk | done 2 | rm 3 | theme"
	command.CharLimit = 200
	command.Width = 40
	m.commandInput = command

	m.fetchSpinner = spinner.New(spinner.WithSpinner(spinner.Dot))
}

func (m Model) selectedTask() (model.Task, bool) {
	tasks := m.Engine.Tasks()
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m Model) clampCursor() Model {
	last := m.Engine.Len() - 1
	if m.Cursor > last {
		m.Cursor = last
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	return m
}
