package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/credits"
	"todotui/internal/model"
	"todotui/internal/views"
)

// statusTTL is how long a status line stays up before it is cleared.
const statusTTL = 4 * time.Second

type CreditsLoadedMsg struct {
	Links model.SocialLinks
}

type CreditsFailedMsg struct {
	Err error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func fetchCreditsCmd(client *credits.Client) tea.Cmd {
	return func() tea.Msg {
		links, err := client.Fetch(context.Background())
		if err != nil {
			return CreditsFailedMsg{Err: err}
		}
		return CreditsLoadedMsg{Links: links}
	}
}

func setStatusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return SetStatusMsg{Text: text}
	}
}

func reportErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return AppErrorMsg{Err: err}
	}
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

func (m Model) Init() tea.Cmd {
	if m.Credits == nil {
		return nil
	}
	return tea.Batch(m.fetchSpinner.Tick, fetchCreditsCmd(m.Credits))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)

	case spinner.TickMsg:
		if !m.CreditsPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.fetchSpinner, cmd = m.fetchSpinner.Update(typed)
		return m, cmd

	case CreditsLoadedMsg:
		m.CreditsPending = false
		m.Links = typed.Links
		return m, nil

	case CreditsFailedMsg:
		// The footer is decorative, so a failed fetch never reaches
		// the status bar.
		m.CreditsPending = false
		m.logger.Warn("credits fetch failed", "err", typed.Err)
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, clearStatusCmd()

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.logger.Error("command failed", "err", typed.Err)
		m.Status = StatusBar{Text: "error: " + typed.Err.Error(), IsError: true}
		return m, clearStatusCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	prev := m.Status
	next, cmd := m.dispatchKey(msg)
	// A status set directly by a key handler expires the same way as
	// one delivered by SetStatusMsg.
	if next.Status != prev && next.Status.Text != "" {
		cmd = tea.Batch(cmd, clearStatusCmd())
	}
	return next, cmd
}

func (m Model) dispatchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if _, editing := m.Engine.Editing(); editing {
		return m.handleEditKey(msg), nil
	}
	if m.CaptureMode {
		return m.handleCaptureKey(msg), nil
	}
	return m.handleGlobalKey(msg)
}

func (m Model) View() string {
	if m.Quitting {
		return "bye\n"
	}

	session, editing := m.Engine.Editing()
	tasks := m.Engine.Tasks()
	items := make([]views.TaskItemData, 0, len(tasks))
	for i, t := range tasks {
		items = append(items, views.TaskItemData{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Selected:  i == m.Cursor,
			Editing:   editing && t.ID == session.TaskID,
		})
	}

	left := views.RenderTaskPanel(views.TaskPanelData{
		Items:        items,
		QuickAddView: m.quickAddInput.View(),
		CaptureMode:  m.CaptureMode,
		EditView:     m.editInput.View(),
	})

	right := views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value())
	if m.HelpVisible {
		if right != "" {
			right += "\n"
		}
		right += views.RenderMarkdown(helpMarkdown)
	}

	header := fmt.Sprintf("todotui | %d tasks | theme: %s", m.Engine.Len(), m.Themes.Current())

	footerLines := []string{m.footerHint()}
	if m.CreditsPending || !m.Links.IsEmpty() {
		if footer := views.RenderCreditsFooter(views.CreditsData{
			Links:       creditLinks(m.Links),
			Pending:     m.CreditsPending,
			SpinnerView: m.fetchSpinner.View(),
		}); footer != "" {
			footerLines = append(footerLines, footer)
		}
	}

	return views.RenderApp(views.AppData{
		Header:        header,
		LeftPane:      left,
		RightPane:     right,
		StatusLine:    m.Status.Text,
		StatusIsError: m.Status.IsError,
		Footer:        strings.Join(footerLines, "\n"),
	})
}

func (m Model) footerHint() string {
	k := m.Keys
	return fmt.Sprintf("%s add  %s edit  %s toggle  %s delete  %s theme  / command  %s help  %s quit",
		k.Add, k.Edit, k.Toggle, k.Delete, k.Theme, k.Help, k.Quit)
}

func creditLinks(links model.SocialLinks) []views.SocialLinkData {
	pairs := links.Pairs()
	out := make([]views.SocialLinkData, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, views.SocialLinkData{Name: p.Name, URL: p.URL})
	}
	return out
}

const helpMarkdown = `# todotui

A keyboard-driven task list.

## Keys

- ` + "`a`" + ` or start typing: add a task
- ` + "`e`" + ` or ` + "`enter`" + `: edit the selected task
- ` + "`x`" + ` or ` + "`space`" + `: toggle completion
- ` + "`d`" + `: delete the selected task
- ` + "`t`" + `: switch between light and dark theme
- ` + "`/`" + `: open the command palette (add, done, rm, theme)
- ` + "`j`" + `/` + "`k`" + ` or arrows: move the cursor
- ` + "`q`" + `: quit

Edits save on ` + "`enter`" + ` and cancel on ` + "`esc`" + `. Empty text is
never saved.
`
