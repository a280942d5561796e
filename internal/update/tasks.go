package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/commands"
)

func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit

	case "/":
		m.Palette.Active = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{}
		return m, nil

	case m.Keys.Add:
		return m.enterCaptureMode(""), nil

	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil

	case m.Keys.Theme:
		next := m.Themes.Toggle()
		m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", next)}
		return m, nil

	case m.Keys.Toggle, " ":
		if task, ok := m.selectedTask(); ok {
			m.Engine.ToggleComplete(task.ID)
		}
		return m, nil

	case m.Keys.Delete:
		if task, ok := m.selectedTask(); ok {
			m.Engine.Delete(task.ID)
			m.Status = StatusBar{Text: fmt.Sprintf("deleted task %d", task.ID)}
		}
		return m.clampCursor(), nil

	case m.Keys.Edit, "enter":
		if task, ok := m.selectedTask(); ok {
			m.Engine.BeginEdit(task.ID)
			m.editInput.SetValue(task.Text)
			m.editInput.CursorEnd()
			m.editInput.Focus()
		}
		return m, nil

	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case "down", "j":
		if m.Cursor < m.Engine.Len()-1 {
			m.Cursor++
		}
		return m, nil
	}

	// Any other printable key starts a quick add seeded with it.
	if msg.Type == tea.KeyRunes {
		return m.enterCaptureMode(string(msg.Runes)), nil
	}
	return m, nil
}

func (m Model) enterCaptureMode(seed string) Model {
	m.CaptureMode = true
	m.quickAddInput.SetValue(seed)
	m.quickAddInput.CursorEnd()
	m.quickAddInput.Focus()
	return m
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.CaptureMode = false
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		return m

	case "enter":
		text := m.quickAddInput.Value()
		before := m.Engine.Len()
		m.Engine.Add(text)
		if m.Engine.Len() > before {
			m.Cursor = m.Engine.Len() - 1
			m.Status = StatusBar{Text: "task added"}
		} else {
			m.Status = StatusBar{Text: "empty task ignored"}
		}
		m.CaptureMode = false
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		return m
	}

	m.quickAddInput, _ = m.quickAddInput.Update(msg)
	return m
}

func (m Model) handleEditKey(msg tea.KeyMsg) Model {
	session, _ := m.Engine.Editing()

	switch msg.String() {
	case "esc":
		m.Engine.CancelEdit()
		m.editInput.Blur()
		m.Status = StatusBar{Text: "edit canceled"}
		return m

	case "enter":
		m.Engine.SetEditText(m.editInput.Value())
		m.Engine.SaveEdit(session.TaskID)
		if _, still := m.Engine.Editing(); still {
			m.Status = StatusBar{Text: "task text cannot be empty"}
			return m
		}
		m.editInput.Blur()
		m.Status = StatusBar{Text: fmt.Sprintf("updated task %d", session.TaskID)}
		return m
	}

	m.editInput, _ = m.editInput.Update(msg)
	m.Engine.SetEditText(m.editInput.Value())
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m, nil

	case "enter":
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m.executePaletteCommand(input)
	}

	m.commandInput, _ = m.commandInput.Update(msg)
	return m, nil
}

// executePaletteCommand runs the palette input against the engine and
// reports the outcome as a SetStatusMsg or AppErrorMsg.
func (m Model) executePaletteCommand(input string) (Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		return m, reportErrorCmd(err)
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			before := m.Engine.Len()
			m.Engine.Add(a.Text)
			if m.Engine.Len() == before {
				return commands.Result{Message: "empty task ignored"}, nil
			}
			m.Cursor = m.Engine.Len() - 1
			return commands.Result{Message: "task added"}, nil
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			if !m.taskExists(a.ID) {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("no task with id %d", a.ID),
				}
			}
			m.Engine.ToggleComplete(a.ID)
			return commands.Result{Message: fmt.Sprintf("toggled task %d", a.ID)}, nil
		},
		Remove: func(a commands.RemoveArgs) (commands.Result, error) {
			if !m.taskExists(a.ID) {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("no task with id %d", a.ID),
				}
			}
			m.Engine.Delete(a.ID)
			return commands.Result{Message: fmt.Sprintf("deleted task %d", a.ID)}, nil
		},
		Theme: func() (commands.Result, error) {
			next := m.Themes.Toggle()
			return commands.Result{Message: fmt.Sprintf("theme: %s", next)}, nil
		},
	})
	if err != nil {
		return m.clampCursor(), reportErrorCmd(err)
	}
	return m.clampCursor(), setStatusCmd(res.Message)
}

func (m Model) taskExists(id int64) bool {
	for _, t := range m.Engine.Tasks() {
		if t.ID == id {
			return true
		}
	}
	return false
}
