package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header        string
	LeftPane      string
	RightPane     string
	StatusLine    string
	StatusIsError bool
	Footer        string
}

func RenderApp(data AppData) string {
	left := styles.panel.Width(58).Render(data.LeftPane)

	row := left
	if strings.TrimSpace(data.RightPane) != "" {
		right := styles.panel.Width(58).Render(data.RightPane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	status := styles.status.Render(data.StatusLine)
	if data.StatusIsError {
		status = styles.errTxt.Render(data.StatusLine)
	}

	lines := []string{
		styles.header.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, styles.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders help text with the glamour style matching the
// active theme.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, string(activeTheme))
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
