package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID        int64
	Text      string
	Completed bool
	Selected  bool
	Editing   bool
}

type TaskPanelData struct {
	Items        []TaskItemData
	QuickAddView string
	CaptureMode  bool
	EditView     string
}

type SocialLinkData struct {
	Name string
	URL  string
}

type CreditsData struct {
	Links       []SocialLinkData
	Pending     bool
	SpinnerView string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if data.CaptureMode {
		b.WriteString(data.QuickAddView + "\n")
	}
	b.WriteString("actions: [a]add [e]edit [x]toggle [d]delete [t]theme [/]cmd\n")

	if len(data.Items) == 0 {
		b.WriteString("  (no tasks yet)\n")
		return strings.TrimSpace(b.String())
	}

	for _, item := range data.Items {
		cursor := " "
		if item.Selected {
			cursor = styles.cursor.Render(">")
		}
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}

		if item.Editing {
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, data.EditView))
			continue
		}

		line := fmt.Sprintf("#%d %s", item.ID, item.Text)
		if item.Completed {
			line = styles.done.Render(line)
		} else {
			line = styles.task.Render(line)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, line))
	}
	return strings.TrimSpace(b.String())
}

func RenderCreditsFooter(data CreditsData) string {
	if data.Pending {
		return styles.muted.Render("credits: " + data.SpinnerView + " loading")
	}
	if len(data.Links) == 0 {
		return ""
	}
	parts := make([]string, 0, len(data.Links))
	for _, link := range data.Links {
		parts = append(parts, fmt.Sprintf("%s <%s>", link.Name, link.URL))
	}
	return styles.muted.Render("find me on: " + strings.Join(parts, " | "))
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}
