package views

import (
	"github.com/charmbracelet/lipgloss"

	"todotui/internal/model"
)

// Exactly one of the two palettes is active at a time; the theme
// controller swaps them on every resolution.

type palette struct {
	header lipgloss.Color
	accent lipgloss.Color
	muted  lipgloss.Color
	done   lipgloss.Color
	errFg  lipgloss.Color
	border lipgloss.Color
	footer lipgloss.Color
}

var (
	lightPalette = palette{
		header: lipgloss.Color("25"),  // deep blue
		accent: lipgloss.Color("28"),  // green
		muted:  lipgloss.Color("245"),
		done:   lipgloss.Color("247"),
		errFg:  lipgloss.Color("124"),
		border: lipgloss.Color("250"),
		footer: lipgloss.Color("244"),
	}
	darkPalette = palette{
		header: lipgloss.Color("12"),
		accent: lipgloss.Color("10"),
		muted:  lipgloss.Color("243"),
		done:   lipgloss.Color("240"),
		errFg:  lipgloss.Color("9"),
		border: lipgloss.Color("238"),
		footer: lipgloss.Color("8"),
	}
)

type styleSet struct {
	header lipgloss.Style
	status lipgloss.Style
	errTxt lipgloss.Style
	panel  lipgloss.Style
	footer lipgloss.Style
	task   lipgloss.Style
	done   lipgloss.Style
	cursor lipgloss.Style
	muted  lipgloss.Style
}

var (
	activeTheme = model.ThemeLight
	styles      = buildStyles(lightPalette)
)

func buildStyles(p palette) styleSet {
	return styleSet{
		header: lipgloss.NewStyle().Bold(true).Foreground(p.header),
		status: lipgloss.NewStyle().Foreground(p.accent),
		errTxt: lipgloss.NewStyle().Foreground(p.errFg),
		panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		footer: lipgloss.NewStyle().Foreground(p.footer),
		task:   lipgloss.NewStyle(),
		done:   lipgloss.NewStyle().Strikethrough(true).Foreground(p.done),
		cursor: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		muted:  lipgloss.NewStyle().Foreground(p.muted),
	}
}

// SetTheme activates the palette for the given theme.
func SetTheme(t model.Theme) {
	if !t.IsValid() {
		return
	}
	activeTheme = t
	if t == model.ThemeDark {
		styles = buildStyles(darkPalette)
		return
	}
	styles = buildStyles(lightPalette)
}

func ActiveTheme() model.Theme {
	return activeTheme
}

// ThemeApplier satisfies the theme controller's Applier interface.
type ThemeApplier struct{}

func (ThemeApplier) Apply(t model.Theme) {
	SetTheme(t)
}
