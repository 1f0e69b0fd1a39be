package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the lipgloss styles used by every view. Styles are built
// once at startup; views only read them.
type Theme struct {
	Name string

	TopBar    lipgloss.Style
	TopBarKey lipgloss.Style
	Footer    lipgloss.Style

	Pane       lipgloss.Style
	PaneUnfoc  lipgloss.Style
	InputFocus lipgloss.Style
	InputBlur  lipgloss.Style

	UserLabel  lipgloss.Style
	ModelLabel lipgloss.Style
	Pending    lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	TypeBadge    lipgloss.Style

	Notice  lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Spinner lipgloss.Style
}

// NewTheme picks a theme from the environment. ASH_THEME selects
// "porcelain" or "midnight"; ASH_NO_COLOR (or NO_COLOR) strips color
// entirely for dumb terminals and piped output.
func NewTheme() Theme {
	if os.Getenv("ASH_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		return noColorTheme()
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ASH_THEME"))) {
	case "porcelain", "light":
		return porcelainTheme()
	default:
		return midnightTheme()
	}
}

func midnightTheme() Theme {
	accent := lipgloss.Color("75")
	dim := lipgloss.Color("241")
	warn := lipgloss.Color("214")
	bad := lipgloss.Color("203")

	return Theme{
		Name: "midnight",

		TopBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
		TopBarKey: lipgloss.NewStyle().Foreground(accent).Background(lipgloss.Color("236")).Bold(true),
		Footer:    lipgloss.NewStyle().Foreground(dim),

		Pane:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		PaneUnfoc:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 1),
		InputFocus: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent),
		InputBlur:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim),

		UserLabel:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		ModelLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		Pending:    lipgloss.NewStyle().Foreground(dim).Italic(true),

		ListItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ListSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24")).Bold(true),
		TypeBadge:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(accent).Padding(0, 1),

		Notice:  lipgloss.NewStyle().Foreground(bad).Border(lipgloss.RoundedBorder()).BorderForeground(bad).Padding(0, 1),
		Warning: lipgloss.NewStyle().Foreground(warn),
		Muted:   lipgloss.NewStyle().Foreground(dim),
		Spinner: lipgloss.NewStyle().Foreground(accent),
	}
}

func porcelainTheme() Theme {
	accent := lipgloss.Color("25")
	dim := lipgloss.Color("245")
	warn := lipgloss.Color("130")
	bad := lipgloss.Color("124")

	return Theme{
		Name: "porcelain",

		TopBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("253")).Padding(0, 1),
		TopBarKey: lipgloss.NewStyle().Foreground(accent).Background(lipgloss.Color("253")).Bold(true),
		Footer:    lipgloss.NewStyle().Foreground(dim),

		Pane:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		PaneUnfoc:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 1),
		InputFocus: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent),
		InputBlur:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim),

		UserLabel:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		ModelLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Pending:    lipgloss.NewStyle().Foreground(dim).Italic(true),

		ListItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		ListSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accent).Bold(true),
		TypeBadge:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(accent).Padding(0, 1),

		Notice:  lipgloss.NewStyle().Foreground(bad).Border(lipgloss.RoundedBorder()).BorderForeground(bad).Padding(0, 1),
		Warning: lipgloss.NewStyle().Foreground(warn),
		Muted:   lipgloss.NewStyle().Foreground(dim),
		Spinner: lipgloss.NewStyle().Foreground(accent),
	}
}

func noColorTheme() Theme {
	plain := lipgloss.NewStyle()
	bordered := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)

	return Theme{
		Name: "no-color",

		TopBar:    plain,
		TopBarKey: plain.Bold(true),
		Footer:    plain,

		Pane:       bordered,
		PaneUnfoc:  bordered,
		InputFocus: lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		InputBlur:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()),

		UserLabel:  plain.Bold(true),
		ModelLabel: plain.Bold(true),
		Pending:    plain.Italic(true),

		ListItem:     plain,
		ListSelected: plain.Reverse(true),
		TypeBadge:    plain.Reverse(true),

		Notice:  bordered,
		Warning: plain,
		Muted:   plain,
		Spinner: plain,
	}
}
