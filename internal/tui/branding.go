package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const AppName = "findbar"

var (
	PrimaryColor = lipgloss.Color("#FF6B6B")
	AccentColor  = lipgloss.Color("#95E1D3")

	TextColor  = lipgloss.Color("#EAEAEA")
	MutedColor = lipgloss.Color("#94A3B8")
	GhostColor = lipgloss.Color("#64748B")

	ErrorColor   = lipgloss.Color("#EF4444")
	SuccessColor = lipgloss.Color("#10B981")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// GhostStyle renders the suggestion remainder after the typed text.
	GhostStyle = lipgloss.NewStyle().
			Foreground(GhostColor).
			Faint(true)

	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(1, 2)
)

// ShowBanner prints the startup banner before the program takes over
// the terminal.
func ShowBanner(version string) {
	tag := AppName
	if version != "" && version != "dev" {
		if version[0] != 'v' && version[0] != 'V' {
			version = "v" + version
		}
		tag = fmt.Sprintf("%s %s", AppName, version)
	}

	banner := lipgloss.JoinVertical(
		lipgloss.Center,
		HeaderStyle.Render(tag+" ›"),
		HelpStyle.Render("search-as-you-type catalog finder"),
	)

	fmt.Println(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor).
		Padding(0, 3).
		Render(banner))
}
