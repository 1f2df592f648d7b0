package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# findbar

Search-as-you-type over the zone catalog. Matching is literal,
case-sensitive substring containment; results keep catalog order. The
greyed-out ghost text previews the first matching item when your query
is a prefix of its name.

## Keys

| Key      | Action                          |
|----------|---------------------------------|
| (type)   | filter the catalog              |
| esc      | clear the query (quit if empty) |
| f1       | toggle this help                |
| ctrl+c   | quit                            |
`

// renderHelpView renders the help overlay, caching the glamour output
// per width.
func (a *App) renderHelpView() string {
	wrap := a.cardWidth()
	if a.helpCache == "" || a.helpWidth != wrap {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			if rendered, renderErr := r.Render(helpMarkdown); renderErr == nil {
				a.helpCache = rendered
				a.helpWidth = wrap
			}
		}
		if a.helpCache == "" {
			a.helpCache = helpMarkdown
			a.helpWidth = wrap
		}
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		a.helpCache,
		HelpStyle.Render("Press "+a.config.Keys.Help+" or "+a.config.Keys.Clear+" to go back"),
	)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}
