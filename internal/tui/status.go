package tui

import "fmt"

// Canonical short status messages used across the widget.
const (
	MsgLoadingCatalog     = "Loading catalog…"
	MsgNoResults          = "No results"
	MsgOfflineCatalog     = "Catalog unavailable, showing cached items"
	MsgCatalogUnavailable = "Catalog unavailable"
)

func MsgResultsCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}
