// Package search implements the filter and ghost-suggestion rules for
// the findbar widget. Matching is literal, case-sensitive substring
// containment; there is no fuzzy matching or ranking, and result order
// always follows catalog order.
package search

import (
	"strings"

	"findbar/internal/catalog"
)

// Filter returns the items whose names contain query as a substring,
// preserving catalog order. A blank query (after trimming whitespace)
// means "no results", not "all results".
func Filter(query string, items []catalog.Item) []catalog.Item {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var matched []catalog.Item
	for _, item := range items {
		if strings.Contains(item.Name, query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Suggest returns the ghost completion for the current query: the full
// name of the first filtered item when the query is a literal prefix of
// it, otherwise "". A query equal to the first name suggests itself.
func Suggest(query string, filtered []catalog.Item) string {
	if query == "" || len(filtered) == 0 {
		return ""
	}

	first := filtered[0].Name
	if strings.HasPrefix(first, query) {
		return first
	}
	return ""
}
