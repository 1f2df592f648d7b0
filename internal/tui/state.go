package tui

import (
	"findbar/internal/catalog"
	"findbar/internal/measure"
)

// searchState is the shared bundle read by every part of the widget.
// Each field has exactly one writer: the fetch loads allItems, the
// filter derives filteredItems, the query input commits query, the
// measurement unit commits measuredWidth and the deriver commits the
// suggestion. The bundle lives for exactly one widget instance.
type searchState struct {
	allItems      []catalog.Item
	filteredItems []catalog.Item
	query         string
	measuredWidth int
	suggestion    string
}

func newSearchState() *searchState {
	return &searchState{measuredWidth: measure.WidthFull}
}

func (s *searchState) setAllItems(items []catalog.Item) { s.allItems = items }
func (s *searchState) setFiltered(items []catalog.Item) { s.filteredItems = items }
func (s *searchState) setQuery(q string)                { s.query = q }
func (s *searchState) setMeasuredWidth(w int)           { s.measuredWidth = w }
func (s *searchState) setSuggestion(v string)           { s.suggestion = v }
