package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/catalog"
)

var salonItems = []catalog.Item{
	{ID: "1", Name: "Haircut"},
	{ID: "2", Name: "Hairdye"},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		items     []catalog.Item
		wantNames []string
	}{
		{
			name:      "substring matches preserve catalog order",
			query:     "Hair",
			items:     salonItems,
			wantNames: []string{"Haircut", "Hairdye"},
		},
		{
			name:      "blank query means no results",
			query:     "",
			items:     salonItems,
			wantNames: nil,
		},
		{
			name:      "whitespace-only query means no results",
			query:     "   ",
			items:     salonItems,
			wantNames: nil,
		},
		{
			name:      "matching is case-sensitive",
			query:     "Dye",
			items:     salonItems,
			wantNames: nil,
		},
		{
			name:      "lowercase substring matches mid-word",
			query:     "dye",
			items:     salonItems,
			wantNames: []string{"Hairdye"},
		},
		{
			name:      "substring may match anywhere in the name",
			query:     "cut",
			items:     salonItems,
			wantNames: []string{"Haircut"},
		},
		{
			name:      "empty catalog yields no results for any query",
			query:     "Hair",
			items:     nil,
			wantNames: nil,
		},
		{
			name:  "order follows catalog, not match position",
			query: "a",
			items: []catalog.Item{
				{ID: "1", Name: "banana"},
				{ID: "2", Name: "apple"},
				{ID: "3", Name: "cherry"},
				{ID: "4", Name: "avocado"},
			},
			wantNames: []string{"banana", "apple", "avocado"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.query, tt.items)
			require.Len(t, got, len(tt.wantNames))
			for i, name := range tt.wantNames {
				assert.Equal(t, name, got[i].Name)
			}
		})
	}
}

func TestFilterReturnsSubset(t *testing.T) {
	got := Filter("Hair", salonItems)
	for _, item := range got {
		assert.Contains(t, item.Name, "Hair")
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		filtered []catalog.Item
		want     string
	}{
		{
			name:     "query prefixes first filtered name",
			query:    "Hair",
			filtered: salonItems,
			want:     "Haircut",
		},
		{
			name:     "empty query yields no suggestion",
			query:    "",
			filtered: salonItems,
			want:     "",
		},
		{
			name:     "no filtered items yields no suggestion",
			query:    "Hair",
			filtered: nil,
			want:     "",
		},
		{
			name:     "mid-word match is not a prefix",
			query:    "cut",
			filtered: []catalog.Item{{ID: "1", Name: "Haircut"}},
			want:     "",
		},
		{
			name:     "query equal to first name suggests itself",
			query:    "Haircut",
			filtered: []catalog.Item{{ID: "1", Name: "Haircut"}},
			want:     "Haircut",
		},
		{
			name:     "only the first filtered item is considered",
			query:    "dye",
			filtered: []catalog.Item{{ID: "1", Name: "Haircut"}, {ID: "2", Name: "dyed"}},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.query, tt.filtered))
		})
	}
}

// The fetch-returns-empty scenario: no query produces results and no
// suggestion ever appears.
func TestEmptyCatalogScenario(t *testing.T) {
	for _, q := range []string{"", "Hair", "a", " "} {
		filtered := Filter(q, nil)
		assert.Empty(t, filtered)
		assert.Equal(t, "", Suggest(q, filtered))
	}
}
