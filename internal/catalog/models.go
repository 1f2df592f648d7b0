package catalog

// Item is a single searchable catalog entry. Items are immutable once
// fetched; the catalog is replaced wholesale on every fetch.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
