package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"findbar/internal/config"
)

// Fetcher retrieves the item catalog for a zone over HTTP. One request
// is issued per widget mount; there is no retry and no pagination.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Catalog.HTTPTimeout,
		},
		baseURL:   strings.TrimSuffix(cfg.Catalog.BaseURL, "/"),
		userAgent: cfg.Catalog.UserAgent,
	}
}

// FetchItems requests the catalog for the given zone. The response body
// is an ordered JSON array of {id, name} records; the slice preserves
// server order.
func (f *Fetcher) FetchItems(ctx context.Context, zone string) ([]Item, error) {
	endpoint := fmt.Sprintf("%s/zones/%s/items", f.baseURL, url.PathEscape(zone))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	return items, nil
}
