package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/debuglog"
)

// loadCatalog issues the one-shot catalog fetch for the configured
// zone. On failure it falls back to the cached catalog when one exists;
// otherwise the error surfaces in the status line and the item list
// keeps its previous (initially empty) value.
func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		zone := a.config.Catalog.Zone

		ctx, cancel := context.WithTimeout(context.Background(), a.config.Catalog.HTTPTimeout)
		defer cancel()

		items, err := a.fetcher.FetchItems(ctx, zone)
		if err != nil {
			debuglog.Warnf("catalog fetch failed for zone %q: %v", zone, err)
			if a.store != nil {
				if cached, cacheErr := a.store.GetItems(zone); cacheErr == nil {
					debuglog.Infof("serving %d cached items for zone %q", len(cached), zone)
					return itemsLoadedMsg{items: cached, fromCache: true}
				}
			}
			return itemsLoadedMsg{err: err}
		}

		if a.store != nil {
			if saveErr := a.store.SaveItems(zone, items); saveErr != nil {
				debuglog.Warnf("caching catalog for zone %q: %v", zone, saveErr)
			}
		}

		debuglog.Infof("loaded %d items for zone %q", len(items), zone)
		return itemsLoadedMsg{items: items}
	}
}

// flushAfter schedules the trailing-edge flush of a gate. The sequence
// number lets a superseded timer arrive harmlessly: the gate ignores
// flushes whose sequence is stale.
func flushAfter(id gateID, seq uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return gateFlushMsg{id: id, seq: seq}
	})
}
