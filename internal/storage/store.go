// Package storage caches the last successfully fetched catalog per
// zone, so a failed fetch on startup can fall back to stale-but-usable
// items instead of an empty widget.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"findbar/internal/catalog"
)

var catalogBucket = []byte("catalog")

type Store struct {
	db *bolt.DB
}

func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(catalogBucket)
		return createErr
	})
	if err != nil {
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveItems replaces the cached catalog for a zone wholesale.
func (s *Store) SaveItems(zone string, items []catalog.Item) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(catalogBucket)
		data, err := json.Marshal(items)
		if err != nil {
			return err
		}
		return b.Put([]byte(zone), data)
	})
}

// GetItems returns the cached catalog for a zone in its original fetch
// order. An error is returned when nothing is cached for the zone.
func (s *Store) GetItems(zone string) ([]catalog.Item, error) {
	var items []catalog.Item
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(catalogBucket)
		data := b.Get([]byte(zone))
		if data == nil {
			return fmt.Errorf("no cached catalog for zone %q", zone)
		}
		return json.Unmarshal(data, &items)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
