package models

import (
	"fmt"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// ErrCacheMiss is returned when a detail entry is absent or expired
var ErrCacheMiss = fmt.Errorf("cache miss")

// DetailEntry is a cached catalog response in the persistent tier.
// An entry is valid iff now - Timestamp < TTL; expired entries are
// treated as misses, never as empty results.
type DetailEntry struct {
	Key       string `boltholdKey:"Key"`
	Payload   []byte
	Timestamp time.Time
}

// Database wraps the bolthold store backing the detail-response cache
type Database struct {
	store *bolthold.Store
}

// NewDatabase creates a new database connection
func NewDatabase(path string) (*Database, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{store: store}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.store.Close()
}

// GetDetail retrieves a cached payload by key. Returns ErrCacheMiss when the
// entry is absent or older than ttl.
func (db *Database) GetDetail(key string, ttl time.Duration) ([]byte, error) {
	var entry DetailEntry
	err := db.store.Get(key, &entry)
	if err == bolthold.ErrNotFound {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	if time.Since(entry.Timestamp) >= ttl {
		return nil, ErrCacheMiss
	}
	return entry.Payload, nil
}

// PutDetail stores a payload under key, replacing any previous entry.
// Concurrent writers for the same key are tolerated; last writer wins.
func (db *Database) PutDetail(key string, payload []byte) error {
	entry := DetailEntry{
		Key:       key,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	return db.store.Upsert(key, &entry)
}

// DeleteExpired removes all entries older than ttl and returns how many
// were deleted
func (db *Database) DeleteExpired(ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	var expired []*DetailEntry
	err := db.store.Find(&expired, bolthold.Where("Timestamp").Lt(cutoff))
	if err != nil {
		return 0, err
	}

	for _, entry := range expired {
		if err := db.store.Delete(entry.Key, &DetailEntry{}); err != nil {
			return 0, err
		}
	}

	return len(expired), nil
}
