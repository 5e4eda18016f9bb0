// Package local implements the store interface on a badger key-value store.
//
// Each collection is serialized as one JSON blob under a fixed key; every
// mutation reads the whole collection, applies its transform, and writes the
// blob back inside a single badger transaction. This mirrors the all-or-nothing
// contract of an atomic key-value write: there is no partial-write protection
// beyond what badger itself provides.
package local

import (
	"encoding/json/v2"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/salonbook/salonbook-server/internal/store"
)

// Collection keys. The whole collection lives under one key.
const (
	keyClients      = "collection:clients"
	keyServices     = "collection:services"
	keyAppointments = "collection:appointments"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open creates a new Store instance with the given database path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("failed to open badger db").WithCause(err)
	}

	if logger != nil {
		logger.Info("badger database opened", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing badger database")
	}
	return s.db.Close()
}

// loadCollection reads a collection blob inside txn. A missing key or a
// malformed blob loads as an empty collection; that is the emulated behavior
// of a never-yet-initialized store.
func loadCollection[T any](txn *badger.Txn, key string) ([]*T, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("failed to read collection").WithCause(err)
	}

	var items []*T
	err = item.Value(func(val []byte) error {
		if jsonErr := json.Unmarshal(val, &items); jsonErr != nil {
			items = nil
		}
		return nil
	})
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("failed to read collection value").WithCause(err)
	}
	return items, nil
}

// saveCollection writes the whole collection blob inside txn.
// Serialization failure is fatal for the operation; nothing is written.
func saveCollection[T any](txn *badger.Txn, key string, items []*T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return store.ErrPersistence.WithMessage("failed to marshal collection").WithCause(err)
	}
	if err := txn.Set([]byte(key), data); err != nil {
		return store.ErrPersistence.WithMessage("failed to write collection").WithCause(err)
	}
	return nil
}
