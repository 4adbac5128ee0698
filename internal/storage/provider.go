// Package storage defines the snapshot persistence abstraction.
//
// The stores are serialized wholesale: one opaque blob per store,
// loaded once at startup and written back at shutdown (and after
// mutating commands). Two backends exist — flat files and SQLite.
package storage

import "errors"

// Snapshot keys, one per store.
const (
	KeyContacts = "contacts"
	KeyNotes    = "notes"
)

// ErrNoSnapshot reports that no snapshot has been saved under a key
// yet. Callers start with an empty store in that case.
var ErrNoSnapshot = errors.New("storage: no snapshot")

// Provider loads and saves opaque store snapshots by key.
type Provider interface {
	// Load returns the blob last saved under key, or ErrNoSnapshot.
	Load(key string) ([]byte, error)
	// Save durably replaces the blob under key.
	Save(key string, data []byte) error
	// Close releases backend resources.
	Close() error
}
