package storage

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned by Load when nothing has been saved under the key yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore keeps opaque blobs under a name. The catalog is written as a
// single blob, so implementations only need whole-value reads and writes.
type SnapshotStore interface {
	// Load returns the blob stored under key, or ErrSnapshotNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Close releases connections or file handles held by the store.
	Close() error
}
