package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValue defines the interface for durable on-device key-value storage.
// Values are opaque serialized blobs; each key is written independently
// with no transactionality across keys.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Storage keys for the application's collections. Every mutation writes
// the entire affected collection under its key, never a delta.
const (
	KeyTasks             = "app_tasks"
	KeyFinishedTasks     = "app_finished_tasks"
	KeyProjects          = "app_projects"
	KeyFinishedProjects  = "app_finished_projects"
	KeyNotes             = "app_notes"
	KeyFinishedNotes     = "app_finished_notes"
	KeyProfile           = "app_profile"
)
