package mirror

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by Load when nothing was ever stored under the key.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Mirror is a durable key-value store holding full serialized snapshots of
// application state, one snapshot per namespace key. It is read once at
// startup and written after every mutation.
type Mirror interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
