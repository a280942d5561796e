package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Keys used by the application. The task list is serialized as a JSON
// array under KeyTasks; the theme preference is a bare string under
// KeyTheme. The two entries are independent.
const (
	KeyTasks = "todos"
	KeyTheme = "theme"
)

// Store is a string key-value store with no expiry. Load returns
// ErrNotFound when the key has never been saved (or was removed);
// Remove on an absent key is not an error.
type Store interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
