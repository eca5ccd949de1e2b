// Package state caches FlowHigh analysis responses in SQLite so repeated
// submissions of the same SQL do not hit the API.
package state

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when no response is cached under a key.
var ErrNotFound = errors.New("cache entry not found")

// Entry is one cached response.
type Entry struct {
	ID        string
	Key       string
	RealmID   string
	QueryName string
	SQL       string
	Response  []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the response cache.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Put(ctx context.Context, e *Entry) error
	List(ctx context.Context) ([]*Entry, error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) (int64, error)
	Close() error
}

// Key derives the cache key of a submission. Surrounding whitespace of the
// SQL text does not change the key.
func Key(sql, realmID string) string {
	h := sha256.New()
	h.Write([]byte(realmID))
	h.Write([]byte{0})
	h.Write([]byte(strings.TrimSpace(sql)))
	return hex.EncodeToString(h.Sum(nil))
}
