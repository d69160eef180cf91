// Package popup persists the one-time promotional popup seen-flag.
//
// The flag is read when a visitor's session starts and written once when
// the popup is dismissed. Stores are process-wide and safe for concurrent
// use.
package popup

import (
	"context"
	"regexp"
	"sync"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
)

// FlagName is the persisted flag key for the free credits popup.
const FlagName = "free-credits-popup"

const maxVisitorLen = 128

var visitorPattern = regexp.MustCompile(`^[A-Za-z0-9._\-]+$`)

// Store reads and writes the seen-flag per visitor.
type Store interface {
	Seen(ctx context.Context, visitor string) (bool, error)
	MarkSeen(ctx context.Context, visitor string) error
	Backend() string
}

// ValidateVisitor rejects empty, oversized or non-token visitor ids with
// E_USAGE.
func ValidateVisitor(visitor string) error {
	if visitor == "" || len(visitor) > maxVisitorLen || !visitorPattern.MatchString(visitor) {
		return errors.NewWithDetails(errors.EUsage, "visitor id must be 1-128 characters of [A-Za-z0-9._-]", map[string]string{
			"visitor": visitor,
		})
	}
	return nil
}

// ShouldShow reports whether the popup should be shown to visitor.
// A store failure hides the popup; the error is still returned.
func ShouldShow(ctx context.Context, s Store, visitor string) (bool, error) {
	seen, err := s.Seen(ctx, visitor)
	if err != nil {
		return false, err
	}
	return !seen, nil
}

// MemoryStore keeps flags in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	seen map[string]bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]bool)}
}

// Backend implements Store.
func (m *MemoryStore) Backend() string { return "memory" }

// Seen implements Store.
func (m *MemoryStore) Seen(_ context.Context, visitor string) (bool, error) {
	if err := ValidateVisitor(visitor); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.seen[visitor], nil
}

// MarkSeen implements Store.
func (m *MemoryStore) MarkSeen(_ context.Context, visitor string) error {
	if err := ValidateVisitor(visitor); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen[visitor] = true
	return nil
}
