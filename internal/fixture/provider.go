// Package fixture supplies demo performance entries for offline and demo
// modes. Providers are injected through constructors; nothing here holds
// process-wide mutable state.
package fixture

import (
	"context"

	"github.com/okian/piste/internal/domain/model"
)

// Provider yields raw entries to preload into the store.
type Provider interface {
	Entries(ctx context.Context) []model.RawPerformanceEntry
}

// Static is a Provider over a fixed slice, handy in tests.
type Static struct {
	entries []model.RawPerformanceEntry
}

// NewStatic creates a provider returning exactly the given entries.
func NewStatic(entries []model.RawPerformanceEntry) *Static {
	copied := make([]model.RawPerformanceEntry, len(entries))
	copy(copied, entries)
	return &Static{entries: copied}
}

// Entries returns the configured entries.
func (s *Static) Entries(ctx context.Context) []model.RawPerformanceEntry {
	out := make([]model.RawPerformanceEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
