// Package repository defines the raw entry store interface and errors.
//
// The store holds only caller-supplied raw entries; normalized output is
// never persisted and is recomputed on demand by the timeline engine.
package repository

import (
	"context"

	"github.com/okian/piste/internal/domain/model"
)

// Store provides read/write access to raw performance entries, grouped
// by discipline.
type Store interface {
	// Append stores entries under their disciplines and returns how many
	// were stored. Entries without a discipline are skipped.
	Append(ctx context.Context, entries ...model.RawPerformanceEntry) int

	// ByDiscipline returns all entries for a discipline in insertion
	// order. Returns ErrUnknownDiscipline when none exist.
	ByDiscipline(ctx context.Context, discipline string) ([]model.RawPerformanceEntry, error)

	// Disciplines returns the distinct disciplines currently tracked,
	// sorted lexicographically.
	Disciplines(ctx context.Context) []string

	// Count returns the total number of stored entries.
	Count(ctx context.Context) int
}
