package repository

import (
	"context"
	"hash/fnv"
	"sort"
	"sync"

	"github.com/okian/piste/internal/domain/model"
	"github.com/okian/piste/pkg/metrics"
)

// shard holds the entries for a subset of disciplines behind its own lock
// so concurrent ingest and reads on different disciplines do not contend.
type shard struct {
	mu      sync.RWMutex
	entries map[string][]model.RawPerformanceEntry // discipline -> entries, insertion order
}

// MemStore implements Store with discipline-sharded in-memory maps.
type MemStore struct {
	shardCount int
	shards     []*shard
}

// NewMemStore creates an in-memory store with configuration options.
func NewMemStore(ctx context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		shardCount: defaultShardCount,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	s.shards = make([]*shard, s.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{entries: make(map[string][]model.RawPerformanceEntry)}
	}

	return s
}

// Append stores entries under their disciplines.
func (s *MemStore) Append(ctx context.Context, entries ...model.RawPerformanceEntry) int {
	stored := 0
	for _, e := range entries {
		if e.Discipline == "" {
			continue
		}
		sh := s.shardFor(e.Discipline)
		sh.mu.Lock()
		sh.entries[e.Discipline] = append(sh.entries[e.Discipline], e)
		sh.mu.Unlock()
		stored++
	}
	if stored > 0 {
		metrics.UpdateStoreEntries(s.Count(ctx))
		metrics.UpdateDisciplineCount(len(s.Disciplines(ctx)))
	}
	return stored
}

// ByDiscipline returns a copy of the entries for a discipline.
func (s *MemStore) ByDiscipline(ctx context.Context, discipline string) ([]model.RawPerformanceEntry, error) {
	sh := s.shardFor(discipline)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	stored, ok := sh.entries[discipline]
	if !ok {
		return nil, ErrUnknownDiscipline
	}
	out := make([]model.RawPerformanceEntry, len(stored))
	copy(out, stored)
	return out, nil
}

// Disciplines returns the tracked disciplines sorted lexicographically.
func (s *MemStore) Disciplines(ctx context.Context) []string {
	var names []string
	for _, sh := range s.shards {
		sh.mu.RLock()
		for name := range sh.entries {
			names = append(names, name)
		}
		sh.mu.RUnlock()
	}
	sort.Strings(names)
	return names
}

// Count returns the total number of stored entries.
func (s *MemStore) Count(ctx context.Context) int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, entries := range sh.entries {
			total += len(entries)
		}
		sh.mu.RUnlock()
	}
	return total
}

func (s *MemStore) shardFor(discipline string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(discipline))
	return s.shards[int(h.Sum32())%s.shardCount]
}
