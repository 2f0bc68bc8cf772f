package repository

// Default store configuration constants.
const (
	defaultShardCount = 8
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithShardCount sets the number of shards entries are spread across.
func WithShardCount(count int) Option {
	return func(s *MemStore) {
		if count > 0 {
			s.shardCount = count
		}
	}
}
