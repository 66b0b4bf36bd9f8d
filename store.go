package triarb

import (
	"hash/fnv"
	"sync"
)

// storeShardCount is the number of independent lock domains in a
// QuoteStore. Sized well above typical GOMAXPROCS so that concurrent
// writers to distinct symbols rarely contend on the same shard.
const storeShardCount = 64

type storeShard struct {
	mu      sync.RWMutex
	updates map[Symbol]TopOfBookUpdate
}

// QuoteStore is a concurrent mapping from Symbol to the latest
// TopOfBookUpdate seen for it. It has no history, no subscribers, and no
// TTL: a symbol is simply absent until its first Put.
//
// It is sharded by symbol hash, each shard guarded by its own
// sync.RWMutex, so that a write to one symbol blocks reads of another
// only when both hash to the same shard, and a read of a key under
// concurrent write observes either the prior value or the new one,
// never a torn value. This
// satisfies spec.md §4.A/§5 without a single global lock, which would
// otherwise serialize every worker in the parallel evaluator variants.
type QuoteStore struct {
	shards [storeShardCount]*storeShard
}

// NewQuoteStore creates an empty QuoteStore.
func NewQuoteStore() *QuoteStore {
	s := &QuoteStore{}
	for i := range s.shards {
		s.shards[i] = &storeShard{updates: make(map[Symbol]TopOfBookUpdate)}
	}
	return s
}

func (s *QuoteStore) shardFor(symbol Symbol) *storeShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(symbol))
	return s.shards[h.Sum32()%storeShardCount]
}

// Put overwrites the stored update for u.Symbol. Put never fails.
func (s *QuoteStore) Put(u TopOfBookUpdate) {
	shard := s.shardFor(u.Symbol)
	shard.mu.Lock()
	shard.updates[u.Symbol] = u
	shard.mu.Unlock()
}

// Get returns the latest update for symbol and whether one has been
// recorded. A symbol that has never been Put returns the zero value and
// false — this is the "StoreMiss" condition of spec.md §7, which is not
// an error.
func (s *QuoteStore) Get(symbol Symbol) (TopOfBookUpdate, bool) {
	shard := s.shardFor(symbol)
	shard.mu.RLock()
	u, ok := shard.updates[symbol]
	shard.mu.RUnlock()
	return u, ok
}

// Len returns the number of symbols currently recorded. It is a snapshot
// and may be stale the instant it returns; it exists for metrics and
// tests, not for control flow.
func (s *QuoteStore) Len() int {
	total := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		total += len(shard.updates)
		shard.mu.RUnlock()
	}
	return total
}
