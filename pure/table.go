// Package pure memoizes pure functions in tables that are safe for concurrent use.
package pure

import (
	"hash/maphash"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Table memoizes values by key.
//
// Every key is computed at most once for as long as its result stays in the
// Store: concurrent callers asking for a key that is being computed wait for
// that computation instead of starting their own. Computations run outside
// the shard lock, so a memoized function may recurse into the same Table for
// other keys. Recursing into the key currently being computed deadlocks.
type Table[K comparable, V any] struct {
	id     string
	cfg    TableConfig
	seed   maphash.Seed
	shards []*shard[K, V]
}

type shard[K comparable, V any] struct {
	mu       sync.Mutex
	store    Store[K, V]
	inflight map[K]*call[V]
}

// call is a computation in progress. done is closed once it settles.
type call[V any] struct {
	done chan struct{}
	val  V
	ok   bool
}

// NewTable creates a Table with cfg.NumShards shards, each backed by a Store
// from newStore. A nil newStore selects NewMapStore.
func NewTable[K comparable, V any](cfg TableConfig, newStore func() Store[K, V]) *Table[K, V] {
	cfg = cfg.normalize()
	if newStore == nil {
		newStore = NewMapStore[K, V]
	}
	shards := make([]*shard[K, V], cfg.NumShards)
	for i := range shards {
		shards[i] = &shard[K, V]{
			store:    newStore(),
			inflight: make(map[K]*call[V]),
		}
	}
	t := &Table[K, V]{
		id:     uuid.New().String(),
		cfg:    cfg,
		seed:   maphash.MakeSeed(),
		shards: shards,
	}
	cfg.Logger.Debug("created memo table",
		zap.String("table", cfg.Name),
		zap.String("tableId", t.id),
		zap.Int("numShards", cfg.NumShards),
	)
	return t
}

func (t *Table[K, V]) ID() string { return t.id }

func (t *Table[K, V]) shardOf(k K) *shard[K, V] {
	return t.shards[shardIndex(t.seed, k, len(t.shards))]
}

// Load returns the stored value for k without computing anything.
func (t *Table[K, V]) Load(k K) (V, bool) {
	sh := t.shardOf(k)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.store.Load(k)
}

// Len returns the number of stored values across all shards.
func (t *Table[K, V]) Len() int {
	n := 0
	for _, sh := range t.shards {
		sh.mu.Lock()
		n += sh.store.Len()
		sh.mu.Unlock()
	}
	return n
}

// LoadOrCompute returns the stored value for k, computing and storing it first
// if needed.
//
// If compute panics nothing is stored, the panic reaches the caller, and
// callers waiting on the same key retry the computation themselves.
//
// A key that is not equal to itself (NaN, or a struct holding one) could never
// be found again, so it is computed on every call and never stored.
func (t *Table[K, V]) LoadOrCompute(k K, compute func(K) V) V {
	if k != k {
		return compute(k)
	}
	sh := t.shardOf(k)
	for {
		sh.mu.Lock()
		if v, ok := sh.store.Load(k); ok {
			sh.mu.Unlock()
			return v
		}
		if c, ok := sh.inflight[k]; ok {
			sh.mu.Unlock()
			<-c.done
			if c.ok {
				return c.val
			}
			continue
		}
		c := &call[V]{done: make(chan struct{})}
		sh.inflight[k] = c
		sh.mu.Unlock()
		return t.compute(sh, c, k, compute)
	}
}

func (t *Table[K, V]) compute(sh *shard[K, V], c *call[V], k K, compute func(K) V) V {
	defer func() {
		sh.mu.Lock()
		delete(sh.inflight, k)
		if c.ok {
			sh.store.Store(k, c.val)
		}
		sh.mu.Unlock()
		close(c.done)
		if !c.ok {
			t.cfg.Logger.Warn("memo computation panicked; nothing stored",
				zap.String("table", t.cfg.Name),
				zap.String("tableId", t.id),
			)
		}
	}()

	if ce := t.cfg.Logger.Check(zap.DebugLevel, "memo miss"); ce != nil {
		ce.Write(
			zap.String("table", t.cfg.Name),
			zap.String("tableId", t.id),
			zap.Any("key", k),
		)
	}
	c.val = compute(k)
	c.ok = true
	return c.val
}
