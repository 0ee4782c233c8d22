package pure

// Store holds computed results for a Table shard.
//
// A Table serializes calls to Load and Store of the same shard, so
// implementations need not be safe for concurrent use on their own.
type Store[K comparable, V any] interface {
	Load(k K) (V, bool)
	Store(k K, v V)
	Len() int
}

type mapStore[K comparable, V any] map[K]V

func (m mapStore[K, V]) Load(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

func (m mapStore[K, V]) Store(k K, v V) { m[k] = v }

func (m mapStore[K, V]) Len() int { return len(m) }

// NewMapStore returns the default, unbounded Store. It never evicts.
func NewMapStore[K comparable, V any]() Store[K, V] {
	return mapStore[K, V]{}
}
