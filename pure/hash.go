package pure

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// keyHash must agree with ==: equal keys always land on the same shard.
func keyHash[K comparable](seed maphash.Seed, k K) uint64 {
	if s, ok := any(k).(string); ok {
		return xxhash.Sum64String(s)
	}
	return maphash.Comparable(seed, k)
}

func shardIndex[K comparable](seed maphash.Seed, k K, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(keyHash(seed, k) % uint64(numShards))
	}
}
