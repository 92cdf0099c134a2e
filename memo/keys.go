package memo

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// KeyFunc encodes a key as a string. Distinct keys MUST encode to distinct
// strings: the encoding is both the shard hash input and the singleflight
// coalescing key.
type KeyFunc[K comparable] func(K) string

// IntKey encodes any signed integer key in base 10.
func IntKey[K ~int | ~int8 | ~int16 | ~int32 | ~int64](k K) string {
	return strconv.FormatInt(int64(k), 10)
}

// UintKey encodes any unsigned integer key in base 10.
func UintKey[K ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](k K) string {
	return strconv.FormatUint(uint64(k), 10)
}

// StringKey is the identity encoding for string keys.
func StringKey[K ~string](k K) string {
	return string(k)
}

// shardIndex maps an encoded key to a shard with mask = shards-1.
func shardIndex(encoded string, mask uint64) uint64 {
	return xxhash.Sum64String(encoded) & mask
}
