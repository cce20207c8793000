package bsieve

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// baseHashes computes the two independent 64-bit base hashes of data used
// for double hashing. xxh3 and xxhash64 are unrelated algorithms, so the
// pair behaves like two independent hash functions over the same bytes.
func baseHashes(data []byte) (h1, h2 uint64) {
	return xxh3.Hash(data), xxhash.Sum64(data)
}

// baseHashesString computes the base hashes of a string without allocating.
func baseHashesString(s string) (h1, h2 uint64) {
	return xxh3.HashString(s), xxhash.Sum64String(s)
}

// bitIndex derives the i-th probe position: (h1 + i*h2) mod m.
// Overflow in the linear combination is harmless; wrapping arithmetic
// preserves the distribution.
func bitIndex(h1, h2 uint64, i uint32, m uint64) uint64 {
	return (h1 + uint64(i)*h2) % m
}
