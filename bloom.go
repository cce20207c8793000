package bsieve

import (
	"github.com/bits-and-blooms/bitset"
)

// Filter is a classic bloom filter: an m-bit array probed at k positions
// per item via double hashing.
//
// m and k are fixed at construction and never change for the filter's
// lifetime. Filter is not safe for concurrent use – it is exclusively
// owned by a single processor for the duration of a run.
type Filter struct {
	bits  *bitset.BitSet // m-bit array
	m     uint64         // Bit array size
	k     uint32         // Number of hash functions
	count uint64         // Number of items inserted (persisted)
}

// New creates a bloom filter sized for the expected number of items and
// desired false positive rate.
func New(expectedItems uint64, fpRate float64) (*Filter, error) {
	m, k, err := OptimalParams(expectedItems, fpRate)
	if err != nil {
		return nil, err
	}
	return NewWithParams(m, k)
}

// NewWithParams creates a bloom filter with an explicit bit array size m
// and hash function count k.
func NewWithParams(m uint64, k uint32) (*Filter, error) {
	if m == 0 {
		return nil, ErrInvalidBits
	}
	if k == 0 {
		return nil, ErrInvalidHashes
	}

	return &Filter{
		bits: bitset.New(uint(m)),
		m:    m,
		k:    k,
	}, nil
}

// Add inserts data into the filter. Insertion always succeeds; inserting
// the same item again is a no-op on the bit array but still counts.
func (f *Filter) Add(data []byte) {
	h1, h2 := baseHashes(data)
	f.addWithHash(h1, h2)
}

// AddString inserts a string into the filter without allocating.
func (f *Filter) AddString(s string) {
	h1, h2 := baseHashesString(s)
	f.addWithHash(h1, h2)
}

// addWithHash sets the k probe bits using pre-computed base hashes.
func (f *Filter) addWithHash(h1, h2 uint64) {
	for i := uint32(0); i < f.k; i++ {
		f.bits.Set(uint(bitIndex(h1, h2, i, f.m)))
	}
	f.count++
}

// Test checks whether data might be in the filter.
// Returns true if the data might be present (with false positive
// probability), or false if the data is definitely not present.
func (f *Filter) Test(data []byte) bool {
	h1, h2 := baseHashes(data)
	return f.testWithHash(h1, h2)
}

// TestString checks whether a string might be in the filter without
// allocating.
func (f *Filter) TestString(s string) bool {
	h1, h2 := baseHashesString(s)
	return f.testWithHash(h1, h2)
}

// testWithHash checks the k probe bits using pre-computed base hashes.
func (f *Filter) testWithHash(h1, h2 uint64) bool {
	for i := uint32(0); i < f.k; i++ {
		if !f.bits.Test(uint(bitIndex(h1, h2, i, f.m))) {
			return false
		}
	}
	return true
}

// M returns the size of the bit array in bits.
func (f *Filter) M() uint64 {
	return f.m
}

// K returns the number of hash functions used.
func (f *Filter) K() uint32 {
	return f.k
}

// Count returns the number of items inserted into the filter, including
// insertions made by previous runs when the filter was loaded from a
// backing file.
func (f *Filter) Count() uint64 {
	return f.count
}

// FillRatio returns the proportion of bits that are set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items inserted.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count)
}

// Equal reports whether two filters have identical parameters, counts and
// bit arrays.
func (f *Filter) Equal(other *Filter) bool {
	return f.m == other.m &&
		f.k == other.k &&
		f.count == other.count &&
		f.bits.Equal(other.bits)
}
