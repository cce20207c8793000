package bsieve

import (
	"errors"
	"math"
)

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// Parameter errors, reported at construction time before any filter exists.
var (
	// ErrInvalidCapacity is returned when the expected item count is zero.
	ErrInvalidCapacity = errors.New("bsieve: expected item count must be positive")

	// ErrInvalidFPRate is returned when the false positive rate is outside (0, 1).
	ErrInvalidFPRate = errors.New("bsieve: false positive rate must be in (0, 1)")

	// ErrInvalidBits is returned when the bit array size is zero.
	ErrInvalidBits = errors.New("bsieve: bit array size must be positive")

	// ErrInvalidHashes is returned when the hash function count is zero.
	ErrInvalidHashes = errors.New("bsieve: hash function count must be positive")
)

// OptimalParams calculates the optimal bloom filter parameters for the
// expected number of items and desired false positive rate.
//
//	m = ceil(-(n * ln(p)) / ln(2)^2)
//	k = round((m / n) * ln(2)), at least 1
func OptimalParams(expectedItems uint64, fpRate float64) (m uint64, k uint32, err error) {
	if expectedItems == 0 {
		return 0, 0, ErrInvalidCapacity
	}
	if fpRate <= 0 || fpRate >= 1 {
		return 0, 0, ErrInvalidFPRate
	}

	mf := math.Ceil(-(float64(expectedItems) * math.Log(fpRate)) / ln2Squared)
	m = uint64(mf)

	k = uint32(math.Round(mf / float64(expectedItems) * ln2))
	if k < 1 {
		k = 1
	}

	return m, k, nil
}

// EstimateFalsePositiveRate estimates the false positive rate of an m-bit,
// k-hash filter after itemsAdded insertions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m uint64, k uint32, itemsAdded uint64) float64 {
	if m == 0 || itemsAdded == 0 {
		return 0
	}

	kf := float64(k)
	n := float64(itemsAdded)

	return math.Pow(1-math.Exp(-kf*n/float64(m)), kf)
}
