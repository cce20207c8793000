// Package bsieve filters streams of text lines through a bloom filter,
// suppressing lines that have already been seen.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says a line is not present, it
// definitely is not. If it says a line might be present, it could be a false
// positive. bsieve accepts this tradeoff to deduplicate unbounded streams in
// constant memory: a filter sized for one million lines at a 1% false positive
// rate occupies about 1.2 MB regardless of how much input flows through it.
//
// # Architecture
//
// [Filter] is a classic bloom filter: a fixed m-bit array probed at k
// positions per item. The k positions are derived by double hashing – two
// independent base hashes h1 (xxh3) and h2 (xxhash64) are computed once per
// item and combined as
//
//	position(i) = (h1 + i*h2) mod m    for i in [0, k)
//
// which approximates k independent hash functions at the cost of two hash
// evaluations. See "Less Hashing, Same Performance" (Kirsch & Mitzenmacher).
//
// [Processor] owns a filter for the duration of one run and streams lines
// from an input to an output, forwarding or suppressing each line based on a
// membership test. In normal mode unseen lines are inserted and forwarded;
// in invert mode the decision flips and only already-seen lines are
// forwarded.
//
// # Choosing Parameters
//
// Use [New] with the expected number of distinct lines and the acceptable
// false positive rate:
//
//	// Filter for 1 million lines with 1% false positive rate
//	f, err := bsieve.New(1_000_000, 0.01)
//
// The optimal bit count and hash count are derived from those two values.
// [NewWithParams] gives explicit control over m and k instead.
//
// Filling a filter past its planned capacity degrades the false positive
// rate predictably; [Filter.EstimatedFalsePositiveRate] reports the current
// estimate from the number of items inserted so far.
//
// # Persistence
//
// A filter serializes to a self-describing binary layout ([Filter.MarshalBinary],
// [UnmarshalBinary]) and round-trips bit-for-bit. [LoadFile] and
// [Filter.WriteFile] move that layout to and from a backing file so a filter
// built in one invocation can answer membership queries in the next. A
// corrupt or foreign file is rejected with a wrapped [ErrInvalidData] rather
// than silently producing a filter with the wrong geometry.
//
// # Thread Safety
//
// Filter and Processor are NOT thread-safe. A filter is exclusively owned by
// one processor for the duration of a run; there is no concurrent mutator and
// therefore no locking.
package bsieve
