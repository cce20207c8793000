package bsieve

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Serialization constants and errors.
const (
	// serializeVersion is the current serialization format version.
	serializeVersion byte = 1

	// headerSize is the size of the serialization header in bytes.
	// Magic (4) + Version (1) + K (4) + M (8) + Count (8) = 25 bytes
	headerSize = 25

	// maxBits bounds m when deserializing, so a corrupt header cannot
	// drive a huge allocation. 1<<43 bits is 1 TiB of filter data.
	maxBits = uint64(1) << 43

	// maxHashes bounds k when deserializing. The optimal-parameter
	// formula yields k around 30 even for extreme false positive
	// targets, so anything past this is a corrupt header.
	maxHashes = 256
)

// serializeMagic identifies a bsieve filter file.
var serializeMagic = [4]byte{'B', 'S', 'V', 'F'}

var (
	// ErrInvalidData is returned when the serialized data is invalid or corrupted.
	ErrInvalidData = errors.New("bsieve: invalid serialized data")

	// ErrUnsupportedVersion is returned when the serialization version is not supported.
	ErrUnsupportedVersion = errors.New("bsieve: unsupported serialization version")
)

// wordsFor returns the number of 64-bit words backing an m-bit array.
func wordsFor(m uint64) uint64 {
	return (m + 63) / 64
}

// MarshalBinary serializes the filter to a byte slice.
// The serialized format is:
//   - Magic (4 bytes): "BSVF"
//   - Version (1 byte): serialization format version
//   - K (4 bytes): number of hash functions (little-endian uint32)
//   - M (8 bytes): bit array size in bits (little-endian uint64)
//   - Count (8 bytes): number of items inserted (little-endian uint64)
//   - Bits (ceil(m/64) * 8 bytes): the bit array (little-endian uint64s)
func (f *Filter) MarshalBinary() ([]byte, error) {
	words := f.bits.Bytes()
	buf := make([]byte, headerSize+len(words)*8)

	copy(buf[0:4], serializeMagic[:])
	buf[4] = serializeVersion
	binary.LittleEndian.PutUint32(buf[5:9], f.k)
	binary.LittleEndian.PutUint64(buf[9:17], f.m)
	binary.LittleEndian.PutUint64(buf[17:25], f.count)

	offset := headerSize
	for _, word := range words {
		binary.LittleEndian.PutUint64(buf[offset:offset+8], word)
		offset += 8
	}

	return buf, nil
}

// UnmarshalBinary deserializes a filter from a byte slice.
// Returns an error if the data is truncated, corrupt, or not a bsieve
// filter; a filter with mismatched parameters is never silently produced.
func UnmarshalBinary(data []byte) (*Filter, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: data too short (got %d bytes, need at least %d)", ErrInvalidData, len(data), headerSize)
	}

	if [4]byte(data[0:4]) != serializeMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrInvalidData)
	}

	version := data[4]
	if version != serializeVersion {
		return nil, fmt.Errorf("%w: got version %d, expected %d", ErrUnsupportedVersion, version, serializeVersion)
	}

	k := binary.LittleEndian.Uint32(data[5:9])
	m := binary.LittleEndian.Uint64(data[9:17])
	count := binary.LittleEndian.Uint64(data[17:25])

	if k == 0 || k > maxHashes {
		return nil, fmt.Errorf("%w: hash count %d out of range [1, %d]", ErrInvalidData, k, maxHashes)
	}
	if m == 0 {
		return nil, fmt.Errorf("%w: bit array size cannot be zero", ErrInvalidData)
	}
	if m > maxBits {
		return nil, fmt.Errorf("%w: bit array size too large (%d bits)", ErrInvalidData, m)
	}

	words := wordsFor(m)
	expectedLen := uint64(headerSize) + words*8
	if uint64(len(data)) != expectedLen {
		return nil, fmt.Errorf("%w: data length mismatch (got %d bytes, expected %d)", ErrInvalidData, len(data), expectedLen)
	}

	set := make([]uint64, words)
	offset := headerSize
	for i := range set {
		set[i] = binary.LittleEndian.Uint64(data[offset : offset+8])
		offset += 8
	}

	return &Filter{
		bits:  bitset.FromWithLength(uint(m), set),
		m:     m,
		k:     k,
		count: count,
	}, nil
}
