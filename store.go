package bsieve

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadFile reads and decodes a filter from a backing file. The error wraps
// fs.ErrNotExist when the file is missing and the serialization errors
// (ErrInvalidData, ErrUnsupportedVersion) when the contents are corrupt.
func LoadFile(path string) (*Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := UnmarshalBinary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadFileOrNew loads the filter from a backing file, falling back to a
// fresh filter with the given parameters when the file does not exist.
// A missing backing file is the documented way to start a new filter, not
// a failure; any other load error is surfaced.
func LoadFileOrNew(path string, m uint64, k uint32) (*Filter, error) {
	f, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewWithParams(m, k)
	}
	return f, err
}

// LoadFileOrNewForCapacity is LoadFileOrNew with the fallback filter sized
// from a capacity and target false positive rate.
func LoadFileOrNewForCapacity(path string, expectedItems uint64, fpRate float64) (*Filter, error) {
	m, k, err := OptimalParams(expectedItems, fpRate)
	if err != nil {
		return nil, err
	}
	return LoadFileOrNew(path, m, k)
}

// WriteFile serializes the filter and writes it to the backing file,
// replacing any previous contents.
func (f *Filter) WriteFile(path string) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
