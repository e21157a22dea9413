// Package bloom provides approximate membership tests for company keys.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter records which keys (typically INNs) have been seen in a batch.
// Test may report false positives but never false negatives.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected keys with the given
// false positive rate. n of zero is treated as one.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records key as seen.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// Test returns true if key might have been added.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}

// TestAndAdd reports whether key might have been added before, then adds it.
func (f *Filter) TestAndAdd(key string) bool {
	return f.f.TestAndAddString(key)
}

// EstimatedCount returns the approximate number of distinct keys added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
