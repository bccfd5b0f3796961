package validate

import (
	"fmt"

	"github.com/bits-and-blooms/bloom/v3"
)

// MembershipFilter is an approximate set: Test may report false positives
// but never false negatives.
type MembershipFilter interface {
	// TestAndAdd reports whether key was probably present, then adds it.
	TestAndAdd(key []byte) bool
	Test(key []byte) bool
}

const (
	// each new sub-filter holds growthFactor times the previous capacity
	growthFactor = 2
	// and gets tighteningRatio times the previous false-positive rate
	tighteningRatio = 0.5
)

// ScalableBloomFilter grows by stacking Bloom filters so the overall
// false-positive rate stays near the target no matter how many keys arrive.
// Sub-filter i is sized for capacity*growthFactor^i keys at rate
// rate*(1-tighteningRatio)*tighteningRatio^i, so the rates sum to at most rate.
type ScalableBloomFilter struct {
	filters  []*bloom.BloomFilter
	rate     float64
	nextRate float64
	capacity uint
	count    uint
}

func NewScalableBloomFilter(rate float64, capacity uint) (*ScalableBloomFilter, error) {
	if !(rate > 0 && rate < 1) || capacity == 0 {
		return nil, fmt.Errorf("%w: rate=%v capacity=%d", ErrInvalidFilterParams, rate, capacity)
	}
	f := &ScalableBloomFilter{
		rate:     rate,
		nextRate: rate * (1 - tighteningRatio),
		capacity: capacity,
	}
	f.filters = append(f.filters, bloom.NewWithEstimates(capacity, f.nextRate))
	return f, nil
}

func (f *ScalableBloomFilter) Test(key []byte) bool {
	for _, sf := range f.filters {
		if sf.Test(key) {
			return true
		}
	}
	return false
}

func (f *ScalableBloomFilter) TestAndAdd(key []byte) bool {
	if f.Test(key) {
		return true
	}
	if f.count >= f.capacity {
		f.grow()
	}
	f.filters[len(f.filters)-1].Add(key)
	f.count++
	return false
}

// Stages returns the number of stacked sub-filters.
func (f *ScalableBloomFilter) Stages() int { return len(f.filters) }

func (f *ScalableBloomFilter) grow() {
	f.capacity *= growthFactor
	f.nextRate *= tighteningRatio
	f.filters = append(f.filters, bloom.NewWithEstimates(f.capacity, f.nextRate))
	f.count = 0
}

// Rate returns the target overall false-positive rate.
func (f *ScalableBloomFilter) Rate() float64 { return f.rate }
