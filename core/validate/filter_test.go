package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalableBloomParams(t *testing.T) {
	for _, tc := range []struct {
		rate float64
		cap  uint
	}{{0, 10}, {1, 10}, {-0.1, 10}, {0.01, 0}} {
		_, err := NewScalableBloomFilter(tc.rate, tc.cap)
		assert.ErrorIs(t, err, ErrInvalidFilterParams, "%v", tc)
	}
}

func TestScalableBloomNoFalseNegatives(t *testing.T) {
	f, err := NewScalableBloomFilter(0.001, 100)
	require.NoError(t, err)
	const n = 5000
	for i := 0; i < n; i++ {
		f.TestAndAdd([]byte(fmt.Sprintf("read:%d", i)))
	}
	assert.Greater(t, f.Stages(), 1, "filter should have grown past its initial capacity")
	for i := 0; i < n; i++ {
		key := []byte(fmt.Sprintf("read:%d", i))
		assert.True(t, f.Test(key))
		assert.True(t, f.TestAndAdd(key))
	}
}

func TestScalableBloomFalsePositiveRate(t *testing.T) {
	f, err := NewScalableBloomFilter(0.01, 1000)
	require.NoError(t, err)
	for i := 0; i < 4000; i++ {
		f.TestAndAdd([]byte(fmt.Sprintf("in:%d", i)))
	}
	fp := 0
	const probes = 20000
	for i := 0; i < probes; i++ {
		if f.Test([]byte(fmt.Sprintf("out:%d", i))) {
			fp++
		}
	}
	assert.Less(t, float64(fp)/probes, 0.03)
	assert.Equal(t, 0.01, f.Rate())
}
