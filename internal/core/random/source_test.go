package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeterminism(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
		require.Equal(t, a.NormFloat64(), b.NormFloat64(), "normal draw %d", i)
	}
}

func TestUniformBounds(t *testing.T) {
	src := New(7)
	for i := 0; i < 10000; i++ {
		v := Uniform(src, 0, 0.2)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 0.2)
	}
}

func TestBernoulliEdges(t *testing.T) {
	src := New(1)
	for i := 0; i < 100; i++ {
		assert.False(t, Bernoulli(src, 0))
		assert.False(t, Bernoulli(src, -3))
		assert.True(t, Bernoulli(src, 1))
		assert.True(t, Bernoulli(src, 2))
	}
}

func TestBernoulliFrequency(t *testing.T) {
	src := New(99)
	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if Bernoulli(src, 0.3) {
			hits++
		}
	}
	assert.InDelta(t, 0.3, float64(hits)/n, 0.02)
}
