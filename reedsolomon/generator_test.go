package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeKnownVectors(t *testing.T) {
	g := NewGenerator()

	// Single data word over the level 0 generator (x-3)(x-9).
	ec, err := g.Compute([]int{5}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{869, 135}, ec)

	// The symbology's worked example: "PDF417" in text compaction behind
	// its length descriptor, protected at level 1.
	ec, err = g.Compute([]int{5, 453, 178, 121, 239}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{452, 327, 657, 619}, ec)
}

func TestComputeCountPerLevel(t *testing.T) {
	g := NewGenerator()
	data := []int{9, 25, 99, 900, 928, 0, 1}
	for level := MinSecurityLevel; level <= MaxSecurityLevel; level++ {
		ec, err := g.Compute(data, level)
		require.NoError(t, err)
		assert.Len(t, ec, 1<<(level+1), "level %d", level)
		for _, w := range ec {
			assert.GreaterOrEqual(t, w, 0)
			assert.Less(t, w, 929)
		}
	}
}

// The defining property of the parity tail: appending it makes the codeword
// polynomial vanish at every root of the generator polynomial.
func TestComputeSyndromesVanish(t *testing.T) {
	g := NewGenerator()
	data := make([]int, 40)
	for i := range data {
		data[i] = (i*i*7 + 13) % 929
	}
	for level := MinSecurityLevel; level <= MaxSecurityLevel; level++ {
		ec, err := g.Compute(data, level)
		require.NoError(t, err)
		full := append(append([]int{}, data...), ec...)
		for i := 1; i <= len(ec); i++ {
			root := GF929.Exp(i)
			acc := 0
			for _, c := range full {
				acc = GF929.Add(GF929.Multiply(root, acc), c)
			}
			assert.Zero(t, acc, "level %d root 3^%d", level, i)
		}
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	g := NewGenerator()
	data := []int{1, 2, 3, 4, 5}
	_, err := g.Compute(data, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, data)
}

func TestComputeLevelOutOfRange(t *testing.T) {
	g := NewGenerator()
	for _, level := range []int{-1, 9, 100} {
		_, err := g.Compute([]int{1}, level)
		assert.ErrorIs(t, err, ErrSecurityLevel, "level %d", level)
	}
}

func TestFieldArithmetic(t *testing.T) {
	f := GF929
	assert.Equal(t, 929, f.Size())
	assert.Equal(t, 3, f.Exp(1))
	assert.Equal(t, 1, f.Exp(0))
	for _, a := range []int{1, 2, 3, 100, 500, 928} {
		assert.Equal(t, 1, f.Multiply(a, f.Inverse(a)), "a=%d", a)
		assert.Equal(t, 0, f.Add(a, f.Subtract(0, a)))
		assert.Equal(t, a, f.Exp(f.Log(a)))
	}
	assert.Equal(t, 0, f.Multiply(0, 500))
}
