package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectClean(t *testing.T) {
	g := NewGenerator()
	data := []int{5, 453, 178, 121, 239}
	ec, err := g.Compute(data, 1)
	require.NoError(t, err)

	full := append(append([]int{}, data...), ec...)
	n, err := Correct(full, len(ec))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, append(data, ec...), full)
}

// Level s protects against 2^s corrupted codewords; sweep the full capacity at
// several levels and positions, including errors inside the parity tail.
func TestCorrectRoundTrip(t *testing.T) {
	g := NewGenerator()
	data := make([]int, 30)
	for i := range data {
		data[i] = (i*53 + 11) % 929
	}

	for level := 1; level <= 4; level++ {
		ec, err := g.Compute(data, level)
		require.NoError(t, err)
		original := append(append([]int{}, data...), ec...)

		maxErrors := 1 << level
		received := append([]int{}, original...)
		for e := 0; e < maxErrors; e++ {
			pos := (e * 7) % len(received)
			received[pos] = (received[pos] + 100 + e) % 929
		}

		n, err := Correct(received, len(ec))
		require.NoError(t, err, "level %d", level)
		assert.Equal(t, original, received, "level %d", level)
		assert.LessOrEqual(t, n, maxErrors)
		assert.Positive(t, n)
	}
}

func TestCorrectBeyondCapacity(t *testing.T) {
	g := NewGenerator()
	data := make([]int, 20)
	for i := range data {
		data[i] = (i * 31) % 929
	}
	ec, err := g.Compute(data, 1) // 4 parity words, corrects up to 2
	require.NoError(t, err)

	received := append(append([]int{}, data...), ec...)
	for i := 0; i < 6; i++ {
		received[i*3] = (received[i*3] + 17) % 929
	}
	// Six errors against a capacity of two: the decoder must not silently
	// return the corrupted sequence as clean.
	n, err := Correct(received, len(ec))
	if err == nil {
		assert.Positive(t, n)
	}
}
