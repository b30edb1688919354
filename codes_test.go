package pdf417

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterForRow(t *testing.T) {
	assert.Equal(t, cluster0, clusterForRow(0))
	assert.Equal(t, cluster1, clusterForRow(1))
	assert.Equal(t, cluster2, clusterForRow(2))
	assert.Equal(t, cluster0, clusterForRow(3))
	assert.Equal(t, cluster2, clusterForRow(89))
}

func TestCodewordForRejectsOutOfDomain(t *testing.T) {
	_, err := codewordFor(cluster(3), 0)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = codewordFor(cluster(-1), 0)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = codewordFor(cluster0, -1)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = codewordFor(cluster0, NumberOfCodewords)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestCodewordForLooksUpTable(t *testing.T) {
	for _, c := range []cluster{cluster0, cluster1, cluster2} {
		got, err := codewordFor(c, PaddingCodeword)
		require.NoError(t, err)
		assert.Equal(t, codewordTable[c][PaddingCodeword], got)
	}
}

// Every table entry is a legal codeword pattern: 17 modules, leading bar,
// trailing space, four bars and four spaces each at most six modules wide,
// and the bar-width alternating sum that identifies the cluster.
func TestCodewordTableStructure(t *testing.T) {
	for c := 0; c < 3; c++ {
		seen := make(map[int]bool, NumberOfCodewords)
		for value, pattern := range codewordTable[c] {
			require.False(t, seen[pattern], "cluster %d value %d duplicates pattern %#x", c, value, pattern)
			seen[pattern] = true

			require.Less(t, pattern, 1<<ModulesInCodeword)
			require.NotZero(t, pattern&(1<<(ModulesInCodeword-1)), "cluster %d value %d must start with a bar", c, value)
			require.Zero(t, pattern&1, "cluster %d value %d must end with a space", c, value)

			widths := runWidths(pattern)
			require.Len(t, widths, 8, "cluster %d value %d", c, value)
			for _, w := range widths {
				require.LessOrEqual(t, w, 6)
			}

			disc := (widths[0] - widths[2] + widths[4] - widths[6]) % 9
			disc = (disc + 9) % 9
			assert.Equal(t, c*3, disc, "cluster %d value %d", c, value)
		}
	}
}

// runWidths splits a 17-module pattern into alternating bar and space run
// lengths, most significant module first.
func runWidths(pattern int) []int {
	var widths []int
	last := pattern >> (ModulesInCodeword - 1) & 1
	width := 0
	for i := ModulesInCodeword - 1; i >= 0; i-- {
		bit := pattern >> i & 1
		if bit == last {
			width++
			continue
		}
		widths = append(widths, width)
		last, width = bit, 1
	}
	return append(widths, width)
}

func TestStartAndStopPatterns(t *testing.T) {
	assert.Equal(t, 17, bits.Len(uint(StartPattern)))
	assert.Equal(t, 18, bits.Len(uint(StopPattern)))
	// The start column ends with a space, the stop column with a bar.
	assert.Zero(t, StartPattern&1)
	assert.NotZero(t, StopPattern&1)
}
