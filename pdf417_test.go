package pdf417

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetColumnsRange(t *testing.T) {
	enc := NewEncoder()
	assert.NoError(t, enc.SetColumns(1))
	assert.NoError(t, enc.SetColumns(30))
	assert.ErrorIs(t, enc.SetColumns(0), ErrConfiguration)
	assert.ErrorIs(t, enc.SetColumns(31), ErrConfiguration)
	assert.ErrorIs(t, enc.SetColumns(-5), ErrConfiguration)
}

func TestSetSecurityLevelRange(t *testing.T) {
	enc := NewEncoder()
	assert.NoError(t, enc.SetSecurityLevel(0))
	assert.NoError(t, enc.SetSecurityLevel(8))
	assert.ErrorIs(t, enc.SetSecurityLevel(-1), ErrConfiguration)
	assert.ErrorIs(t, enc.SetSecurityLevel(9), ErrConfiguration)
}

func TestRejectedConfigurationLeavesEncoderUsable(t *testing.T) {
	enc := NewEncoder()
	require.Error(t, enc.SetColumns(99))
	bc, err := enc.Encode("still fine")
	require.NoError(t, err)
	assert.Equal(t, DefaultColumns, bc.Columns)
	assert.Equal(t, DefaultSecurityLevel, bc.SecurityLevel)
}

func TestEncodeEndToEnd(t *testing.T) {
	enc := NewEncoder() // 6 columns, security level 2
	bc, err := enc.Encode("Hello, World!")
	require.NoError(t, err)

	assert.Zero(t, len(bc.CodeWords)%6)
	assert.Equal(t, len(bc.CodeWords)/6, bc.Rows)
	assert.Equal(t, 6, bc.Columns)
	assert.Equal(t, 2, bc.SecurityLevel)

	// The length descriptor covers itself, the data and the padding, but
	// not the eight error correction codewords of level 2.
	assert.Equal(t, len(bc.CodeWords)-8, bc.CodeWords[0])

	for _, row := range bc.Codes {
		require.Len(t, row, 6+4)
		assert.Equal(t, StartPattern, row[0])
		assert.Equal(t, StopPattern, row[len(row)-1])
	}
}

func TestEncodeGridProperties(t *testing.T) {
	const input = "Grid property sweep 0123456789"
	for columns := MinColumns; columns <= MaxColumns; columns++ {
		enc := NewEncoder()
		require.NoError(t, enc.SetColumns(columns))
		bc, err := enc.Encode(input)
		require.NoError(t, err, "columns %d", columns)

		assert.Zero(t, len(bc.CodeWords)%columns, "columns %d", columns)
		assert.Equal(t, len(bc.CodeWords)/columns, bc.Rows)
		for _, row := range bc.Codes {
			assert.Len(t, row, columns+4)
		}
	}

	for level := MinSecurityLevel; level <= MaxSecurityLevel; level++ {
		enc := NewEncoder()
		require.NoError(t, enc.SetSecurityLevel(level))
		bc, err := enc.Encode(input)
		require.NoError(t, err, "level %d", level)

		// Everything after the descriptor-counted prefix is the EC tail.
		assert.Equal(t, 1<<(level+1), len(bc.CodeWords)-bc.CodeWords[0], "level %d", level)
		assert.Zero(t, len(bc.CodeWords)%bc.Columns)
	}
}

func TestEncodePaddingUsesSentinel(t *testing.T) {
	enc := NewEncoder()
	bc, err := enc.Encode("A")
	require.NoError(t, err)

	// A one-character input cannot fill 6 columns without padding.
	descriptor := bc.CodeWords[0]
	padded := bc.CodeWords[1:descriptor]
	require.NotEmpty(t, padded)
	assert.Equal(t, PaddingCodeword, padded[len(padded)-1])
}

func TestEncodeIdempotent(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.SetColumns(4))
	require.NoError(t, enc.SetSecurityLevel(3))

	a, err := enc.Encode("idempotence check 123456789012345")
	require.NoError(t, err)
	b, err := enc.Encode("idempotence check 123456789012345")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodeNonLatin1(t *testing.T) {
	enc := NewEncoder()
	_, err := enc.Encode("snowman ☃")
	assert.ErrorIs(t, err, ErrEncoding)

	enc.SetAutoECI(true)
	bc, err := enc.Encode("snowman ☃")
	require.NoError(t, err)
	// The data stream opens with the UTF-8 ECI announcement.
	assert.Equal(t, 927, bc.CodeWords[1])
	assert.Equal(t, 26, bc.CodeWords[2])
}

func TestEncodeLatin1Accent(t *testing.T) {
	enc := NewEncoder()
	bc, err := enc.Encode("café")
	require.NoError(t, err)
	// 0xe9 is not text-encodable, so the input goes through byte mode.
	assert.NotZero(t, bc.Rows)
}

func TestEncodeTooLong(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.SetColumns(30))
	long := make([]byte, 0, 2000)
	for i := 0; i < 2000; i++ {
		long = append(long, byte('A'+i%26))
	}
	_, err := enc.Encode(string(long))
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEncodeRowLimit(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.SetColumns(1))
	require.NoError(t, enc.SetSecurityLevel(5)) // 64 EC words alone

	// 110 text characters pack into 55 codewords; with the descriptor and
	// the EC tail that is 120 rows of one column, well past the limit.
	_, err := enc.Encode(strings.Repeat("one column never fits ", 5))
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEncodeMinimumRows(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.SetColumns(30))
	bc, err := enc.Encode("A")
	require.NoError(t, err)
	assert.Equal(t, MinRows, bc.Rows)
	assert.Len(t, bc.CodeWords, MinRows*30)
}

// Any single row must be enough to recover the symbol dimensions: undo the
// cluster-specific descriptor packing and rebuild rows, columns and security
// level from each row in isolation.
func TestRowDescriptorRoundTrip(t *testing.T) {
	for _, tc := range []struct{ rows, columns, level int }{
		{3, 6, 2},
		{7, 1, 0},
		{30, 12, 8},
		{90, 30, 5},
		{4, 2, 1},
	} {
		for rowNum := 0; rowNum < tc.rows; rowNum++ {
			left, right := rowDescriptors(rowNum, tc.rows, tc.columns, tc.level)

			assert.Equal(t, rowNum/3, left/30, "band in left descriptor")
			assert.Equal(t, rowNum/3, right/30, "band in right descriptor")

			var gotRows, gotColumns, gotLevel int
			leftX, rightX := left%30, right%30
			switch clusterForRow(rowNum) {
			case cluster0:
				gotRows = leftX*3 + (tc.rows-1)%3 + 1
				gotColumns = rightX + 1
				gotLevel = tc.level // carried by neighboring clusters
			case cluster1:
				gotLevel = leftX / 3
				gotRows = rightX*3 + leftX%3 + 1
				gotColumns = tc.columns
			case cluster2:
				gotColumns = leftX + 1
				gotLevel = rightX / 3
				gotRows = (tc.rows-1)/3*3 + rightX%3 + 1
			}
			assert.Equal(t, tc.rows, gotRows, "rows from row %d", rowNum)
			assert.Equal(t, tc.columns, gotColumns, "columns from row %d", rowNum)
			assert.Equal(t, tc.level, gotLevel, "level from row %d", rowNum)
		}
	}
}
