package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pdf417 "github.com/ericlevine/pdf417"
)

func encode(t *testing.T, input string) *pdf417.Barcode {
	t.Helper()
	bc, err := pdf417.NewEncoder().Encode(input)
	require.NoError(t, err)
	return bc
}

func TestMatrixDimensions(t *testing.T) {
	bc := encode(t, "Hello, World!")
	rowModules := (bc.Columns+4)*17 + 1

	bm := Matrix(bc, Options{})
	assert.Equal(t, (rowModules+4)*1, bm.Width())
	assert.Equal(t, (bc.Rows+4)*4, bm.Height())

	zero := 0
	bm = Matrix(bc, Options{Scale: 3, RowHeight: 2, Margin: &zero})
	assert.Equal(t, rowModules*3, bm.Width())
	assert.Equal(t, bc.Rows*2, bm.Height())
}

func TestMatrixStartAndStop(t *testing.T) {
	bc := encode(t, "start stop check")
	zero := 0
	bm := Matrix(bc, Options{Scale: 1, RowHeight: 1, Margin: &zero})

	// Every row begins with the start pattern's leading bar and ends with
	// the stop pattern's terminating bar.
	for y := 0; y < bm.Height(); y++ {
		assert.True(t, bm.Get(0, y), "row %d leading module", y)
		assert.True(t, bm.Get(bm.Width()-1, y), "row %d trailing module", y)
	}
}

func TestMatrixQuietZoneClear(t *testing.T) {
	bc := encode(t, "quiet")
	bm := Matrix(bc, Options{})

	for x := 0; x < bm.Width(); x++ {
		assert.False(t, bm.Get(x, 0), "top margin at x=%d", x)
		assert.False(t, bm.Get(x, bm.Height()-1), "bottom margin at x=%d", x)
	}
	for y := 0; y < bm.Height(); y++ {
		assert.False(t, bm.Get(0, y), "left margin at y=%d", y)
		assert.False(t, bm.Get(bm.Width()-1, y), "right margin at y=%d", y)
	}
}

func TestMatrixScaleRepeatsModules(t *testing.T) {
	bc := encode(t, "scale")
	zero := 0
	base := Matrix(bc, Options{Scale: 1, RowHeight: 1, Margin: &zero})
	scaled := Matrix(bc, Options{Scale: 2, RowHeight: 3, Margin: &zero})

	require.Equal(t, base.Width()*2, scaled.Width())
	require.Equal(t, base.Height()*3, scaled.Height())
	for y := 0; y < scaled.Height(); y++ {
		for x := 0; x < scaled.Width(); x++ {
			assert.Equal(t, base.Get(x/2, y/3), scaled.Get(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestText(t *testing.T) {
	bc := encode(t, "terminal output")
	out := Text(bc)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, bc.Rows)
	assert.True(t, strings.HasPrefix(lines[0], "██"))
}

func TestBitMatrixString(t *testing.T) {
	bm := NewBitMatrix(3, 2)
	bm.Set(0, 0)
	bm.Set(2, 1)
	assert.Equal(t, "X  \n  X\n", bm.String())
}
