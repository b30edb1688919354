// Package render turns a completed pdf417.Barcode into module-level output:
// a bit matrix for rasterizers, or a text picture for terminals. The encoder
// core has no dependency on this package; it is the collaborator that
// consumes the finished codeword grid.
package render

import "strings"

// BitMatrix is a 2D matrix of modules. x is the column, y the row, origin at
// the top left.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a cleared matrix of the given size.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("render: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// Get returns the module at (x, y).
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>(x&0x1f))&1 != 0
}

// Set turns the module at (x, y) on.
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << (x & 0x1f)
}

// Width returns the matrix width in modules.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the matrix height in modules.
func (bm *BitMatrix) Height() int { return bm.height }

// String renders the matrix with "X" for set modules, matching the usual
// debugging output of barcode tooling.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X", " ")
}

// StringWithChars renders the matrix with the given module strings.
func (bm *BitMatrix) StringWithChars(set, unset string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(set) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(set)
			} else {
				sb.WriteString(unset)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
