package render

import (
	pdf417 "github.com/ericlevine/pdf417"
)

// Pattern widths in modules. Every pattern in a row is 17 modules except the
// stop pattern, which carries one extra terminating bar module.
const (
	modulesInCodeword   = 17
	modulesInStopColumn = 18
)

const defaultMargin = 2

// Options control module geometry.
type Options struct {
	// Scale is the horizontal module multiplier. Default 1.
	Scale int

	// RowHeight is the vertical multiplier per symbol row. PDF417 rows are
	// conventionally printed tall; the default is 4.
	RowHeight int

	// Margin is the quiet zone in modules on every side. Nil means the
	// default of 2.
	Margin *int
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.RowHeight <= 0 {
		o.RowHeight = 4
	}
	if o.Margin == nil {
		m := defaultMargin
		o.Margin = &m
	}
	return o
}

// Matrix expands the physical codeword grid of bc into a module bit matrix,
// bars as set bits, quiet zone included.
func Matrix(bc *pdf417.Barcode, opts Options) *BitMatrix {
	opts = opts.withDefaults()
	margin := *opts.Margin

	rowModules := symbolWidth(bc)
	width := (rowModules + 2*margin) * opts.Scale
	height := (bc.Rows + 2*margin) * opts.RowHeight
	bm := NewBitMatrix(width, height)

	for rowNum, row := range bc.Codes {
		x := margin * opts.Scale
		y := (rowNum + margin) * opts.RowHeight
		for i, pattern := range row {
			bits := modulesInCodeword
			if i == len(row)-1 {
				bits = modulesInStopColumn
			}
			for b := bits - 1; b >= 0; b-- {
				if pattern>>b&1 != 0 {
					setModule(bm, x, y, opts.Scale, opts.RowHeight)
				}
				x += opts.Scale
			}
		}
	}
	return bm
}

// Text renders bc as a text picture, one output line per symbol row, two
// characters per module to roughly square the aspect ratio on a terminal.
func Text(bc *pdf417.Barcode) string {
	zero := 0
	bm := Matrix(bc, Options{Scale: 1, RowHeight: 1, Margin: &zero})
	return bm.StringWithChars("██", "  ")
}

func setModule(bm *BitMatrix, x, y, scale, rowHeight int) {
	for dy := 0; dy < rowHeight; dy++ {
		for dx := 0; dx < scale; dx++ {
			bm.Set(x+dx, y+dy)
		}
	}
}

// symbolWidth returns the row width in modules: start pattern, left row
// indicator, data columns, right row indicator, each 17 modules, plus the
// 18-module stop pattern.
func symbolWidth(bc *pdf417.Barcode) int {
	return (bc.Columns+4)*modulesInCodeword + 1
}
