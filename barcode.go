// Package pdf417 builds PDF417 barcode symbols: it turns a byte string into
// the two-dimensional grid of codewords that a renderer converts to bars and
// spaces. Rendering itself lives in the render subpackage.
package pdf417

// Structural constants of the symbology.
const (
	// NumberOfCodewords is the size of the codeword alphabet (and of the
	// GF(929) field error correction operates in).
	NumberOfCodewords = 929

	// MaxCodewordValue is the largest abstract codeword value a symbol may
	// carry; 900 through 928 are function codewords.
	MaxCodewordValue = 928

	// PaddingCodeword fills the last row up to a full column count. 900 is
	// also the text-mode latch, which a reader ignores at end of data.
	PaddingCodeword = 900

	// ModulesInCodeword is the width of one codeword in modules.
	ModulesInCodeword = 17

	// StartPattern and StopPattern are the fixed bar patterns framing every
	// row. They are physical patterns already and never pass through the
	// cluster tables. The stop pattern is one module wider.
	StartPattern = 0x1fea8
	StopPattern  = 0x3fa29

	MinColumns       = 1
	MaxColumns       = 30
	MinSecurityLevel = 0
	MaxSecurityLevel = 8

	DefaultColumns       = 6
	DefaultSecurityLevel = 2
)

// Barcode is the completed symbol: the row-major grid of physical codewords
// plus the abstract codeword sequence it was built from. It is a plain value
// owned by the caller; Encode never retains or reuses one.
type Barcode struct {
	// Codes holds one slice per row: start pattern, left row indicator,
	// Columns data codewords, right row indicator, stop pattern.
	Codes [][]int

	// CodeWords is the abstract codeword sequence before table translation:
	// length descriptor, data, padding, error correction tail.
	CodeWords []int

	Rows          int
	Columns       int
	SecurityLevel int
}
