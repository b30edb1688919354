// Package encoders converts input bytes into abstract PDF417 codewords.
// Three compaction modes cover the byte classes of the symbology — text,
// numeric and byte — and a DataEncoder segments the input into the cheapest
// sequence of mode runs.
package encoders

import (
	"errors"
	"fmt"
)

// Mode latch codewords. A latch switches the reader's compaction mode for
// all following codewords; readers start every symbol in text mode.
const (
	latchText       = 900
	latchBytePadded = 901
	latchNumeric    = 902
	latchByte       = 924

	// shiftByte escapes a single byte from text mode without leaving it.
	shiftByte = 913
)

// Run thresholds where a mode latch starts paying for itself: below 13
// digits the numeric latch plus base-900 groups cost more than staying in
// text mode, and below 5 text bytes a text latch costs more than byte
// compaction. These resolve the "fewest codewords" rule for the standard
// modes.
const (
	minNumericRun = 13
	minTextRun    = 5
)

// ErrUnencodable is returned when input contains a byte no registered mode
// encoder can represent.
var ErrUnencodable = errors.New("pdf417: unencodable input")

// Encoder is one compaction mode. Implementations are stateless: every
// Encode call starts a fresh run in the mode's initial state.
type Encoder interface {
	// CanEncode reports whether this mode can represent b. It is total and
	// never fails.
	CanEncode(b byte) bool

	// Encode converts data into codewords. When addSwitch is set the first
	// codeword is the mode's switch codeword. Fails with ErrUnencodable if
	// any byte of data is outside the mode's class.
	Encode(data string, addSwitch bool) ([]int, error)

	// SwitchCode returns the latch codeword that puts a reader into this
	// mode. It may depend on the data about to be encoded.
	SwitchCode(data string) int
}

// DataEncoder segments input across mode encoders and concatenates the
// per-run codewords, inserting a mode switch whenever the mode changes.
type DataEncoder struct {
	numeric *NumericEncoder
	text    *TextEncoder
	bytes   *ByteEncoder

	// extensions take precedence over the standard modes for any byte they
	// can encode.
	extensions []Encoder
}

// NewDataEncoder returns a DataEncoder with the three standard modes.
func NewDataEncoder() *DataEncoder {
	return &DataEncoder{
		numeric: NewNumericEncoder(),
		text:    NewTextEncoder(),
		bytes:   NewByteEncoder(),
	}
}

// Register adds a mode encoder that is preferred over the standard modes
// for every byte it can encode. It is the extension point for nonstandard
// byte classes.
func (d *DataEncoder) Register(enc Encoder) {
	d.extensions = append(d.extensions, enc)
}

// Encode converts input into the abstract data codeword sequence, mode
// switches included. Segmentation is deterministic: run boundaries depend
// only on the input.
func (d *DataEncoder) Encode(input string) ([]int, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnencodable)
	}

	var out []int
	current := Encoder(d.text) // readers assume text mode at symbol start
	for p := 0; p < len(input); {
		enc, run := d.next(input, p)

		// A lone binary byte inside a text context is cheaper as a shift
		// than as a full byte latch, and leaves the reader in text mode.
		if run == 1 && enc == Encoder(d.bytes) && current == Encoder(d.text) {
			out = append(out, shiftByte, int(input[p]))
			p++
			continue
		}

		words, err := enc.Encode(input[p:p+run], enc != current)
		if err != nil {
			return nil, err
		}
		out = append(out, words...)
		current = enc
		p += run
	}
	return out, nil
}

// next picks the mode and run length starting at p. Extensions win for any
// byte they accept; otherwise a digit burst long enough to amortize the
// numeric latch goes numeric, a text run long enough to amortize the text
// latch goes text, and everything else is swept into a byte run.
func (d *DataEncoder) next(input string, p int) (Encoder, int) {
	if ext := d.extension(input[p]); ext != nil {
		return ext, runLength(ext, input, p)
	}
	if n := runLength(d.numeric, input, p); n >= minNumericRun {
		return d.numeric, n
	}
	if t := d.textRun(input, p); t >= minTextRun || (t > 0 && p+t == len(input)) {
		return d.text, t
	}
	return d.bytes, d.byteRun(input, p)
}

// extension returns the first registered extension that accepts b, or nil.
func (d *DataEncoder) extension(b byte) Encoder {
	for _, ext := range d.extensions {
		if ext.CanEncode(b) {
			return ext
		}
	}
	return nil
}

// textRun returns the length of the text run at p. Digit bursts shorter
// than the numeric threshold stay inside the run; a longer burst, a
// non-text byte or an extension-claimed byte ends it.
func (d *DataEncoder) textRun(input string, p int) int {
	i := p
	for i < len(input) {
		if d.extension(input[i]) != nil {
			break
		}
		if digits := runLength(d.numeric, input, i); digits > 0 {
			if digits >= minNumericRun {
				break
			}
			i += digits
			continue
		}
		if !d.text.CanEncode(input[i]) {
			break
		}
		i++
	}
	return i - p
}

// byteRun returns the length of the byte run at p, which extends until a
// digit burst long enough for the numeric mode or an extension-claimed byte
// begins. Always at least 1.
func (d *DataEncoder) byteRun(input string, p int) int {
	i := p
	for i < len(input) {
		if d.extension(input[i]) != nil {
			break
		}
		if runLength(d.numeric, input, i) >= minNumericRun {
			break
		}
		i++
	}
	if i == p {
		return 1
	}
	return i - p
}

// runLength returns the length of the maximal run at p that enc can encode.
func runLength(enc Encoder, input string, p int) int {
	i := p
	for i < len(input) && enc.CanEncode(input[i]) {
		i++
	}
	return i - p
}
