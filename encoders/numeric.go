package encoders

import (
	"fmt"
	"math/big"
)

// numericChunk is the most digits one base-900 group may pack. Longer runs
// split into consecutive groups, each with its own leading "1" sentinel.
const numericChunk = 44

// NumericEncoder implements numeric compaction: a run of digits is prefixed
// with "1" and rewritten from base 10 to base 900, packing just under three
// digits into each codeword.
type NumericEncoder struct{}

// NewNumericEncoder returns the numeric compaction mode.
func NewNumericEncoder() *NumericEncoder { return &NumericEncoder{} }

// CanEncode reports whether b is a decimal digit.
func (e *NumericEncoder) CanEncode(b byte) bool {
	return b >= '0' && b <= '9'
}

// SwitchCode returns the numeric mode latch.
func (e *NumericEncoder) SwitchCode(string) int { return latchNumeric }

// Encode converts a digit run to numeric compaction codewords.
func (e *NumericEncoder) Encode(data string, addSwitch bool) ([]int, error) {
	for i := 0; i < len(data); i++ {
		if !e.CanEncode(data[i]) {
			return nil, fmt.Errorf("%w: byte 0x%02x is not a digit", ErrUnencodable, data[i])
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty digit run", ErrUnencodable)
	}

	out := make([]int, 0, len(data)/3+2)
	if addSwitch {
		out = append(out, latchNumeric)
	}

	base := big.NewInt(900)
	zero := big.NewInt(0)
	mod := new(big.Int)
	for p := 0; p < len(data); p += numericChunk {
		end := p + numericChunk
		if end > len(data) {
			end = len(data)
		}
		// The leading "1" preserves leading zeros in the chunk.
		n := new(big.Int)
		n.SetString("1"+data[p:end], 10)

		words := make([]int, 0, (end-p)/3+2)
		for {
			n.DivMod(n, base, mod)
			words = append(words, int(mod.Int64()))
			if n.Cmp(zero) == 0 {
				break
			}
		}
		for i := len(words) - 1; i >= 0; i-- {
			out = append(out, words[i])
		}
	}
	return out, nil
}
