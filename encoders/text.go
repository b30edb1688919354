package encoders

import "fmt"

// Text compaction submodes.
const (
	submodeUpper = iota
	submodeLower
	submodeMixed
	submodePunct
)

// In-mode shift and latch values (half codewords, 0..29).
const (
	textPunctLatch = 25 // mixed -> punctuation
	textSpace      = 26
	textLowerLatch = 27 // upper/mixed -> lower; also the alpha shift from lower
	textMixedLatch = 28 // upper/lower -> mixed; also the alpha latch from mixed
	textPunctShift = 29 // single punctuation char; also the alpha latch from punctuation
)

// mixedRaw and punctuationRaw list which byte each half-codeword value 0..29
// stands for in the mixed and punctuation submodes. Zero marks unused slots.
var mixedRaw = []byte{
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 38, 13, 9, 44, 58,
	35, 45, 46, 36, 47, 43, 37, 42, 61, 94, 0, 32, 0, 0, 0,
}

var punctuationRaw = []byte{
	59, 60, 62, 64, 91, 92, 93, 95, 96, 126, 33, 13, 9, 44, 58,
	10, 45, 46, 36, 47, 34, 124, 42, 40, 41, 63, 123, 125, 39, 0,
}

// Inverse lookups, -1 where a byte has no value in the submode.
var (
	mixedValue [128]int
	punctValue [128]int
)

func init() {
	for i := range mixedValue {
		mixedValue[i] = -1
		punctValue[i] = -1
	}
	for i, b := range mixedRaw {
		if b > 0 {
			mixedValue[b] = i
		}
	}
	for i, b := range punctuationRaw {
		if b > 0 {
			punctValue[b] = i
		}
	}
}

// TextEncoder implements text compaction: printable ASCII plus tab, newline
// and carriage return, packed two half codewords per codeword and steered
// through four submodes with shift and latch values.
type TextEncoder struct{}

// NewTextEncoder returns the text compaction mode.
func NewTextEncoder() *TextEncoder { return &TextEncoder{} }

// CanEncode reports whether b is in the text byte class.
func (e *TextEncoder) CanEncode(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r' || (b >= 32 && b <= 126)
}

// SwitchCode returns the text mode latch.
func (e *TextEncoder) SwitchCode(string) int { return latchText }

// Encode converts data to text compaction codewords. Every run starts in the
// upper submode, matching what a reader assumes after a text latch.
func (e *TextEncoder) Encode(data string, addSwitch bool) ([]int, error) {
	vals, err := e.values(data)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(vals)/2+2)
	if addSwitch {
		out = append(out, latchText)
	}
	for i := 0; i+1 < len(vals); i += 2 {
		out = append(out, vals[i]*30+vals[i+1])
	}
	if len(vals)%2 != 0 {
		// An odd value stream is padded with a trailing punctuation shift,
		// which a reader drops when the data ends.
		out = append(out, vals[len(vals)-1]*30+textPunctShift)
	}
	return out, nil
}

// values runs the submode machine, producing one half codeword (0..29) per
// emitted shift, latch or character value.
func (e *TextEncoder) values(data string) ([]int, error) {
	vals := make([]int, 0, len(data)+2)
	submode := submodeUpper
	for i := 0; i < len(data); {
		b := data[i]
		if !e.CanEncode(b) {
			return nil, fmt.Errorf("%w: byte 0x%02x is not text", ErrUnencodable, b)
		}
		switch submode {
		case submodeUpper:
			switch {
			case b == ' ':
				vals = append(vals, textSpace)
			case isUpper(b):
				vals = append(vals, int(b-'A'))
			case isLower(b):
				submode = submodeLower
				vals = append(vals, textLowerLatch)
				continue
			case mixedValue[b] >= 0:
				submode = submodeMixed
				vals = append(vals, textMixedLatch)
				continue
			default:
				vals = append(vals, textPunctShift, punctValue[b])
			}

		case submodeLower:
			switch {
			case b == ' ':
				vals = append(vals, textSpace)
			case isLower(b):
				vals = append(vals, int(b-'a'))
			case isUpper(b):
				// Single-character shift; there is no latch back to upper.
				vals = append(vals, textLowerLatch, int(b-'A'))
			case mixedValue[b] >= 0:
				submode = submodeMixed
				vals = append(vals, textMixedLatch)
				continue
			default:
				vals = append(vals, textPunctShift, punctValue[b])
			}

		case submodeMixed:
			switch {
			case mixedValue[b] >= 0:
				vals = append(vals, mixedValue[b])
			case isUpper(b):
				submode = submodeUpper
				vals = append(vals, textMixedLatch)
				continue
			case isLower(b):
				submode = submodeLower
				vals = append(vals, textLowerLatch)
				continue
			default:
				if i+1 < len(data) && punctValue[data[i+1]] >= 0 {
					submode = submodePunct
					vals = append(vals, textPunctLatch)
					continue
				}
				vals = append(vals, textPunctShift, punctValue[b])
			}

		default: // submodePunct
			if punctValue[b] >= 0 {
				vals = append(vals, punctValue[b])
			} else {
				submode = submodeUpper
				vals = append(vals, textPunctShift)
				continue
			}
		}
		i++
	}
	return vals, nil
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
