package encoders

// ByteEncoder implements byte compaction: groups of six bytes are rewritten
// from base 256 to five base-900 codewords, and a trailing partial group is
// emitted one codeword per byte. It accepts every byte, making it the
// fallback mode.
type ByteEncoder struct{}

// NewByteEncoder returns the byte compaction mode.
func NewByteEncoder() *ByteEncoder { return &ByteEncoder{} }

// CanEncode always reports true: byte compaction is total.
func (e *ByteEncoder) CanEncode(byte) bool { return true }

// SwitchCode returns the byte mode latch. Data that fills its six-byte
// groups exactly uses the dedicated latch so the reader knows there is no
// partial group at the end.
func (e *ByteEncoder) SwitchCode(data string) int {
	if len(data) > 0 && len(data)%6 == 0 {
		return latchByte
	}
	return latchBytePadded
}

// Encode converts data to byte compaction codewords. It cannot fail: every
// byte is encodable.
func (e *ByteEncoder) Encode(data string, addSwitch bool) ([]int, error) {
	out := make([]int, 0, len(data)*5/6+2)
	if addSwitch {
		out = append(out, e.SwitchCode(data))
	}

	p := 0
	var group [5]int
	for len(data)-p >= 6 {
		var t int64
		for i := 0; i < 6; i++ {
			t = t<<8 + int64(data[p+i])
		}
		for i := 4; i >= 0; i-- {
			group[i] = int(t % 900)
			t /= 900
		}
		out = append(out, group[:]...)
		p += 6
	}
	for ; p < len(data); p++ {
		out = append(out, int(data[p]))
	}
	return out, nil
}
