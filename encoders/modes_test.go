package encoders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEncoderKnownRuns(t *testing.T) {
	enc := NewTextEncoder()

	// The symbology's worked example.
	words, err := enc.Encode("PDF417", false)
	require.NoError(t, err)
	assert.Equal(t, []int{453, 178, 121, 239}, words)

	words, err = enc.Encode("Hello", false)
	require.NoError(t, err)
	assert.Equal(t, []int{237, 131, 344}, words)

	words, err = enc.Encode("Hello", true)
	require.NoError(t, err)
	assert.Equal(t, []int{900, 237, 131, 344}, words)
}

func TestTextEncoderSubmodes(t *testing.T) {
	enc := NewTextEncoder()

	// Lowercase latch, punctuation shift for a punctuation-only byte, then
	// back in lower submode, with a padding punctuation shift at the end.
	words, err := enc.Encode("a;b", false)
	require.NoError(t, err)
	assert.Equal(t, []int{810, 870, 59}, words)

	// '.' lives in the mixed table, so it latches instead of shifting.
	words, err = enc.Encode("a.b", false)
	require.NoError(t, err)
	assert.Equal(t, []int{810, 857, 811}, words)

	// Two consecutive punctuation bytes are worth the punctuation latch.
	words, err = enc.Encode(".;;", false)
	require.NoError(t, err)
	assert.Equal(t, []int{857, 750, 29}, words)

	// Upper after lower is a single-character shift, not a latch.
	words, err = enc.Encode("aA", false)
	require.NoError(t, err)
	assert.Equal(t, []int{810, 810}, words)

	// '.' lives in the mixed submode table via a latch from upper.
	words, err = enc.Encode("..", false)
	require.NoError(t, err)
	assert.Equal(t, []int{857, 539}, words)
}

func TestTextEncoderRejectsNonText(t *testing.T) {
	enc := NewTextEncoder()
	_, err := enc.Encode("a\x01b", false)
	assert.ErrorIs(t, err, ErrUnencodable)

	assert.True(t, enc.CanEncode('A'))
	assert.True(t, enc.CanEncode('\t'))
	assert.True(t, enc.CanEncode('~'))
	assert.False(t, enc.CanEncode(0x01))
	assert.False(t, enc.CanEncode(0x7f))
	assert.False(t, enc.CanEncode(0xe9))
}

func TestNumericEncoderKnownRun(t *testing.T) {
	enc := NewNumericEncoder()

	// Worked example from the numeric compaction definition.
	words, err := enc.Encode("000213298174000", false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 624, 434, 632, 282, 200}, words)

	words, err = enc.Encode("000213298174000", true)
	require.NoError(t, err)
	assert.Equal(t, []int{902, 1, 624, 434, 632, 282, 200}, words)
}

func TestNumericEncoderLongRunChunks(t *testing.T) {
	enc := NewNumericEncoder()
	digits := ""
	for i := 0; i < 100; i++ {
		digits += string(rune('0' + i%10))
	}
	words, err := enc.Encode(digits, false)
	require.NoError(t, err)
	// 44+44+12 digits: 15+15+5 codewords per chunk.
	assert.Len(t, words, 35)
	for _, w := range words {
		assert.GreaterOrEqual(t, w, 0)
		assert.Less(t, w, 900)
	}
}

func TestNumericEncoderRejectsNonDigits(t *testing.T) {
	enc := NewNumericEncoder()
	_, err := enc.Encode("12a4", false)
	assert.ErrorIs(t, err, ErrUnencodable)
	_, err = enc.Encode("", false)
	assert.ErrorIs(t, err, ErrUnencodable)
}

func TestByteEncoderKnownRun(t *testing.T) {
	enc := NewByteEncoder()

	// Worked example from the byte compaction definition: a full six-byte
	// group packs into five codewords behind the clean-fit latch.
	words, err := enc.Encode("alcool", true)
	require.NoError(t, err)
	assert.Equal(t, []int{924, 163, 238, 432, 766, 244}, words)

	// A trailing partial group is emitted byte per byte after the padded
	// latch.
	words, err = enc.Encode("alcool!", true)
	require.NoError(t, err)
	assert.Equal(t, []int{901, 163, 238, 432, 766, 244, 33}, words)
}

func TestByteEncoderSwitchCode(t *testing.T) {
	enc := NewByteEncoder()
	assert.Equal(t, 924, enc.SwitchCode("sixsix"))
	assert.Equal(t, 901, enc.SwitchCode("seven!!"))
	assert.Equal(t, 901, enc.SwitchCode(""))
}

func TestByteEncoderIsTotal(t *testing.T) {
	enc := NewByteEncoder()
	for b := 0; b < 256; b++ {
		assert.True(t, enc.CanEncode(byte(b)))
	}
	words, err := enc.Encode("\x00\xff", false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 255}, words)
}
