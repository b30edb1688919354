// Package charset prepares input text for byte-oriented encoding. PDF417
// byte compaction transmits ISO-8859-1 by default; anything else needs an
// Extended Channel Interpretation announced in the codeword stream.
package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ToLatin1 converts a UTF-8 string to its ISO-8859-1 byte sequence, returned
// as a string of raw bytes. Inputs that are pure ASCII pass through
// untouched. It fails if any rune has no Latin-1 representation.
func ToLatin1(s string) (string, error) {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return s, nil
	}
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("charset: input not representable in ISO-8859-1: %v", err)
	}
	return out, nil
}
