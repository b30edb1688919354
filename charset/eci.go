package charset

import (
	"errors"
	"fmt"
)

// ECI codewords announcing an interpretation change.
const (
	eciCharsetLarge = 925 // one following codeword, assignments 810900..811799
	eciGeneral      = 926 // two following codewords, assignments 900..810899
	eciCharset      = 927 // one following codeword, assignments 0..899
)

// Common ECI assignment numbers from the AIM ECI registry.
const (
	ECILatin1 = 3
	ECIUTF8   = 26
)

// ErrECI is returned for an assignment number outside the registry range.
var ErrECI = errors.New("charset: ECI assignment out of range")

// ECIWords returns the codeword sequence that switches a reader to the given
// ECI assignment number. Small assignments fit one codeword after the 927
// flag; larger ones use the 926 or 925 forms.
func ECIWords(eci int) ([]int, error) {
	switch {
	case eci < 0 || eci > 811799:
		return nil, fmt.Errorf("%w: %d", ErrECI, eci)
	case eci < 900:
		return []int{eciCharset, eci}, nil
	case eci < 810900:
		return []int{eciGeneral, eci/900 - 1, eci % 900}, nil
	default:
		return []int{eciCharsetLarge, eci - 810900}, nil
	}
}
