package pdf417

import (
	"errors"

	"github.com/ericlevine/pdf417/encoders"
)

var (
	// ErrConfiguration is returned when columns or the security level are
	// set outside their legal range.
	ErrConfiguration = errors.New("pdf417: invalid configuration")

	// ErrEncoding is returned when the input contains a character that no
	// registered mode encoder can represent. It is the same sentinel the
	// encoders package reports, re-exported for callers of Encode.
	ErrEncoding = encoders.ErrUnencodable

	// ErrDomain is returned when a codeword lookup is attempted outside the
	// table domain. Given a correct encoder this is unreachable and indicates
	// a programmer error rather than bad input.
	ErrDomain = errors.New("pdf417: value outside codeword domain")
)
