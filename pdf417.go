package pdf417

import (
	"fmt"

	"github.com/ericlevine/pdf417/charset"
	"github.com/ericlevine/pdf417/encoders"
	"github.com/ericlevine/pdf417/reedsolomon"
)

// Symbol size limits from the symbology definition.
const (
	// MaxCodewords is the most codewords one symbol can carry, including the
	// length descriptor, padding and the error correction tail.
	MaxCodewords = 928

	MinRows = 3
	MaxRows = 90
)

// Encoder assembles PDF417 symbols. Configuration is mutable between Encode
// calls but must not change while one is in flight; use separate Encoders for
// concurrent encodes with different settings.
type Encoder struct {
	columns       int
	securityLevel int
	autoECI       bool
	data          *encoders.DataEncoder
	ec            *reedsolomon.Generator
}

// NewEncoder returns an Encoder with 6 columns and security level 2.
func NewEncoder() *Encoder {
	return &Encoder{
		columns:       DefaultColumns,
		securityLevel: DefaultSecurityLevel,
		data:          encoders.NewDataEncoder(),
		ec:            reedsolomon.NewGenerator(),
	}
}

// SetColumns sets the number of data codewords per row.
func (e *Encoder) SetColumns(n int) error {
	if n < MinColumns || n > MaxColumns {
		return fmt.Errorf("%w: columns %d outside [%d,%d]", ErrConfiguration, n, MinColumns, MaxColumns)
	}
	e.columns = n
	return nil
}

// SetSecurityLevel sets the error correction strength. Level s appends
// 2^(s+1) error correction codewords and lets a reader correct up to 2^s
// corrupted ones.
func (e *Encoder) SetSecurityLevel(s int) error {
	if s < MinSecurityLevel || s > MaxSecurityLevel {
		return fmt.Errorf("%w: security level %d outside [%d,%d]", ErrConfiguration, s, MinSecurityLevel, MaxSecurityLevel)
	}
	e.securityLevel = s
	return nil
}

// SetAutoECI controls what happens to input that does not fit ISO-8859-1,
// the symbology's default byte interpretation. Disabled (the default), such
// input fails with ErrEncoding. Enabled, the symbol announces UTF-8 via an
// ECI codeword and carries the raw UTF-8 bytes.
func (e *Encoder) SetAutoECI(enabled bool) {
	e.autoECI = enabled
}

// Encode builds the symbol for input. The result is deterministic for a
// given input and configuration, and no partial Barcode is ever returned:
// any failure surfaces before the grid is assembled. Inputs too short to
// fill MinRows rows are padded up to the minimum symbol height.
func (e *Encoder) Encode(input string) (*Barcode, error) {
	var prefix []int
	latin1, err := charset.ToLatin1(input)
	if err != nil {
		if !e.autoECI {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		if prefix, err = charset.ECIWords(charset.ECIUTF8); err != nil {
			return nil, err
		}
		latin1 = input
	}

	dataWords, err := e.data.Encode(latin1)
	if err != nil {
		return nil, err
	}
	if len(prefix) > 0 {
		dataWords = append(prefix, dataWords...)
	}

	ecCount := 1 << (e.securityLevel + 1)

	// Pad the data so the full sequence divides evenly into rows and the
	// symbol reaches the minimum height. One slot is reserved up front for
	// the length descriptor.
	total := len(dataWords) + ecCount + 1
	target := (total + e.columns - 1) / e.columns
	if target < MinRows {
		target = MinRows
	}
	for i := total; i < target*e.columns; i++ {
		dataWords = append(dataWords, PaddingCodeword)
	}

	codeWords := make([]int, 0, len(dataWords)+1+ecCount)
	codeWords = append(codeWords, len(dataWords)+1) // descriptor counts itself
	codeWords = append(codeWords, dataWords...)

	ecWords, err := e.ec.Compute(codeWords, e.securityLevel)
	if err != nil {
		return nil, err
	}
	codeWords = append(codeWords, ecWords...)

	if len(codeWords) > MaxCodewords {
		return nil, fmt.Errorf("%w: %d codewords exceed symbol capacity %d",
			ErrEncoding, len(codeWords), MaxCodewords)
	}

	rows := len(codeWords) / e.columns
	if rows > MaxRows {
		return nil, fmt.Errorf("%w: %d rows exceed symbol limit %d; use more columns",
			ErrEncoding, rows, MaxRows)
	}

	codes := make([][]int, 0, rows)
	for rowNum := 0; rowNum < rows; rowNum++ {
		c := clusterForRow(rowNum)
		left, right := rowDescriptors(rowNum, rows, e.columns, e.securityLevel)

		row := make([]int, 0, e.columns+4)
		row = append(row, StartPattern)

		w, err := codewordFor(c, left)
		if err != nil {
			return nil, err
		}
		row = append(row, w)

		for _, v := range codeWords[rowNum*e.columns : (rowNum+1)*e.columns] {
			if w, err = codewordFor(c, v); err != nil {
				return nil, err
			}
			row = append(row, w)
		}

		if w, err = codewordFor(c, right); err != nil {
			return nil, err
		}
		row = append(row, w, StopPattern)

		codes = append(codes, row)
	}

	return &Barcode{
		Codes:         codes,
		CodeWords:     codeWords,
		Rows:          rows,
		Columns:       e.columns,
		SecurityLevel: e.securityLevel,
	}, nil
}

// rowDescriptors returns the left and right row-indicator values for one
// row. Each indicator packs the row's band (rowNum/3) with one of: total row
// count, column count, security level. Which one goes where rotates with the
// cluster, so a reader that sees any single row can recover all three
// without scanning the rest of the symbol.
func rowDescriptors(rowNum, rows, columns, securityLevel int) (left, right int) {
	band := 30 * (rowNum / 3)
	var leftX, rightX int
	switch clusterForRow(rowNum) {
	case cluster0:
		leftX = (rows - 1) / 3
		rightX = columns - 1
	case cluster1:
		leftX = securityLevel*3 + (rows-1)%3
		rightX = (rows - 1) / 3
	case cluster2:
		leftX = columns - 1
		rightX = securityLevel*3 + (rows-1)%3
	}
	return band + leftX, band + rightX
}
