package reedsolomon

import "errors"

// ErrUncorrectable is returned when a codeword sequence holds more errors
// than its error correction tail can repair.
var ErrUncorrectable = errors.New("reedsolomon: too many errors to correct")

// Correct repairs corrupted codewords in place. received is the full
// sequence, data followed by its numEC error correction codewords. It
// returns the number of codewords corrected, or ErrUncorrectable if the
// sequence is beyond repair.
func Correct(received []int, numEC int) (int, error) {
	f := GF929
	r := newPoly(f, received)

	syndromes := make([]int, numEC)
	hasError := false
	for i := numEC; i > 0; i-- {
		eval := r.evaluateAt(f.Exp(i))
		syndromes[numEC-i] = eval
		if eval != 0 {
			hasError = true
		}
	}
	if !hasError {
		return 0, nil
	}

	sigma, omega, err := runEuclidean(f, monomial(f, numEC, 1), newPoly(f, syndromes), numEC)
	if err != nil {
		return 0, err
	}

	locations, err := errorLocations(f, sigma)
	if err != nil {
		return 0, err
	}
	magnitudes := errorMagnitudes(f, omega, sigma, locations)

	for i, loc := range locations {
		position := len(received) - 1 - f.Log(loc)
		if position < 0 {
			return 0, ErrUncorrectable
		}
		received[position] = f.Subtract(received[position], magnitudes[i])
	}
	return len(locations), nil
}

// runEuclidean runs the extended Euclidean algorithm until the remainder
// degree drops below limit/2, yielding the error locator sigma and error
// evaluator omega.
func runEuclidean(f *Field, a, b *poly, limit int) (sigma, omega *poly, err error) {
	if a.degree() < b.degree() {
		a, b = b, a
	}

	rLast, r := a, b
	tLast, t := zeroPoly(f), onePoly(f)

	for r.degree() >= limit/2 {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, t

		if rLast.isZero() {
			return nil, nil, ErrUncorrectable
		}
		r = rLastLast
		q := zeroPoly(f)
		dltInverse := f.Inverse(rLast.coefficient(rLast.degree()))
		for r.degree() >= rLast.degree() && !r.isZero() {
			degreeDiff := r.degree() - rLast.degree()
			scale := f.Multiply(r.coefficient(r.degree()), dltInverse)
			q = q.add(monomial(f, degreeDiff, scale))
			r = r.subtract(rLast.multiplyByMonomial(degreeDiff, scale))
		}

		t = q.multiply(tLast).subtract(tLastLast).negative()
	}

	sigmaTildeAtZero := t.coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, ErrUncorrectable
	}
	inverse := f.Inverse(sigmaTildeAtZero)
	return t.multiplyScalar(inverse), r.multiplyScalar(inverse), nil
}

// errorLocations runs a Chien search over the field for the roots of the
// error locator polynomial.
func errorLocations(f *Field, locator *poly) ([]int, error) {
	numErrors := locator.degree()
	result := make([]int, 0, numErrors)
	for i := 1; i < f.Size() && len(result) < numErrors; i++ {
		if locator.evaluateAt(i) == 0 {
			result = append(result, f.Inverse(i))
		}
	}
	if len(result) != numErrors {
		return nil, ErrUncorrectable
	}
	return result, nil
}

// errorMagnitudes applies Forney's formula at each error location.
func errorMagnitudes(f *Field, evaluator, locator *poly, locations []int) []int {
	degree := locator.degree()
	derivative := make([]int, degree)
	for i := 1; i <= degree; i++ {
		derivative[degree-i] = f.Multiply(i, locator.coefficient(i))
	}
	derivativePoly := newPoly(f, derivative)

	result := make([]int, len(locations))
	for i, loc := range locations {
		xiInverse := f.Inverse(loc)
		numerator := f.Subtract(0, evaluator.evaluateAt(xiInverse))
		denominator := f.Inverse(derivativePoly.evaluateAt(xiInverse))
		result[i] = f.Multiply(numerator, denominator)
	}
	return result
}
