package reedsolomon

// poly is a polynomial over a Field, coefficients stored highest degree
// first. The zero polynomial is the single coefficient 0.
type poly struct {
	field  *Field
	coeffs []int
}

func newPoly(f *Field, coeffs []int) *poly {
	if len(coeffs) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	// Strip leading zeros so the degree is correct.
	first := 0
	for first < len(coeffs)-1 && coeffs[first] == 0 {
		first++
	}
	if first > 0 {
		c := make([]int, len(coeffs)-first)
		copy(c, coeffs[first:])
		coeffs = c
	}
	return &poly{field: f, coeffs: coeffs}
}

func zeroPoly(f *Field) *poly { return newPoly(f, []int{0}) }

func onePoly(f *Field) *poly { return newPoly(f, []int{1}) }

// monomial returns coefficient * x^degree.
func monomial(f *Field, degree, coefficient int) *poly {
	if coefficient == 0 {
		return zeroPoly(f)
	}
	coeffs := make([]int, degree+1)
	coeffs[0] = coefficient
	return newPoly(f, coeffs)
}

func (p *poly) degree() int { return len(p.coeffs) - 1 }

func (p *poly) isZero() bool { return p.coeffs[0] == 0 }

// coefficient returns the coefficient of the x^degree term.
func (p *poly) coefficient(degree int) int {
	return p.coeffs[len(p.coeffs)-1-degree]
}

func (p *poly) evaluateAt(a int) int {
	if a == 0 {
		return p.coefficient(0)
	}
	result := 0
	if a == 1 {
		for _, c := range p.coeffs {
			result = p.field.Add(result, c)
		}
		return result
	}
	result = p.coeffs[0]
	for _, c := range p.coeffs[1:] {
		result = p.field.Add(p.field.Multiply(a, result), c)
	}
	return result
}

func (p *poly) add(other *poly) *poly {
	if p.isZero() {
		return other
	}
	if other.isZero() {
		return p
	}
	smaller, larger := p.coeffs, other.coeffs
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}
	sum := make([]int, len(larger))
	diff := len(larger) - len(smaller)
	copy(sum, larger[:diff])
	for i := diff; i < len(larger); i++ {
		sum[i] = p.field.Add(smaller[i-diff], larger[i])
	}
	return newPoly(p.field, sum)
}

func (p *poly) subtract(other *poly) *poly {
	if other.isZero() {
		return p
	}
	return p.add(other.negative())
}

func (p *poly) negative() *poly {
	neg := make([]int, len(p.coeffs))
	for i, c := range p.coeffs {
		neg[i] = p.field.Subtract(0, c)
	}
	return newPoly(p.field, neg)
}

func (p *poly) multiply(other *poly) *poly {
	if p.isZero() || other.isZero() {
		return zeroPoly(p.field)
	}
	product := make([]int, len(p.coeffs)+len(other.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			product[i+j] = p.field.Add(product[i+j], p.field.Multiply(a, b))
		}
	}
	return newPoly(p.field, product)
}

func (p *poly) multiplyScalar(scalar int) *poly {
	if scalar == 0 {
		return zeroPoly(p.field)
	}
	if scalar == 1 {
		return p
	}
	product := make([]int, len(p.coeffs))
	for i, c := range p.coeffs {
		product[i] = p.field.Multiply(c, scalar)
	}
	return newPoly(p.field, product)
}

func (p *poly) multiplyByMonomial(degree, coefficient int) *poly {
	if coefficient == 0 {
		return zeroPoly(p.field)
	}
	product := make([]int, len(p.coeffs)+degree)
	for i, c := range p.coeffs {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return newPoly(p.field, product)
}
