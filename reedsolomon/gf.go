// Package reedsolomon computes PDF417 error correction codewords using
// Reed-Solomon coding over the prime field GF(929).
package reedsolomon

// Field is a prime Galois field on the powers of a generator element. All
// methods are pure; a Field is safe for concurrent use once built.
type Field struct {
	expTable []int
	logTable []int
	modulus  int
}

// GF929 is the PDF417 codeword field: modulus 929, generator 3.
var GF929 = NewField(929, 3)

// NewField builds the exponential and logarithm tables for the field of the
// given prime modulus and generator element.
func NewField(modulus, generator int) *Field {
	f := &Field{
		modulus:  modulus,
		expTable: make([]int, modulus),
		logTable: make([]int, modulus),
	}
	x := 1
	for i := 0; i < modulus; i++ {
		f.expTable[i] = x
		x = (x * generator) % modulus
	}
	for i := 0; i < modulus-1; i++ {
		f.logTable[f.expTable[i]] = i
	}
	// logTable[0] stays 0 and must never be consulted.
	return f
}

// Add returns (a + b) in the field.
func (f *Field) Add(a, b int) int {
	return (a + b) % f.modulus
}

// Subtract returns (a - b) in the field.
func (f *Field) Subtract(a, b int) int {
	return (f.modulus + a - b) % f.modulus
}

// Multiply returns a * b in the field.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.expTable[(f.logTable[a]+f.logTable[b])%(f.modulus-1)]
}

// Exp returns generator^a.
func (f *Field) Exp(a int) int {
	return f.expTable[a%(f.modulus-1)]
}

// Log returns the discrete logarithm of a. Panics on 0, which has none.
func (f *Field) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return f.logTable[a]
}

// Inverse returns the multiplicative inverse of a. Panics on 0.
func (f *Field) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return f.expTable[f.modulus-f.logTable[a]-1]
}

// Size returns the field modulus.
func (f *Field) Size() int {
	return f.modulus
}
