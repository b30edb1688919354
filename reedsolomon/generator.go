package reedsolomon

import (
	"errors"
	"fmt"
)

// Security level bounds. Level s yields 2^(s+1) error correction codewords,
// enough to correct up to 2^s corrupted codewords or fill in 2^(s+1) known
// erasures.
const (
	MinSecurityLevel = 0
	MaxSecurityLevel = 8
)

// ErrSecurityLevel is returned for a security level outside [0,8].
var ErrSecurityLevel = errors.New("reedsolomon: security level out of range")

// Generator computes error correction tails. The generator polynomials for
// all nine security levels are built once at construction, so Compute is a
// pure function and safe for concurrent use.
type Generator struct {
	field *Field
	// generators[s] holds the coefficients of g(x) = product of (x - 3^i)
	// for i = 1..2^(s+1), highest degree first, leading 1 included.
	generators [MaxSecurityLevel + 1][]int
}

// NewGenerator returns a Generator over the PDF417 field.
func NewGenerator() *Generator {
	g := &Generator{field: GF929}
	poly := []int{1}
	degree := 0
	for level := MinSecurityLevel; level <= MaxSecurityLevel; level++ {
		want := 1 << (level + 1)
		for degree < want {
			degree++
			poly = g.multiplyByRoot(poly, g.field.Exp(degree))
		}
		g.generators[level] = poly
	}
	return g
}

// multiplyByRoot returns p(x) * (x - root), coefficients highest first.
func (g *Generator) multiplyByRoot(p []int, root int) []int {
	out := make([]int, len(p)+1)
	for i, c := range p {
		out[i] = g.field.Add(out[i], c)
		out[i+1] = g.field.Subtract(out[i+1], g.field.Multiply(root, c))
	}
	return out
}

// Compute returns the 2^(securityLevel+1) error correction codewords for
// data, highest-order parity first, so that appending them to data yields a
// polynomial divisible by the level's generator polynomial.
func (g *Generator) Compute(data []int, securityLevel int) ([]int, error) {
	if securityLevel < MinSecurityLevel || securityLevel > MaxSecurityLevel {
		return nil, fmt.Errorf("%w: %d", ErrSecurityLevel, securityLevel)
	}
	k := 1 << (securityLevel + 1)
	gen := g.generators[securityLevel]

	// Synthetic division of data(x) * x^k by gen(x); the register holds the
	// running remainder, highest degree in r[0].
	r := make([]int, k)
	for _, d := range data {
		t := g.field.Add(d%g.field.Size(), r[0])
		copy(r, r[1:])
		r[k-1] = 0
		for i := 0; i < k; i++ {
			r[i] = g.field.Subtract(r[i], g.field.Multiply(t, gen[i+1]))
		}
	}

	ec := make([]int, k)
	for i, v := range r {
		ec[i] = g.field.Subtract(0, v)
	}
	return ec, nil
}
