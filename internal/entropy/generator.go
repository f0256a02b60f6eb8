package entropy

import "github.com/opd-ai/go-bigint/internal/magnitude"

// Generator is a deterministic pseudo-random byte stream seeded from a
// fixed value and driven by repeated Blake2b-512 hashing: the current
// 64-byte state is rehashed to produce the next 64 bytes whenever the
// buffer is exhausted. Adapted from the teacher's superscalar-program
// generator, which used the identical construction to turn a cache
// seed into a reproducible instruction stream.
type Generator struct {
	data [64]byte
	pos  int
}

// NewGenerator creates a Generator whose output is entirely determined
// by seed.
func NewGenerator(seed []byte) *Generator {
	g := &Generator{pos: 64}
	g.data = Sum512(seed)
	return g
}

func (g *Generator) refill() {
	g.data = Sum512(g.data[:])
	g.pos = 0
}

// Byte returns the next pseudo-random byte.
func (g *Generator) Byte() byte {
	if g.pos >= 64 {
		g.refill()
	}
	b := g.data[g.pos]
	g.pos++
	return b
}

// Uint32 returns the next pseudo-random uint32, built from four bytes
// in little-endian order.
func (g *Generator) Uint32() uint32 {
	b0 := uint32(g.Byte())
	b1 := uint32(g.Byte())
	b2 := uint32(g.Byte())
	b3 := uint32(g.Byte())
	return b0 | b1<<8 | b2<<16 | b3<<24
}

// Intn returns a pseudo-random integer in [0, n). n must be positive.
func (g *Generator) Intn(n int) int {
	return int(g.Uint32() % uint32(n))
}

// Magnitude returns a pseudo-random canonical Magnitude with exactly
// limbCount limbs before trimming (so the result may end up shorter
// if high limbs land on zero).
func (g *Generator) Magnitude(limbCount int) magnitude.Magnitude {
	if limbCount <= 0 {
		return nil
	}
	limbs := make([]uint32, limbCount)
	for i := range limbs {
		limbs[i] = g.Uint32() % magnitude.Base
	}
	return magnitude.FromLimbs(limbs)
}
