// Package billno generates the short human-facing bill identifiers shown on
// receipts. Bill numbers are not globally unique; the backend record id is
// the durable identifier.
package billno

import (
	"math/rand"
	"time"
)

// Alphabet is the character set bill numbers are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the fixed length of a bill number.
const Length = 6

// Source yields the per-character random indexes into Alphabet.
// It exists so tests can supply a deterministic sequence.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Generator produces bill numbers from a Source.
type Generator struct {
	src Source
}

// NewGenerator creates a generator backed by the given source.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// NewDefaultGenerator creates a generator seeded from the wall clock.
// Bill numbers are cosmetic, so math/rand is sufficient.
func NewDefaultGenerator() *Generator {
	return &Generator{src: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Next returns a fresh bill number: Length characters from Alphabet,
// each drawn uniformly at random.
func (g *Generator) Next() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = Alphabet[g.src.Intn(len(Alphabet))]
	}
	return string(b)
}
