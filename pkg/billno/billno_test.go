package billno_test

import (
	"strings"
	"testing"

	"github.com/smartpurse/pos-terminal/pkg/billno"
	"github.com/stretchr/testify/assert"
)

// seqSource returns a predefined sequence of indexes, wrapping around.
type seqSource struct {
	seq []int
	pos int
}

func (s *seqSource) Intn(n int) int {
	v := s.seq[s.pos%len(s.seq)] % n
	s.pos++
	return v
}

func TestNextIsDeterministicWithInjectedSource(t *testing.T) {
	gen := billno.NewGenerator(&seqSource{seq: []int{0, 1, 2, 25, 26, 35}})

	// A=0, B=1, C=2, Z=25, 0=26, 9=35
	assert.Equal(t, "ABCZ09", gen.Next())
}

func TestNextFormat(t *testing.T) {
	gen := billno.NewDefaultGenerator()

	for i := 0; i < 100; i++ {
		no := gen.Next()
		assert.Len(t, no, billno.Length)
		for _, c := range no {
			assert.True(t, strings.ContainsRune(billno.Alphabet, c), "unexpected character %q in %q", c, no)
		}
	}
}

func TestConsecutiveNumbersAdvance(t *testing.T) {
	gen := billno.NewGenerator(&seqSource{seq: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}})

	first := gen.Next()
	second := gen.Next()
	assert.NotEqual(t, first, second)
}
