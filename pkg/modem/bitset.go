package modem

import (
	"strings"

	"golang.org/x/exp/rand"
)

// Bits is a flat sequence of 0/1 values.
type Bits []uint8

func (b Bits) String() string {
	var sb strings.Builder
	for _, bit := range b {
		if bit != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Errors counts positions that differ. Missing positions count as errors.
func (b Bits) Errors(other Bits) int {
	n := max(len(b), len(other))
	errs := 0
	for i := 0; i < n; i++ {
		if i >= len(b) || i >= len(other) || b[i] != other[i] {
			errs++
		}
	}
	return errs
}

// BitSource supplies the payload bits, one group per call.
type BitSource interface {
	Bits(n int) []uint8
}

// RandomBitSource draws uniform bits from a seeded generator. It is not safe
// for concurrent use; the modulator draws every group from one goroutine.
type RandomBitSource struct {
	rng *rand.Rand
}

func NewRandomBitSource(seed uint64) *RandomBitSource {
	return &RandomBitSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomBitSource) Bits(n int) []uint8 {
	bits := make([]uint8, n)
	for i := range bits {
		bits[i] = uint8(s.rng.Uint32() & 1)
	}
	return bits
}

// FixedBitSource replays a known bit stream and pads with zeros once it is
// exhausted.
type FixedBitSource struct {
	Stream []uint8
	pos    int
}

func (s *FixedBitSource) Bits(n int) []uint8 {
	bits := make([]uint8, n)
	if s.pos < len(s.Stream) {
		copy(bits, s.Stream[s.pos:])
	}
	s.pos += n
	return bits
}
