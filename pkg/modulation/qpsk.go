package modulation

import "math"

// QPSK carries 2 bits per symbol on four phases of amplitude √2.
type QPSK struct{}

func (QPSK) BitsPerSymbol() int { return 2 }

func (QPSK) String() string { return "QPSK" }

// qpskPhases is indexed by b0<<1 | b1.
var qpskPhases = [4]float64{
	math.Pi / 4,     // 00
	3 * math.Pi / 4, // 01
	7 * math.Pi / 4, // 10
	5 * math.Pi / 4, // 11
}

func (m QPSK) Encode(bits []uint8) (float64, float64) {
	checkGroup(m, bits)
	phase := qpskPhases[bits[0]<<1|bits[1]]
	return math.Sqrt2 * math.Cos(phase), math.Sqrt2 * math.Sin(phase)
}

// Decode picks the quadrant of atan2(q, i) in [0, 2π), each interval closed
// at its lower edge, and returns the bit pair Encode places in that quadrant.
// atan2(0, 0) is 0, so the origin decodes as 00. The historical decision
// table mapped [0, π/2) to 10, which is not the inverse of the phase table
// and would send the origin to 10 as well.
func (QPSK) Decode(iLevel, qLevel float64) []uint8 {
	theta := math.Atan2(qLevel, iLevel)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	switch {
	case theta < math.Pi/2:
		return []uint8{0, 0}
	case theta < math.Pi:
		return []uint8{0, 1}
	case theta < 3*math.Pi/2:
		return []uint8{1, 1}
	default:
		return []uint8{1, 0}
	}
}
