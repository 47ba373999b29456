package modulation

import "math"

// QAM64 carries 6 bits per symbol: three bits per axis, read as a plain
// binary index into -7, -5, ..., 7. The mapping is not Gray coded.
type QAM64 struct{}

func (QAM64) BitsPerSymbol() int { return 6 }

func (QAM64) String() string { return "QAM64" }

var qam64Levels = [8]float64{-7, -5, -3, -1, 1, 3, 5, 7}

func (m QAM64) Encode(bits []uint8) (float64, float64) {
	checkGroup(m, bits)
	return level64(bits[0:3]), level64(bits[3:6])
}

func (QAM64) Decode(iLevel, qLevel float64) []uint8 {
	return append(quantize64(iLevel), quantize64(qLevel)...)
}

func level64(bits []uint8) float64 {
	idx := int(bits[0])<<2 | int(bits[1])<<1 | int(bits[2])
	return -7 + 2*float64(idx)
}

// quantize64 scans the levels in ascending order and only replaces the
// best match on a strictly smaller distance, so ties go to the lower level.
func quantize64(v float64) []uint8 {
	closest := 0
	minDist := math.MaxFloat64
	for i, lvl := range qam64Levels {
		if dist := math.Abs(v - lvl); dist < minDist {
			minDist = dist
			closest = i
		}
	}
	return []uint8{
		uint8((closest >> 2) & 1),
		uint8((closest >> 1) & 1),
		uint8(closest & 1),
	}
}
