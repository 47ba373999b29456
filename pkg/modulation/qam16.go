package modulation

// QAM16 carries 4 bits per symbol: two bits per axis on levels -3, -1, 1, 3.
type QAM16 struct{}

func (QAM16) BitsPerSymbol() int { return 4 }

func (QAM16) String() string { return "QAM16" }

// qam16Levels is indexed by b0<<1 | b1.
var qam16Levels = [4]float64{-3, -1, 3, 1}

func (m QAM16) Encode(bits []uint8) (float64, float64) {
	checkGroup(m, bits)
	return qam16Levels[bits[0]<<1|bits[1]], qam16Levels[bits[2]<<1|bits[3]]
}

func (QAM16) Decode(iLevel, qLevel float64) []uint8 {
	return append(quantize16(iLevel), quantize16(qLevel)...)
}

func quantize16(v float64) []uint8 {
	switch {
	case v < -2:
		return []uint8{0, 0}
	case v < 0:
		return []uint8{0, 1}
	case v < 2:
		return []uint8{1, 1}
	default:
		return []uint8{1, 0}
	}
}
