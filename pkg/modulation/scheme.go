package modulation

import (
	"fmt"
	"strings"
)

// Scheme maps fixed-size bit groups onto I/Q levels and back.
type Scheme interface {
	BitsPerSymbol() int
	Encode(bits []uint8) (iLevel, qLevel float64)
	Decode(iLevel, qLevel float64) []uint8
	String() string
}

var schemes = map[string]Scheme{
	"QPSK":  QPSK{},
	"QAM16": QAM16{},
	"QAM64": QAM64{},
}

// Parse resolves a case-insensitive scheme token such as "qam16".
func Parse(name string) (Scheme, error) {
	s, ok := schemes[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown modulation %q (want QPSK, QAM16 or QAM64)", name)
	}
	return s, nil
}

func checkGroup(s Scheme, bits []uint8) {
	if len(bits) != s.BitsPerSymbol() {
		panic(fmt.Sprintf("%v: bit group of length %d, want %d", s, len(bits), s.BitsPerSymbol()))
	}
	for _, b := range bits {
		if b > 1 {
			panic(fmt.Sprintf("%v: bit value %d is not 0 or 1", s, b))
		}
	}
}
