package modem

// Params are shared by both directions.
type Params struct {
	CarrierFreq      float64
	SampleRate       float64
	SamplesPerSymbol int
}

func (p Params) carrier(offset, size int) CarrierConfig {
	return CarrierConfig{
		Amplitude:  1,
		Freq:       p.CarrierFreq,
		SampleRate: p.SampleRate,
		Offset:     offset,
		Size:       size,
	}
}
