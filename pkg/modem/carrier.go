package modem

import "math"

// CarrierConfig describes a window of the local carrier starting at a global
// sample index. Sample idx sits at t = idx/SampleRate on both the transmit
// and the receive side.
type CarrierConfig struct {
	Amplitude  float64
	Freq       float64
	SampleRate float64
	Offset     int // global index of the first sample
	Size       int
}

// New returns the in-phase (cos) and quadrature (sin) references.
func (p CarrierConfig) New() (inPhase, quadrature []float64) {
	inPhase = make([]float64, p.Size)
	quadrature = make([]float64, p.Size)
	for i := 0; i < p.Size; i++ {
		t := float64(p.Offset+i) / p.SampleRate
		inPhase[i] = p.Amplitude * math.Cos(2*math.Pi*p.Freq*t)
		quadrature[i] = p.Amplitude * math.Sin(2*math.Pi*p.Freq*t)
	}
	return
}
