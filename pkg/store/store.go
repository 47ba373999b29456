package store

// Sample is one point of the generated waveform.
type Sample struct {
	Time      float64
	Amplitude float64
}

// Writer persists a waveform in order.
type Writer interface {
	Write(samples []Sample) error
}

// Reader returns the whole persisted waveform, order preserved.
type Reader interface {
	Read() ([]Sample, error)
}

type Store interface {
	Writer
	Reader
}

// Amplitudes drops the time field. Demodulation derives time from position.
func Amplitudes(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Amplitude
	}
	return out
}
