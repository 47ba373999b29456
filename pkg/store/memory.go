package store

// Memory keeps the waveform in process, for tests and dry runs.
type Memory struct {
	samples []Sample
}

func (m *Memory) Write(samples []Sample) error {
	m.samples = append(m.samples, samples...)
	return nil
}

func (m *Memory) Read() ([]Sample, error) {
	out := make([]Sample, len(m.samples))
	copy(out, m.samples)
	return out, nil
}

func (m *Memory) Len() int {
	return len(m.samples)
}
