package modem

import (
	"context"
	"fmt"

	"modsim/pkg/modulation"
	"modsim/pkg/store"
)

// Modulator renders random bit groups as a real passband waveform
// I·cos(2πfc·t) + Q·sin(2πfc·t).
type Modulator struct {
	Params
	Scheme modulation.Scheme
}

// Modulate draws symbolCount bit groups from src, writes the
// symbolCount*SamplesPerSymbol samples to w and returns the bits it sent.
func (m Modulator) Modulate(ctx context.Context, symbolCount int, src BitSource, w store.Writer) (Bits, error) {
	if symbolCount < 0 {
		return nil, fmt.Errorf("symbol count must not be negative, got %d", symbolCount)
	}
	if m.SamplesPerSymbol <= 0 {
		return nil, fmt.Errorf("samples per symbol must be positive, got %d", m.SamplesPerSymbol)
	}
	spb := m.SamplesPerSymbol
	bps := m.Scheme.BitsPerSymbol()

	sent := make(Bits, 0, symbolCount*bps)
	samples := make([]store.Sample, 0, symbolCount*spb)

	for k := 0; k < symbolCount; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bits := src.Bits(bps)
		iLevel, qLevel := m.Scheme.Encode(bits)
		sent = append(sent, bits...)

		offset := k * spb
		inPhase, quadrature := m.carrier(offset, spb).New()
		for j := 0; j < spb; j++ {
			samples = append(samples, store.Sample{
				Time:      float64(offset+j) / m.SampleRate,
				Amplitude: iLevel*inPhase[j] + qLevel*quadrature[j],
			})
		}
		debugLog("[Modulation] symbol %d bits %v -> (%.3f, %.3f)\n", k, Bits(bits), iLevel, qLevel)
	}

	if err := w.Write(samples); err != nil {
		return nil, fmt.Errorf("failed to store waveform: %w", err)
	}
	return sent, nil
}
