package modem

import (
	"context"
	"fmt"

	"modsim/pkg/async"
	"modsim/pkg/modulation"
)

// MixerGain undoes the factor 1/2 that cos² and sin² average to over a
// window, putting the recovered levels back on the mapper's grid. The QAM
// schemes need it for an end-to-end round trip; QPSK does not.
const MixerGain = 2.0

// Demodulator recovers bits by correlating each symbol window against the
// local carrier at the known frequency and zero phase.
type Demodulator struct {
	Params
	Scheme      modulation.Scheme
	SymbolCount int

	Gain    float64 // applied to the window averages; 0 means 1
	Workers int     // symbol blocks evaluated in parallel; <=1 is sequential
}

// Demodulate returns SymbolCount*BitsPerSymbol bits in symbol order. A window
// that runs past the end of samples is averaged over what is there, still
// divided by the full SamplesPerSymbol.
func (d Demodulator) Demodulate(ctx context.Context, samples []float64) (Bits, error) {
	if d.SamplesPerSymbol <= 0 {
		return nil, fmt.Errorf("samples per symbol must be positive, got %d", d.SamplesPerSymbol)
	}
	if d.Gain == 0 {
		d.Gain = 1
	}
	if need := d.SymbolCount * d.SamplesPerSymbol; len(samples) < need {
		debugLog("[Demodulation] Warning: %d samples for %d expected, the tail is averaged over a short window\n", len(samples), need)
	}

	workers := min(max(d.Workers, 1), max(d.SymbolCount, 1))
	if workers == 1 {
		return d.demodulateRange(ctx, samples, 0, d.SymbolCount)
	}

	type block struct {
		bits Bits
		err  error
	}
	per := (d.SymbolCount + workers - 1) / workers
	blocks := async.Map(workers, func(w int) block {
		from := w * per
		to := min(from+per, d.SymbolCount)
		bits, err := d.demodulateRange(ctx, samples, from, to)
		return block{bits, err}
	})

	out := make(Bits, 0, d.SymbolCount*d.Scheme.BitsPerSymbol())
	for _, b := range blocks {
		if b.err != nil {
			return nil, b.err
		}
		out = append(out, b.bits...)
	}
	return out, nil
}

func (d Demodulator) demodulateRange(ctx context.Context, samples []float64, from, to int) (Bits, error) {
	spb := d.SamplesPerSymbol
	out := make(Bits, 0, max(to-from, 0)*d.Scheme.BitsPerSymbol())

	for k := from; k < to; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := k * spb
		end := min(start+spb, len(samples))
		var iSum, qSum float64
		if start < end {
			inPhase, quadrature := d.carrier(start, end-start).New()
			iSum, qSum = correlate(samples[start:end], inPhase, quadrature)
		}

		iAvg := d.Gain * iSum / float64(spb)
		qAvg := d.Gain * qSum / float64(spb)
		bits := d.Scheme.Decode(iAvg, qAvg)
		debugLog("[Demodulation] symbol %d (%.3f, %.3f) -> %v\n", k, iAvg, qAvg, Bits(bits))
		out = append(out, bits...)
	}
	return out, nil
}
