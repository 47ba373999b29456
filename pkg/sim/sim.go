package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"modsim/pkg/metrics"
	"modsim/pkg/modem"
	"modsim/pkg/store"
)

// Result is the outcome of one run.
type Result struct {
	RunID     string
	Sent      modem.Bits
	Recovered modem.Bits
	Samples   int
	BitErrors int
}

// Run generates the waveform into st, reads it back in full and demodulates
// it. src may be nil, in which case a RandomBitSource seeded from cfg is
// used. m may be nil.
func Run(ctx context.Context, cfg Config, src modem.BitSource, st store.Store, m *metrics.RunMetrics) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	res := &Result{RunID: uuid.New().String()}
	if src == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		fmt.Printf("[%s] seed %d\n", res.RunID, seed)
		src = modem.NewRandomBitSource(seed)
	}

	params := modem.Params{
		CarrierFreq:      cfg.CarrierFreq,
		SampleRate:       cfg.SampleRate,
		SamplesPerSymbol: cfg.SamplesPerSymbol,
	}
	scheme := cfg.Modulation.String()

	startTime := time.Now()
	sent, err := modem.Modulator{Params: params, Scheme: cfg.Modulation}.Modulate(ctx, cfg.SymbolCount, src, st)
	if err != nil {
		return nil, fmt.Errorf("modulation failed: %w", err)
	}
	res.Sent = sent
	fmt.Printf("[%s] modulated %d %s symbols in %v\n", res.RunID, cfg.SymbolCount, scheme, time.Since(startTime))
	if m != nil {
		m.ObserveStage("modulate", time.Since(startTime))
	}

	startTime = time.Now()
	samples, err := st.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read waveform back: %w", err)
	}
	res.Samples = len(samples)
	if m != nil {
		m.ObserveModulation(scheme, cfg.SymbolCount, len(samples), len(sent))
	}

	recovered, err := modem.Demodulator{
		Params:      params,
		Scheme:      cfg.Modulation,
		SymbolCount: cfg.SymbolCount,
		Gain:        cfg.DemodGain,
		Workers:     cfg.Workers,
	}.Demodulate(ctx, store.Amplitudes(samples))
	if err != nil {
		return nil, fmt.Errorf("demodulation failed: %w", err)
	}
	res.Recovered = recovered
	res.BitErrors = sent.Errors(recovered)
	fmt.Printf("[%s] demodulated %d samples in %v\n", res.RunID, len(samples), time.Since(startTime))
	if m != nil {
		m.ObserveStage("demodulate", time.Since(startTime))
		m.ObserveErrors(scheme, res.BitErrors, len(sent))
	}

	return res, nil
}
