package sim

import (
	"errors"
	"fmt"

	"modsim/pkg/modulation"
)

// Config describes one simulation run. It is not modified once built.
type Config struct {
	SymbolCount      int
	CarrierFreq      float64 // Hz
	SampleRate       float64 // Hz; keeping it above 2*CarrierFreq is up to the caller
	SamplesPerSymbol int
	Modulation       modulation.Scheme

	Seed      uint64  // 0 picks a time based seed
	Workers   int     // parallel demodulation blocks
	DemodGain float64 // 0 means 1; modem.MixerGain compensates the mixer loss
}

func (c Config) Validate() error {
	var errs []error
	if c.SymbolCount <= 0 {
		errs = append(errs, fmt.Errorf("symbol_count must be positive, got %d", c.SymbolCount))
	}
	if c.SamplesPerSymbol <= 0 {
		errs = append(errs, fmt.Errorf("samples_per_symbol must be positive, got %d", c.SamplesPerSymbol))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("fs must be positive, got %v", c.SampleRate))
	}
	if c.CarrierFreq < 0 {
		errs = append(errs, fmt.Errorf("fc must not be negative, got %v", c.CarrierFreq))
	}
	if c.DemodGain < 0 {
		errs = append(errs, fmt.Errorf("demod_gain must not be negative, got %v", c.DemodGain))
	}
	if c.Modulation == nil {
		errs = append(errs, errors.New("modulation is not set"))
	}
	return errors.Join(errs...)
}
