package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"modsim/pkg/modulation"
	"modsim/pkg/sim"
)

type Config struct {
	SymbolCount      int     `yaml:"symbol_count" toml:"symbol_count"`
	Fc               float64 `yaml:"fc" toml:"fc"`
	Fs               float64 `yaml:"fs" toml:"fs"`
	SamplesPerSymbol int     `yaml:"samples_per_symbol" toml:"samples_per_symbol"`
	Modulation       string  `yaml:"modulation" toml:"modulation"`

	Seed        uint64  `yaml:"seed" toml:"seed"`
	Workers     int     `yaml:"workers" toml:"workers"`
	DemodGain   float64 `yaml:"demod_gain" toml:"demod_gain"`
	SignalFile  string  `yaml:"signal_file" toml:"signal_file"`
	MetricsFile string  `yaml:"metrics_file" toml:"metrics_file"`
}

const DefaultSignalFile = "signal.txt"

// LoadConfig reads a YAML file, or TOML when the name ends in ".toml".
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		err = toml.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	if config.SignalFile == "" {
		config.SignalFile = DefaultSignalFile
	}
	return &config, nil
}

// Sim converts the file representation into a validated run config.
func (c *Config) Sim() (sim.Config, error) {
	scheme, err := modulation.Parse(c.Modulation)
	if err != nil {
		return sim.Config{}, err
	}
	cfg := sim.Config{
		SymbolCount:      c.SymbolCount,
		CarrierFreq:      c.Fc,
		SampleRate:       c.Fs,
		SamplesPerSymbol: c.SamplesPerSymbol,
		Modulation:       scheme,
		Seed:             c.Seed,
		Workers:          c.Workers,
		DemodGain:        c.DemodGain,
	}
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}
