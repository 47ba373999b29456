package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"modsim/cmd/modsim/config"
	"modsim/pkg/metrics"
	"modsim/pkg/modem"
	"modsim/pkg/sim"
	"modsim/pkg/store"
)

func main() {
	var (
		configFile  = pflag.StringP("config", "c", "config.toml", "Configuration file (.toml or .yml)")
		symbols     = pflag.IntP("symbols", "n", 0, "Override symbol_count")
		mod         = pflag.StringP("modulation", "m", "", "Override modulation (QPSK, QAM16, QAM64)")
		seed        = pflag.Uint64P("seed", "s", 0, "Override seed (0 = time based)")
		workers     = pflag.IntP("workers", "w", 0, "Override workers")
		signalFile  = pflag.String("signal", "", "Override signal_file (.zst to compress)")
		metricsFile = pflag.String("metrics", "", "Override metrics_file")
		debug       = pflag.BoolP("debug", "d", false, "Print per-symbol trace")
	)
	pflag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("symbols") {
		cfg.SymbolCount = *symbols
	}
	if pflag.CommandLine.Changed("modulation") {
		cfg.Modulation = *mod
	}
	if pflag.CommandLine.Changed("seed") {
		cfg.Seed = *seed
	}
	if pflag.CommandLine.Changed("workers") {
		cfg.Workers = *workers
	}
	if *signalFile != "" {
		cfg.SignalFile = *signalFile
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}
	modem.Debug = *debug

	simConfig, err := cfg.Sim()
	if err != nil {
		fmt.Printf("Error in config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Config: %+v\n", *cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	res, err := sim.Run(ctx, simConfig, nil, store.Text{Path: cfg.SignalFile}, m)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recovered bits:", []uint8(res.Recovered))
	fmt.Printf("Bit errors: %d / %d\n", res.BitErrors, len(res.Sent))

	if cfg.MetricsFile != "" {
		if err := m.WriteFile(cfg.MetricsFile); err != nil {
			fmt.Printf("Error writing metrics: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Metrics written to %s\n", cfg.MetricsFile)
	}
}
