package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RunMetrics holds the collectors for one simulation run. Each run gets its
// own registry so repeated runs in one process do not collide.
type RunMetrics struct {
	Registry *prometheus.Registry

	symbols   *prometheus.CounterVec // symbols modulated, by scheme
	samples   prometheus.Counter     // samples written to the store
	bits      *prometheus.CounterVec // bits sent, by scheme
	bitErrors *prometheus.CounterVec // recovered bits that differ, by scheme
	ber       *prometheus.GaugeVec   // bit error ratio of the last run, by scheme
	stage     *prometheus.GaugeVec   // wall time per pipeline stage
}

func New() *RunMetrics {
	reg := prometheus.NewRegistry()
	m := &RunMetrics{
		Registry: reg,
		symbols: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "modsim_symbols_total",
				Help: "Symbols modulated",
			},
			[]string{"modulation"},
		),
		samples: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "modsim_samples_total",
				Help: "Waveform samples written to the sample store",
			},
		),
		bits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "modsim_bits_total",
				Help: "Payload bits sent",
			},
			[]string{"modulation"},
		),
		bitErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "modsim_bit_errors_total",
				Help: "Recovered bits that differ from the bits sent",
			},
			[]string{"modulation"},
		),
		ber: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "modsim_bit_error_ratio",
				Help: "Bit error ratio of the last run",
			},
			[]string{"modulation"},
		),
		stage: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "modsim_stage_duration_seconds",
				Help: "Wall time of each pipeline stage",
			},
			[]string{"stage"},
		),
	}
	reg.MustRegister(m.symbols, m.samples, m.bits, m.bitErrors, m.ber, m.stage)
	return m
}

func (m *RunMetrics) ObserveModulation(scheme string, symbols, samples, bits int) {
	m.symbols.WithLabelValues(scheme).Add(float64(symbols))
	m.samples.Add(float64(samples))
	m.bits.WithLabelValues(scheme).Add(float64(bits))
}

func (m *RunMetrics) ObserveErrors(scheme string, errors, total int) {
	m.bitErrors.WithLabelValues(scheme).Add(float64(errors))
	ratio := 0.0
	if total > 0 {
		ratio = float64(errors) / float64(total)
	}
	m.ber.WithLabelValues(scheme).Set(ratio)
}

func (m *RunMetrics) ObserveStage(stage string, d time.Duration) {
	m.stage.WithLabelValues(stage).Set(d.Seconds())
}

// WriteFile dumps the registry in the text exposition format, for the node
// exporter textfile collector.
func (m *RunMetrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
