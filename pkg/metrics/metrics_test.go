package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunMetrics(t *testing.T) {
	m := New()
	m.ObserveModulation("QPSK", 4, 32, 8)
	m.ObserveErrors("QPSK", 2, 8)
	m.ObserveStage("modulate", 1500*time.Millisecond)

	path := filepath.Join(t.TempDir(), "modsim.prom")
	if err := m.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	expected := []string{
		`modsim_symbols_total{modulation="QPSK"} 4`,
		`modsim_samples_total 32`,
		`modsim_bits_total{modulation="QPSK"} 8`,
		`modsim_bit_errors_total{modulation="QPSK"} 2`,
		`modsim_bit_error_ratio{modulation="QPSK"} 0.25`,
		`modsim_stage_duration_seconds{stage="modulate"} 1.5`,
	}
	for _, line := range expected {
		if !strings.Contains(text, line) {
			t.Errorf("expected %q in\n%s", line, text)
		}
	}
}

func TestNoBits(t *testing.T) {
	m := New()
	m.ObserveErrors("QAM16", 0, 0)
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatal(err)
	}
	if len(families) == 0 {
		t.Errorf("expected gathered metric families")
	}
}
