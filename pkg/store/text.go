package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Text stores samples one per line as "time amplitude", both with six
// decimals. Paths ending in ".zst" are zstd compressed.
//
// Reading is forgiving: a leading header line is skipped, blank and
// single-field lines are ignored and an unparsable amplitude reads as 0.
type Text struct {
	Path string
}

func (s Text) compressed() bool {
	return strings.HasSuffix(s.Path, ".zst")
}

func (s Text) Write(samples []Sample) error {
	file, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create sample file: %w", err)
	}
	defer file.Close()

	var out io.Writer = file
	var enc *zstd.Encoder
	if s.compressed() {
		enc, err = zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		out = enc
	}

	if err := WriteText(out, samples); err != nil {
		return err
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush zstd stream: %w", err)
		}
	}
	return file.Close()
}

func (s Text) Read() ([]Sample, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample file: %w", err)
	}
	defer file.Close()

	var in io.Reader = file
	if s.compressed() {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()
		in = dec
	}
	return ReadText(in)
}

func WriteText(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	for _, sample := range samples {
		if _, err := fmt.Fprintf(bw, "%.6f %.6f\n", sample.Time, sample.Amplitude); err != nil {
			return fmt.Errorf("failed to write sample: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}
	return nil
}

func ReadText(r io.Reader) ([]Sample, error) {
	var samples []Sample
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")
		if line == "" {
			continue
		}
		// everything after the time field is the amplitude, so "t " and
		// "t v junk" both read as amplitude 0
		cut := strings.IndexAny(line, " \t")
		if cut < 0 {
			first = false
			continue
		}
		t, terr := strconv.ParseFloat(line[:cut], 64)
		v, verr := strconv.ParseFloat(strings.TrimSpace(line[cut:]), 64)
		if first && terr != nil && verr != nil {
			// header line, e.g. "time amplitude"
			first = false
			continue
		}
		first = false
		if verr != nil {
			v = 0
		}
		samples = append(samples, Sample{Time: t, Amplitude: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sample file: %w", err)
	}
	return samples, nil
}
