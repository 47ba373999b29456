package modulation

import (
	"math"
	"reflect"
	"testing"

	"golang.org/x/exp/rand"
)

func allGroups(n int) [][]uint8 {
	groups := make([][]uint8, 0, 1<<n)
	for v := 0; v < 1<<n; v++ {
		g := make([]uint8, n)
		for j := 0; j < n; j++ {
			g[j] = uint8((v >> (n - 1 - j)) & 1)
		}
		groups = append(groups, g)
	}
	return groups
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []Scheme{QPSK{}, QAM16{}, QAM64{}} {
		t.Run(s.String(), func(t *testing.T) {
			for _, bits := range allGroups(s.BitsPerSymbol()) {
				i, q := s.Encode(bits)
				got := s.Decode(i, q)
				if !reflect.DeepEqual(got, bits) {
					t.Errorf("bits %v -> (%.3f, %.3f) -> %v", bits, i, q, got)
				}
			}
		})
	}
}

func TestRandomRoundTrip(t *testing.T) {
	const GROUPS = 1000
	r := rand.New(rand.NewSource(7))
	for _, s := range []Scheme{QPSK{}, QAM16{}, QAM64{}} {
		for n := 0; n < GROUPS; n++ {
			bits := make([]uint8, s.BitsPerSymbol())
			for j := range bits {
				bits[j] = uint8(r.Intn(2))
			}
			if got := s.Decode(s.Encode(bits)); !reflect.DeepEqual(got, bits) {
				t.Fatalf("%v: %v decoded as %v", s, bits, got)
			}
		}
	}
}

func TestQPSKLevels(t *testing.T) {
	tests := []struct {
		bits []uint8
		i, q float64
	}{
		{[]uint8{0, 0}, 1, 1},
		{[]uint8{0, 1}, -1, 1},
		{[]uint8{1, 1}, -1, -1},
		{[]uint8{1, 0}, 1, -1},
	}
	for _, tt := range tests {
		i, q := QPSK{}.Encode(tt.bits)
		if math.Abs(i-tt.i) > 1e-12 || math.Abs(q-tt.q) > 1e-12 {
			t.Errorf("%v: expected (%v, %v), got (%v, %v)", tt.bits, tt.i, tt.q, i, q)
		}
	}
}

func TestQPSKOrigin(t *testing.T) {
	if got := (QPSK{}).Decode(0, 0); !reflect.DeepEqual(got, []uint8{0, 0}) {
		t.Errorf("expected origin to decode as [0 0], got %v", got)
	}
}

func TestQPSKQuadrantEdges(t *testing.T) {
	tests := []struct {
		name     string
		i, q     float64
		expected []uint8
	}{
		{"positive I axis", 1, 0, []uint8{0, 0}},
		{"positive Q axis", 0, 1, []uint8{0, 1}},
		{"negative I axis", -1, 0, []uint8{1, 1}},
		{"negative Q axis", 0, -1, []uint8{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (QPSK{}).Decode(tt.i, tt.q); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestQAM16Levels(t *testing.T) {
	i, q := QAM16{}.Encode([]uint8{0, 0, 1, 0})
	if i != -3 || q != 3 {
		t.Errorf("expected (-3, 3), got (%v, %v)", i, q)
	}
	i, q = QAM16{}.Encode([]uint8{0, 1, 1, 1})
	if i != -1 || q != 1 {
		t.Errorf("expected (-1, 1), got (%v, %v)", i, q)
	}
}

func TestQAM16Thresholds(t *testing.T) {
	tests := []struct {
		v        float64
		expected []uint8
	}{
		{-2.0001, []uint8{0, 0}},
		{-2, []uint8{0, 1}},
		{-0.0001, []uint8{0, 1}},
		{0, []uint8{1, 1}},
		{1.9999, []uint8{1, 1}},
		{2, []uint8{1, 0}},
	}
	for _, tt := range tests {
		if got := quantize16(tt.v); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("quantize16(%v): expected %v, got %v", tt.v, tt.expected, got)
		}
	}
}

func TestQAM64IsNotGrayCoded(t *testing.T) {
	for idx, g := range allGroups(3) {
		bits := append(append([]uint8{}, g...), g...)
		i, q := QAM64{}.Encode(bits)
		want := -7 + 2*float64(idx)
		if i != want || q != want {
			t.Errorf("%v: expected level %v, got (%v, %v)", g, want, i, q)
		}
	}
}

func TestQAM64Tie(t *testing.T) {
	got := QAM64{}.Decode(-6, 6)
	// -6 sits between -7 (idx 0) and -5; 6 between 5 (idx 6) and 7.
	expected := []uint8{0, 0, 0, 1, 1, 0}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestEncodeWrongLength(t *testing.T) {
	for _, s := range []Scheme{QPSK{}, QAM16{}, QAM64{}} {
		t.Run(s.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected a panic for a short bit group")
				}
			}()
			s.Encode(make([]uint8, s.BitsPerSymbol()-1))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		token    string
		expected Scheme
	}{
		{"QPSK", QPSK{}},
		{"qpsk", QPSK{}},
		{"Qam16", QAM16{}},
		{" QAM64 ", QAM64{}},
	}
	for _, tt := range tests {
		s, err := Parse(tt.token)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.token, err)
		}
		if s != tt.expected {
			t.Errorf("Parse(%q): expected %v, got %v", tt.token, tt.expected, s)
		}
	}
	if _, err := Parse("QAM256"); err == nil {
		t.Errorf("expected an error for QAM256")
	}
}
