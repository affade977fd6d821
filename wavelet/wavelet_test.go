package wavelet

import (
	"errors"
	"math"
	"testing"
)

func TestMorletBankOrder(t *testing.T) {
	freqs := []float64{12, 8, 10}

	bank, err := Morlet(1000, freqs, 7)
	if err != nil {
		t.Fatalf("Morlet error: %v", err)
	}

	if len(bank) != len(freqs) {
		t.Fatalf("bank size = %d, want %d", len(bank), len(freqs))
	}
	for i, w := range bank {
		if w.Freq != freqs[i] {
			t.Fatalf("bank[%d].Freq = %v, want %v", i, w.Freq, freqs[i])
		}
	}
}

func TestMorletOddLength(t *testing.T) {
	bank, err := Morlet(1000, []float64{5, 10, 40}, 7)
	if err != nil {
		t.Fatalf("Morlet error: %v", err)
	}

	for _, w := range bank {
		if w.Len()%2 != 1 {
			t.Fatalf("%g Hz: length %d is even", w.Freq, w.Len())
		}
	}
}

func TestMorletNorm(t *testing.T) {
	bank, err := Morlet(1000, []float64{3, 10, 25, 80}, 7)
	if err != nil {
		t.Fatalf("Morlet error: %v", err)
	}

	want := math.Sqrt2
	for _, w := range bank {
		normSq := 0.0
		for _, c := range w.Data {
			normSq += real(c)*real(c) + imag(c)*imag(c)
		}
		norm := math.Sqrt(normSq)
		if math.Abs(norm-want) > 1e-12 {
			t.Fatalf("%g Hz: L2 norm = %v, want sqrt(2)", w.Freq, norm)
		}
	}
}

func TestMorletSupportShrinksWithFrequency(t *testing.T) {
	bank, err := Morlet(1000, []float64{5, 10, 20, 40}, 7)
	if err != nil {
		t.Fatalf("Morlet error: %v", err)
	}

	for i := 1; i < len(bank); i++ {
		if bank[i].Len() >= bank[i-1].Len() {
			t.Fatalf("%g Hz has %d taps, not shorter than %g Hz with %d",
				bank[i].Freq, bank[i].Len(), bank[i-1].Freq, bank[i-1].Len())
		}
	}
}

func TestMorletCenterTap(t *testing.T) {
	bank, err := Morlet(1000, []float64{10}, 7)
	if err != nil {
		t.Fatalf("Morlet error: %v", err)
	}

	w := bank[0]
	center := w.Data[(w.Len()-1)/2]
	if imag(center) != 0 {
		t.Fatalf("center tap imag = %v, want 0", imag(center))
	}
	if real(center) <= 0 {
		t.Fatalf("center tap real = %v, want > 0", real(center))
	}
}

func TestMorletConjugateSymmetry(t *testing.T) {
	bank, err := Morlet(500, []float64{12}, 6)
	if err != nil {
		t.Fatalf("Morlet error: %v", err)
	}

	data := bank[0].Data
	n := len(data)
	for i := 0; i < n/2; i++ {
		a, b := data[i], data[n-1-i]
		if real(a) != real(b) || imag(a) != -imag(b) {
			t.Fatalf("tap %d: %v is not the conjugate of tap %d: %v", i, a, n-1-i, b)
		}
	}
}

func TestMorletSigmaFixedSupport(t *testing.T) {
	bank, err := MorletSigma(1000, []float64{5, 10, 40}, 7, 10)
	if err != nil {
		t.Fatalf("MorletSigma error: %v", err)
	}

	for _, w := range bank {
		if w.Len() != bank[0].Len() {
			t.Fatalf("%g Hz: length %d differs from %d", w.Freq, w.Len(), bank[0].Len())
		}
	}
}

func TestMorletErrors(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		freqs      []float64
		cycles     float64
		wantErr    error
	}{
		{"zero sample rate", 0, []float64{10}, 7, ErrSampleRate},
		{"negative sample rate", -1, []float64{10}, 7, ErrSampleRate},
		{"NaN sample rate", math.NaN(), []float64{10}, 7, ErrSampleRate},
		{"infinite sample rate", math.Inf(1), []float64{10}, 7, ErrSampleRate},
		{"no frequencies", 1000, nil, 7, ErrNoFrequencies},
		{"zero frequency", 1000, []float64{10, 0}, 7, ErrFrequency},
		{"negative frequency", 1000, []float64{-5}, 7, ErrFrequency},
		{"NaN frequency", 1000, []float64{math.NaN()}, 7, ErrFrequency},
		{"infinite frequency", 1000, []float64{math.Inf(1)}, 7, ErrFrequency},
		{"zero cycles", 1000, []float64{10}, 0, ErrCycles},
		{"NaN cycles", 1000, []float64{10}, math.NaN(), ErrCycles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Morlet(tt.sampleRate, tt.freqs, tt.cycles)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Morlet error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMorletSigmaErrors(t *testing.T) {
	tests := []struct {
		name  string
		sigma float64
	}{
		{"zero sigma", 0},
		{"negative sigma", -2},
		{"NaN sigma", math.NaN()},
		{"infinite sigma", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MorletSigma(1000, []float64{10}, 7, tt.sigma)
			if !errors.Is(err, ErrSigma) {
				t.Fatalf("MorletSigma error = %v, want %v", err, ErrSigma)
			}
		})
	}
}

func TestAnalyzeSigmaT(t *testing.T) {
	const (
		sampleRate = 1000.0
		freq       = 10.0
		cycles     = 7.0
	)

	bank, err := Morlet(sampleRate, []float64{freq}, cycles)
	if err != nil {
		t.Fatalf("Morlet error: %v", err)
	}

	a := Analyze(bank[0], sampleRate)
	want := cycles / (2 * math.Pi * freq)
	if math.Abs(a.SigmaT-want)/want > 0.01 {
		t.Fatalf("SigmaT = %v, want %v within 1%%", a.SigmaT, want)
	}
	if math.Abs(a.L2Norm-math.Sqrt2) > 1e-12 {
		t.Fatalf("L2Norm = %v, want sqrt(2)", a.L2Norm)
	}
	if a.FWHMHz <= 0 {
		t.Fatalf("FWHMHz = %v, want > 0", a.FWHMHz)
	}
	if a.Taps != bank[0].Len() {
		t.Fatalf("Taps = %d, want %d", a.Taps, bank[0].Len())
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(Wavelet{}, 1000)
	if a.Taps != 0 || a.L2Norm != 0 {
		t.Fatalf("Analyze of empty wavelet = %+v, want zero value", a)
	}
}
