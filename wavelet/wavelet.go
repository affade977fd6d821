package wavelet

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by bank generation.
var (
	ErrNoFrequencies = errors.New("wavelet: no frequencies")
	ErrSampleRate    = errors.New("wavelet: sample rate must be positive and finite")
	ErrFrequency     = errors.New("wavelet: frequency must be positive and finite")
	ErrCycles        = errors.New("wavelet: cycle count must be positive and finite")
	ErrSigma         = errors.New("wavelet: sigma must be positive and finite")
)

// DefaultCycles is the conventional cycle count for a general-purpose
// Morlet bank.
const DefaultCycles = 7.0

// Wavelet is one complex Morlet kernel. Data is odd-length and symmetric
// around its center tap (t = 0).
type Wavelet struct {
	Freq float64
	Data []complex128
}

// Len returns the number of taps.
func (w Wavelet) Len() int {
	return len(w.Data)
}

// Morlet generates one wavelet per frequency, in input order. The temporal
// spread of each wavelet is cycles/(2*pi*f), so support shrinks as frequency
// grows. Every wavelet is normalized to an L2 norm of sqrt(2).
func Morlet(sampleRate float64, freqs []float64, cycles float64) ([]Wavelet, error) {
	return bank(sampleRate, freqs, cycles, 0, false)
}

// MorletSigma generates a bank whose temporal spread cycles/(2*pi*sigma) is
// shared by all frequencies instead of scaling with each one.
func MorletSigma(sampleRate float64, freqs []float64, cycles, sigma float64) ([]Wavelet, error) {
	if !finitePositive(sigma) {
		return nil, fmt.Errorf("%w: %v", ErrSigma, sigma)
	}
	return bank(sampleRate, freqs, cycles, sigma, true)
}

// finitePositive reports whether v is usable as a rate, frequency, cycle
// count or sigma: positive and neither NaN nor infinite.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func bank(sampleRate float64, freqs []float64, cycles, sigma float64, fixedSigma bool) ([]Wavelet, error) {
	if !finitePositive(sampleRate) {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}
	if len(freqs) == 0 {
		return nil, ErrNoFrequencies
	}
	if !finitePositive(cycles) {
		return nil, fmt.Errorf("%w: %v", ErrCycles, cycles)
	}

	ws := make([]Wavelet, len(freqs))
	for i, f := range freqs {
		if !finitePositive(f) {
			return nil, fmt.Errorf("%w: %v", ErrFrequency, f)
		}
		sigmaT := cycles / (2 * math.Pi * f)
		if fixedSigma {
			sigmaT = cycles / (2 * math.Pi * sigma)
		}
		ws[i] = Wavelet{Freq: f, Data: taps(sampleRate, f, sigmaT)}
	}
	return ws, nil
}

// taps samples exp(2i*pi*f*t) * exp(-t^2/(2*sigmaT^2)) on a symmetric grid
// covering (-5*sigmaT, 5*sigmaT) at 1/sampleRate, then rescales so the L2
// norm is sqrt(2).
func taps(sampleRate, freq, sigmaT float64) []complex128 {
	half := int(math.Ceil(5 * sigmaT * sampleRate))
	n := 2*half - 1

	out := make([]complex128, n)
	normSq := 0.0
	for i := 0; i < n; i++ {
		t := float64(i-(half-1)) / sampleRate
		env := math.Exp(-t * t / (2 * sigmaT * sigmaT))
		re := env * math.Cos(2*math.Pi*freq*t)
		im := env * math.Sin(2*math.Pi*freq*t)
		out[i] = complex(re, im)
		normSq += re*re + im*im
	}

	scale := complex(1/(math.Sqrt(0.5)*math.Sqrt(normSq)), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}
