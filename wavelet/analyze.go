package wavelet

import "math"

// Analysis holds numerically measured properties of a generated wavelet.
type Analysis struct {
	// Taps is the kernel length in samples.
	Taps int
	// Duration is the support length in seconds.
	Duration float64
	// SigmaT is the temporal spread in seconds, measured from the envelope.
	SigmaT float64
	// FWHMHz is the spectral full width at half maximum implied by SigmaT.
	FWHMHz float64
	// L2Norm is the Euclidean norm of the taps.
	L2Norm float64
}

// Analyze measures the realized properties of w at the given sample rate.
func Analyze(w Wavelet, sampleRate float64) Analysis {
	n := len(w.Data)
	if n == 0 || sampleRate <= 0 {
		return Analysis{}
	}

	center := (n - 1) / 2
	power := 0.0
	moment := 0.0
	for i, c := range w.Data {
		t := float64(i-center) / sampleRate
		p := real(c)*real(c) + imag(c)*imag(c)
		power += p
		moment += t * t * p
	}
	if power == 0 {
		return Analysis{Taps: n, Duration: float64(n) / sampleRate}
	}

	// The squared Gaussian envelope has variance sigmaT^2/2, so the power
	// second moment must be doubled to recover sigmaT.
	sigmaT := math.Sqrt(2 * moment / power)

	// A Gaussian time spread of sigmaT maps to a spectral sigma of
	// 1/(2*pi*sigmaT).
	fwhm := 2 * math.Sqrt(2*math.Ln2) / (2 * math.Pi * sigmaT)

	return Analysis{
		Taps:     n,
		Duration: float64(n) / sampleRate,
		SigmaT:   sigmaT,
		FWHMHz:   fwhm,
		L2Norm:   math.Sqrt(power),
	}
}
