// Package wavelet generates complex Morlet wavelet banks for
// time-frequency decomposition.
//
// A Morlet wavelet is a complex exponential under a Gaussian envelope. Its
// temporal spread is set by the number of cycles: more cycles trade temporal
// resolution for frequency resolution. Each generated wavelet is normalized
// to an L2 norm of sqrt(2), so convolving a unit-power oscillation at the
// wavelet's center frequency yields coefficients whose squared magnitude
// reads directly as signal power.
//
// # Usage
//
// Generate a bank over the frequencies of interest:
//
//	bank, err := wavelet.Morlet(sampleRate, []float64{8, 9, 10, 11, 12}, 7)
//
// The bank preserves input order; the i-th wavelet defines the i-th
// frequency bin of any transform built on it. For a frequency-independent
// envelope width, fix sigma instead:
//
//	bank, err := wavelet.MorletSigma(sampleRate, freqs, 7, 3.0)
//
// [Analyze] measures the realized properties (temporal spread, spectral
// width, norm) of a generated wavelet.
package wavelet
