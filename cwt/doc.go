// Package cwt applies complex wavelets to real-valued signals.
//
// The transform is a linear convolution trimmed to the input length and
// centered, so coefficient i describes the signal around sample i. Because
// the input is real, the real and imaginary coefficient planes are two
// independent real convolutions; the package keeps them as separate slices
// throughout, which is the layout downstream projection code wants.
//
// # Usage
//
// For one-shot use:
//
//	re, im, err := cwt.Transform(w, signal, cwt.ModeFFT)
//
// When many signals of the same length go through the same wavelet, build a
// [Transformer] once and reuse it; in FFT mode the wavelet spectrum and the
// plan are computed a single time:
//
//	tr, err := cwt.New(w, len(signal), cwt.ModeFFT)
//	for _, row := range rows {
//		err = tr.ApplyRow(dstRe, dstIm, row)
//	}
//
// # Mode Selection
//
// ModeDirect is O(N*M) and wins for short wavelets; ModeFFT pads to the
// next power of two and wins once wavelets grow past a few hundred taps.
// Both produce identical results within floating-point tolerance.
package cwt
