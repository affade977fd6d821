package cwt

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-mne/wavelet"
)

// Errors returned by the transform.
var (
	ErrEmptySignal    = errors.New("cwt: signal length must be > 0")
	ErrEmptyWavelet   = errors.New("cwt: empty wavelet")
	ErrLengthMismatch = errors.New("cwt: buffer length mismatch")
	ErrUnknownMode    = errors.New("cwt: unknown mode")
)

// Mode specifies the convolution strategy.
type Mode int

const (
	// ModeDirect evaluates the convolution in the time domain.
	ModeDirect Mode = iota

	// ModeFFT evaluates the convolution by frequency-domain multiplication
	// against a precomputed wavelet spectrum.
	ModeFFT
)

// Transformer convolves fixed-length real signals with one complex wavelet.
// Output coefficients have the same length as the signal and are centered:
// coefficient i is the full-convolution sample at offset (taps-1)/2 + i.
type Transformer struct {
	kernelRe []float64
	kernelIm []float64
	nTimes   int
	mode     Mode

	// ModeFFT state. The wavelet spectrum is computed once; signals share
	// the plan and scratch buffer.
	fftSize   int
	plan      *algofft.Plan[complex128]
	kernelFFT []complex128
	scratch   []complex128

	// ModeDirect scratch: full-length convolution planes.
	fullRe []float64
	fullIm []float64
}

// New creates a transformer for signals of length nTimes. Wavelets longer
// than the signal are legal; the centered trim still yields nTimes samples.
func New(w wavelet.Wavelet, nTimes int, mode Mode) (*Transformer, error) {
	if len(w.Data) == 0 {
		return nil, ErrEmptyWavelet
	}
	if nTimes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrEmptySignal, nTimes)
	}

	m := len(w.Data)
	tr := &Transformer{
		kernelRe: make([]float64, m),
		kernelIm: make([]float64, m),
		nTimes:   nTimes,
		mode:     mode,
	}
	for i, c := range w.Data {
		tr.kernelRe[i] = real(c)
		tr.kernelIm[i] = imag(c)
	}

	switch mode {
	case ModeDirect:
		tr.fullRe = make([]float64, nTimes+m-1)
		tr.fullIm = make([]float64, nTimes+m-1)

	case ModeFFT:
		tr.fftSize = nextPowerOf2(nTimes + m - 1)

		plan, err := algofft.NewPlan64(tr.fftSize)
		if err != nil {
			return nil, fmt.Errorf("cwt: failed to create FFT plan: %w", err)
		}
		tr.plan = plan
		tr.scratch = make([]complex128, tr.fftSize)
		tr.kernelFFT = make([]complex128, tr.fftSize)

		kernelPadded := make([]complex128, tr.fftSize)
		copy(kernelPadded, w.Data)
		if err := plan.Forward(tr.kernelFFT, kernelPadded); err != nil {
			return nil, fmt.Errorf("cwt: failed to compute wavelet spectrum: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}

	return tr, nil
}

// NTimes returns the signal length the transformer was built for.
func (tr *Transformer) NTimes() int {
	return tr.nTimes
}

// KernelLen returns the wavelet length in taps.
func (tr *Transformer) KernelLen() int {
	return len(tr.kernelRe)
}

// Mode returns the convolution strategy.
func (tr *Transformer) Mode() Mode {
	return tr.mode
}

// FFTSize returns the transform size used in ModeFFT, or 0 for ModeDirect.
func (tr *Transformer) FFTSize() int {
	return tr.fftSize
}

// ApplyRow convolves x with the wavelet and writes the centered coefficient
// planes to dstRe and dstIm. All three slices must have length NTimes.
func (tr *Transformer) ApplyRow(dstRe, dstIm, x []float64) error {
	if len(x) != tr.nTimes {
		return fmt.Errorf("%w: signal length %d, want %d", ErrLengthMismatch, len(x), tr.nTimes)
	}
	if len(dstRe) != tr.nTimes || len(dstIm) != tr.nTimes {
		return fmt.Errorf("%w: dst lengths %d/%d, want %d", ErrLengthMismatch, len(dstRe), len(dstIm), tr.nTimes)
	}

	if tr.mode == ModeDirect {
		tr.applyDirect(dstRe, dstIm, x)
		return nil
	}
	return tr.applyFFT(dstRe, dstIm, x)
}

// applyDirect runs two real time-domain convolutions, one per coefficient
// plane, then trims to the centered window.
func (tr *Transformer) applyDirect(dstRe, dstIm, x []float64) {
	for i := range tr.fullRe {
		tr.fullRe[i] = 0
		tr.fullIm[i] = 0
	}

	n := tr.nTimes
	m := len(tr.kernelRe)
	for i := 0; i < n; i++ {
		v := x[i]
		for j := 0; j < m; j++ {
			tr.fullRe[i+j] += v * tr.kernelRe[j]
			tr.fullIm[i+j] += v * tr.kernelIm[j]
		}
	}

	start := (m - 1) / 2
	copy(dstRe, tr.fullRe[start:start+n])
	copy(dstIm, tr.fullIm[start:start+n])
}

func (tr *Transformer) applyFFT(dstRe, dstIm, x []float64) error {
	for i := range tr.scratch {
		tr.scratch[i] = 0
	}
	for i, v := range x {
		tr.scratch[i] = complex(v, 0)
	}

	if err := tr.plan.Forward(tr.scratch, tr.scratch); err != nil {
		return fmt.Errorf("cwt: forward FFT failed: %w", err)
	}
	for i := range tr.scratch {
		tr.scratch[i] *= tr.kernelFFT[i]
	}
	if err := tr.plan.Inverse(tr.scratch, tr.scratch); err != nil {
		return fmt.Errorf("cwt: inverse FFT failed: %w", err)
	}

	start := (len(tr.kernelRe) - 1) / 2
	for i := 0; i < tr.nTimes; i++ {
		c := tr.scratch[start+i]
		dstRe[i] = real(c)
		dstIm[i] = imag(c)
	}
	return nil
}

// Transform convolves x with w once, allocating fresh coefficient planes.
// For repeated application build a [Transformer] instead.
func Transform(w wavelet.Wavelet, x []float64, mode Mode) (re, im []float64, err error) {
	tr, err := New(w, len(x), mode)
	if err != nil {
		return nil, nil, err
	}

	re = make([]float64, len(x))
	im = make([]float64, len(x))
	if err := tr.ApplyRow(re, im, x); err != nil {
		return nil, nil, err
	}
	return re, im, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
