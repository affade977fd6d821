package induced

import "errors"

// Errors returned by the induced power engine. Configuration problems are
// detected before any trial batch launches; ErrNonFinite surfaces from a
// batch after projection.
var (
	ErrNoTrials       = errors.New("induced: no trials")
	ErrTrialShape     = errors.New("induced: inconsistent trial shape")
	ErrSampleRate     = errors.New("induced: sample rate must be positive and finite")
	ErrChannelMissing = errors.New("induced: channel not found in trial data")
	ErrNoWavelets     = errors.New("induced: empty wavelet bank")
	ErrNilPreparer    = errors.New("induced: nil preparer")
	ErrNoiseNorm      = errors.New("induced: operator carries no noise normalization")
	ErrNonFinite      = errors.New("induced: non-finite value after projection")
	ErrNoBands        = errors.New("induced: no bands")
	ErrBandBounds     = errors.New("induced: invalid band bounds")
	ErrFreqStep       = errors.New("induced: frequency step must be positive and finite")
)
