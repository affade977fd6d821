package induced

import (
	"runtime"

	"github.com/cwbudde/algo-mne/cwt"
	"github.com/cwbudde/algo-mne/inverse"
	"github.com/cwbudde/algo-mne/wavelet"
	"gonum.org/v1/gonum/mat"
)

// Rescaler corrects row-major time series against a reference interval.
// The baseline package provides the standard implementation.
type Rescaler interface {
	Rescale(data *mat.Dense, times []float64) error
}

// Config controls SourceInducedPower.
type Config struct {
	// Lambda2 is the inverse regularization parameter. Values <= 0 fall
	// back to 1/9.
	Lambda2 float64
	// DSPM enables noise normalization of the averaged power.
	DSPM bool
	// PCA reduces the kernel to its numerical rank before projection.
	PCA bool
	// WithPLV additionally computes the phase-locking value.
	WithPLV bool
	// Mode selects the convolution strategy for the wavelet transform.
	Mode cwt.Mode
	// Workers bounds the number of concurrent trial batches. Values <= 0
	// fall back to runtime.NumCPU. The effective count never exceeds the
	// trial count.
	Workers int
	// Label restricts the projection to a cortical patch. Nil keeps all
	// sources.
	Label *inverse.Label
	// Baseline, when set, rescales the averaged power in place.
	Baseline Rescaler
}

// DefaultConfig mirrors the conventional analysis settings: minimum-norm
// regularization 1/9 with dSPM noise normalization and PCA rank reduction.
func DefaultConfig() Config {
	return Config{
		Lambda2: 1.0 / 9.0,
		DSPM:    true,
		PCA:     true,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Lambda2 <= 0 {
		cfg.Lambda2 = 1.0 / 9.0
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg
}

// WaveletFunc builds the wavelet bank for a frequency grid.
type WaveletFunc func(sampleRate float64, freqs []float64, cycles float64) ([]wavelet.Wavelet, error)

// BandConfig controls SourceBandInducedPower.
type BandConfig struct {
	Config
	// FreqStep is the grid spacing within each band. Values <= 0 fall
	// back to 1 Hz.
	FreqStep float64
	// Cycles is the Morlet cycle count per wavelet. Values <= 0 fall
	// back to 5.
	Cycles float64
	// Wavelets overrides the bank generator. Nil falls back to
	// wavelet.Morlet.
	Wavelets WaveletFunc
}

// DefaultBandConfig returns DefaultConfig plus a 1 Hz grid of 5-cycle
// Morlet wavelets.
func DefaultBandConfig() BandConfig {
	return BandConfig{Config: DefaultConfig(), FreqStep: 1, Cycles: 5}
}

func normalizeBandConfig(cfg BandConfig) BandConfig {
	cfg.Config = normalizeConfig(cfg.Config)
	if cfg.FreqStep <= 0 {
		cfg.FreqStep = 1
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = 5
	}
	if cfg.Wavelets == nil {
		cfg.Wavelets = wavelet.Morlet
	}
	return cfg
}
