package induced

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-mne/inverse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Band is a named frequency range, inclusive on both ends.
type Band struct {
	Name string
	Low  float64
	High float64
}

// SourceEstimate is one band's source-space time course.
type SourceEstimate struct {
	// Data is sources by time samples.
	Data *mat.Dense
	// Tmin is the time of the first sample, Tstep the sample spacing.
	Tmin  float64
	Tstep float64
	// LeftVertices and RightVertices identify the source rows.
	LeftVertices  []int
	RightVertices []int
}

// BandFrequencies returns the band's sampling grid low, low+step, ...
// extending through high. The upper edge stays on the grid despite
// floating error.
func BandFrequencies(b Band, step float64) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: %v", ErrFreqStep, step)
	}
	if b.Low > b.High || math.IsNaN(b.Low) || math.IsNaN(b.High) ||
		math.IsInf(b.Low, 0) || math.IsInf(b.High, 0) {
		return nil, fmt.Errorf("%w: %s [%v, %v]", ErrBandBounds, b.Name, b.Low, b.High)
	}
	n := int(math.Ceil((b.High + step/2 - b.Low) / step))
	if n < 1 {
		n = 1
	}
	freqs := make([]float64, n)
	for i := range freqs {
		freqs[i] = b.Low + float64(i)*step
	}
	return freqs, nil
}

// SourceBandInducedPower averages induced power over named frequency
// bands. All bands share one wavelet pass over the concatenated grid; a
// grid point inside several bands contributes to each of them. Baseline
// correction applies per band.
func SourceBandInducedPower(ep *Epochs, prep inverse.Preparer, bands []Band, cfg BandConfig) (map[string]*SourceEstimate, error) {
	cfg = normalizeBandConfig(cfg)
	if len(bands) == 0 {
		return nil, ErrNoBands
	}

	var freqs []float64
	for _, b := range bands {
		bf, err := BandFrequencies(b, cfg.FreqStep)
		if err != nil {
			return nil, err
		}
		freqs = append(freqs, bf...)
	}

	// Epochs must be sound before the sample rate feeds the wavelet bank.
	if err := ep.validate(); err != nil {
		return nil, err
	}

	bank, err := cfg.Wavelets(ep.SampleRate, freqs, cfg.Cycles)
	if err != nil {
		return nil, fmt.Errorf("induced: wavelet bank: %w", err)
	}

	inner := cfg.Config
	inner.WithPLV = false
	inner.Baseline = nil
	res, err := SourceInducedPower(ep, prep, bank, inner)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*SourceEstimate, len(bands))
	for _, b := range bands {
		// idx is never empty: the band's own grid starts at exactly b.Low.
		var idx []int
		for k, f := range freqs {
			if b.Low <= f && f <= b.High {
				idx = append(idx, k)
			}
		}

		data := mat.NewDense(res.Power.Rows, res.Power.Times, nil)
		for s := 0; s < res.Power.Rows; s++ {
			dst := data.RawRowView(s)
			for _, k := range idx {
				floats.Add(dst, res.Power.Series(s, k))
			}
			floats.Scale(1/float64(len(idx)), dst)
		}

		if cfg.Baseline != nil {
			if err := cfg.Baseline.Rescale(data, res.Times); err != nil {
				return nil, fmt.Errorf("induced: baseline %s: %w", b.Name, err)
			}
		}

		out[b.Name] = &SourceEstimate{
			Data:          data,
			Tmin:          ep.Tmin,
			Tstep:         1 / ep.SampleRate,
			LeftVertices:  res.LeftVertices,
			RightVertices: res.RightVertices,
		}
	}
	return out, nil
}
