package induced

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Epochs holds single-trial sensor data. Every trial is channels by time
// samples with identical dimensions.
type Epochs struct {
	// Trials are the per-trial sensor matrices, one row per channel.
	Trials []*mat.Dense
	// ChannelNames labels the trial rows.
	ChannelNames []string
	// SampleRate is the sampling frequency in Hz.
	SampleRate float64
	// Tmin is the time of the first sample in seconds.
	Tmin float64
}

// Len returns the trial count.
func (e *Epochs) Len() int { return len(e.Trials) }

// NTimes returns the samples per trial, or 0 without trials.
func (e *Epochs) NTimes() int {
	if len(e.Trials) == 0 {
		return 0
	}
	_, n := e.Trials[0].Dims()
	return n
}

// Times returns the sample instants in seconds.
func (e *Epochs) Times() []float64 {
	times := make([]float64, e.NTimes())
	for i := range times {
		times[i] = e.Tmin + float64(i)/e.SampleRate
	}
	return times
}

func (e *Epochs) validate() error {
	if len(e.Trials) == 0 {
		return ErrNoTrials
	}
	if e.SampleRate <= 0 || math.IsNaN(e.SampleRate) || math.IsInf(e.SampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrSampleRate, e.SampleRate)
	}
	rows, cols := e.Trials[0].Dims()
	if rows != len(e.ChannelNames) {
		return fmt.Errorf("%w: %d rows for %d channel names", ErrTrialShape, rows, len(e.ChannelNames))
	}
	if cols == 0 {
		return fmt.Errorf("%w: trials have no samples", ErrTrialShape)
	}
	for i, trial := range e.Trials {
		r, c := trial.Dims()
		if r != rows || c != cols {
			return fmt.Errorf("%w: trial %d is %dx%d, want %dx%d", ErrTrialShape, i, r, c, rows, cols)
		}
	}
	return nil
}

// pickChannels maps the operator's channel order onto trial rows. Every
// operator channel must be present by name.
func pickChannels(epochNames, opNames []string) ([]int, error) {
	index := make(map[string]int, len(epochNames))
	for i, name := range epochNames {
		index[name] = i
	}
	sel := make([]int, len(opNames))
	for i, name := range opNames {
		row, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrChannelMissing, name)
		}
		sel[i] = row
	}
	return sel, nil
}
