package baseline

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by Rescale.
var (
	ErrTimesLength = errors.New("baseline: times length mismatch")
	ErrEmptyWindow = errors.New("baseline: window selects no samples")
	ErrZeroMean    = errors.New("baseline: zero baseline mean")
	ErrZeroStd     = errors.New("baseline: zero baseline deviation")
	ErrUnknownMode = errors.New("baseline: unknown mode")
)

// Mode selects the correction applied to each row.
type Mode int

const (
	// ModeLogRatio divides by the baseline mean and converts to decibels.
	ModeLogRatio Mode = iota

	// ModeRatio divides by the baseline mean.
	ModeRatio

	// ModeZScore subtracts the baseline mean and divides by the baseline
	// standard deviation.
	ModeZScore
)

func (m Mode) String() string {
	switch m {
	case ModeLogRatio:
		return "logratio"
	case ModeRatio:
		return "ratio"
	case ModeZScore:
		return "zscore"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Window bounds the baseline interval in seconds, inclusive on both ends.
// A NaN bound leaves that side open.
type Window struct {
	Tmin float64
	Tmax float64
}

// Interval returns a window spanning [tmin, tmax].
func Interval(tmin, tmax float64) Window {
	return Window{Tmin: tmin, Tmax: tmax}
}

// Full returns a window spanning the whole time axis.
func Full() Window {
	return Window{Tmin: math.NaN(), Tmax: math.NaN()}
}

// indexRange maps the window onto the time axis. Both bounds are inclusive.
func (w Window) indexRange(times []float64) (lo, hi int, err error) {
	lo = 0
	if !math.IsNaN(w.Tmin) {
		lo = -1
		for i, t := range times {
			if t >= w.Tmin {
				lo = i
				break
			}
		}
		if lo < 0 {
			return 0, 0, fmt.Errorf("%w: no sample at or after %v", ErrEmptyWindow, w.Tmin)
		}
	}

	hi = len(times) - 1
	if !math.IsNaN(w.Tmax) {
		hi = -1
		for i := len(times) - 1; i >= 0; i-- {
			if times[i] <= w.Tmax {
				hi = i
				break
			}
		}
		if hi < 0 {
			return 0, 0, fmt.Errorf("%w: no sample at or before %v", ErrEmptyWindow, w.Tmax)
		}
	}

	if hi < lo {
		return 0, 0, fmt.Errorf("%w: [%v, %v]", ErrEmptyWindow, w.Tmin, w.Tmax)
	}
	return lo, hi, nil
}

// Rescaler applies baseline correction to row-major data, in place.
type Rescaler struct {
	Mode   Mode
	Window Window
}

// Rescale corrects every row of data against its own baseline statistics.
// times labels the columns and must match the column count.
func (r Rescaler) Rescale(data *mat.Dense, times []float64) error {
	rows, cols := data.Dims()
	if len(times) != cols {
		return fmt.Errorf("%w: %d times for %d columns", ErrTimesLength, len(times), cols)
	}

	lo, hi, err := r.Window.indexRange(times)
	if err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		row := data.RawRowView(i)
		seg := row[lo : hi+1]

		mean, err := stats.Mean(seg)
		if err != nil {
			return fmt.Errorf("baseline: %w", err)
		}

		switch r.Mode {
		case ModeLogRatio:
			if mean == 0 {
				return fmt.Errorf("%w: row %d", ErrZeroMean, i)
			}
			for j := range row {
				row[j] = 10 * math.Log10(row[j]/mean)
			}

		case ModeRatio:
			if mean == 0 {
				return fmt.Errorf("%w: row %d", ErrZeroMean, i)
			}
			for j := range row {
				row[j] /= mean
			}

		case ModeZScore:
			std, err := stats.StandardDeviation(seg)
			if err != nil {
				return fmt.Errorf("baseline: %w", err)
			}
			if std == 0 {
				return fmt.Errorf("%w: row %d", ErrZeroStd, i)
			}
			for j := range row {
				row[j] = (row[j] - mean) / std
			}

		default:
			return fmt.Errorf("%w: %d", ErrUnknownMode, r.Mode)
		}
	}
	return nil
}
