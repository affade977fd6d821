package baseline

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-mne/internal/testutil"
)

func TestRescaleRatio(t *testing.T) {
	data := mat.NewDense(1, 4, []float64{2, 4, 6, 8})
	times := []float64{0, 1, 2, 3}

	r := Rescaler{Mode: ModeRatio, Window: Interval(0, 1)}
	if err := r.Rescale(data, times); err != nil {
		t.Fatalf("Rescale error: %v", err)
	}

	// Baseline mean over samples 0 and 1 is 3.
	want := []float64{2.0 / 3, 4.0 / 3, 2, 8.0 / 3}
	testutil.RequireSliceNearlyEqual(t, data.RawRowView(0), want, 1e-12)
}

func TestRescaleLogRatio(t *testing.T) {
	data := mat.NewDense(1, 4, []float64{1, 10, 100, 1000})
	times := []float64{0, 1, 2, 3}

	r := Rescaler{Mode: ModeLogRatio, Window: Interval(0, 0)}
	if err := r.Rescale(data, times); err != nil {
		t.Fatalf("Rescale error: %v", err)
	}

	want := []float64{0, 10, 20, 30}
	testutil.RequireSliceNearlyEqual(t, data.RawRowView(0), want, 1e-12)
}

func TestRescaleZScore(t *testing.T) {
	data := mat.NewDense(1, 4, []float64{2, 4, 6, 8})
	times := []float64{0, 1, 2, 3}

	r := Rescaler{Mode: ModeZScore, Window: Interval(0, 1)}
	if err := r.Rescale(data, times); err != nil {
		t.Fatalf("Rescale error: %v", err)
	}

	// Baseline mean 3, population deviation 1.
	want := []float64{-1, 1, 3, 5}
	testutil.RequireSliceNearlyEqual(t, data.RawRowView(0), want, 1e-12)
}

func TestRescaleRowsIndependent(t *testing.T) {
	data := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		10, 20, 30,
	})
	times := []float64{0, 1, 2}

	r := Rescaler{Mode: ModeRatio, Window: Interval(0, 0)}
	if err := r.Rescale(data, times); err != nil {
		t.Fatalf("Rescale error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, data.RawRowView(0), []float64{1, 2, 3}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, data.RawRowView(1), []float64{1, 2, 3}, 1e-12)
}

func TestRescaleFullWindow(t *testing.T) {
	data := mat.NewDense(1, 4, []float64{1, 2, 3, 6})
	times := []float64{-1, 0, 1, 2}

	r := Rescaler{Mode: ModeRatio, Window: Full()}
	if err := r.Rescale(data, times); err != nil {
		t.Fatalf("Rescale error: %v", err)
	}

	want := []float64{1.0 / 3, 2.0 / 3, 1, 2}
	testutil.RequireSliceNearlyEqual(t, data.RawRowView(0), want, 1e-12)
}

func TestRescaleOpenEndedWindows(t *testing.T) {
	times := []float64{0, 1, 2, 3}

	// Open start: baseline covers samples up to t = 1.
	data := mat.NewDense(1, 4, []float64{2, 4, 9, 9})
	r := Rescaler{Mode: ModeRatio, Window: Window{Tmin: math.NaN(), Tmax: 1}}
	if err := r.Rescale(data, times); err != nil {
		t.Fatalf("Rescale error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, data.RawRowView(0), []float64{2.0 / 3, 4.0 / 3, 3, 3}, 1e-12)

	// Open end: baseline covers samples from t = 2 on.
	data = mat.NewDense(1, 4, []float64{9, 9, 2, 4})
	r = Rescaler{Mode: ModeRatio, Window: Window{Tmin: 2, Tmax: math.NaN()}}
	if err := r.Rescale(data, times); err != nil {
		t.Fatalf("Rescale error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, data.RawRowView(0), []float64{3, 3, 2.0 / 3, 4.0 / 3}, 1e-12)
}

func TestRescaleWindowInclusive(t *testing.T) {
	// Bounds land exactly on samples 1 and 2; both are part of the
	// baseline.
	data := mat.NewDense(1, 4, []float64{100, 2, 4, 100})
	times := []float64{0, 0.1, 0.2, 0.3}

	r := Rescaler{Mode: ModeRatio, Window: Interval(0.1, 0.2)}
	if err := r.Rescale(data, times); err != nil {
		t.Fatalf("Rescale error: %v", err)
	}

	testutil.RequireNearlyEqual(t, data.At(0, 1), 2.0/3, 1e-12)
	testutil.RequireNearlyEqual(t, data.At(0, 2), 4.0/3, 1e-12)
}

func TestRescaleErrors(t *testing.T) {
	times := []float64{0, 1, 2, 3}

	tests := []struct {
		name    string
		data    *mat.Dense
		times   []float64
		r       Rescaler
		wantErr error
	}{
		{
			"times length",
			mat.NewDense(1, 4, nil),
			[]float64{0, 1},
			Rescaler{Mode: ModeRatio, Window: Full()},
			ErrTimesLength,
		},
		{
			"window after data",
			mat.NewDense(1, 4, []float64{1, 1, 1, 1}),
			times,
			Rescaler{Mode: ModeRatio, Window: Interval(10, 20)},
			ErrEmptyWindow,
		},
		{
			"window before data",
			mat.NewDense(1, 4, []float64{1, 1, 1, 1}),
			times,
			Rescaler{Mode: ModeRatio, Window: Interval(-20, -10)},
			ErrEmptyWindow,
		},
		{
			"inverted window",
			mat.NewDense(1, 4, []float64{1, 1, 1, 1}),
			times,
			Rescaler{Mode: ModeRatio, Window: Interval(3, 0)},
			ErrEmptyWindow,
		},
		{
			"zero mean",
			mat.NewDense(1, 4, []float64{0, 0, 1, 1}),
			times,
			Rescaler{Mode: ModeRatio, Window: Interval(0, 1)},
			ErrZeroMean,
		},
		{
			"zero deviation",
			mat.NewDense(1, 4, []float64{5, 5, 1, 1}),
			times,
			Rescaler{Mode: ModeZScore, Window: Interval(0, 1)},
			ErrZeroStd,
		},
		{
			"unknown mode",
			mat.NewDense(1, 4, []float64{1, 1, 1, 1}),
			times,
			Rescaler{Mode: Mode(99), Window: Full()},
			ErrUnknownMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Rescale(tt.data, tt.times)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Rescale error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeLogRatio.String() != "logratio" || ModeRatio.String() != "ratio" || ModeZScore.String() != "zscore" {
		t.Fatalf("mode names = %q/%q/%q", ModeLogRatio, ModeRatio, ModeZScore)
	}
}
