package induced

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-mne/cwt"
	"github.com/cwbudde/algo-mne/inverse"
	"github.com/cwbudde/algo-mne/wavelet"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Result holds the trial-averaged source-space estimates.
type Result struct {
	// Power is the induced power per source, frequency and time sample.
	Power *Tensor
	// PLV is the phase-locking value in the same layout, nil unless
	// requested. Values lie in [0, 1].
	PLV *Tensor
	// LeftVertices and RightVertices identify the source rows.
	LeftVertices  []int
	RightVertices []int
	// Freqs are the analysis frequencies in bank order.
	Freqs []float64
	// Times are the sample instants in seconds.
	Times []float64
}

// SourceInducedPower computes time-frequency source power, and optionally
// the phase-locking value, from single-trial sensor data. The inverse
// operator supplied by prep is assembled into a projection kernel, each
// trial is wavelet-transformed and projected, and the per-trial results
// are averaged. Trials are processed in parallel batches.
func SourceInducedPower(ep *Epochs, prep inverse.Preparer, bank []wavelet.Wavelet, cfg Config) (*Result, error) {
	cfg = normalizeConfig(cfg)

	if err := ep.validate(); err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, ErrNoWavelets
	}
	for _, w := range bank {
		if len(w.Data) == 0 {
			return nil, fmt.Errorf("induced: wavelet %g Hz: %w", w.Freq, cwt.ErrEmptyWavelet)
		}
	}
	if prep == nil {
		return nil, ErrNilPreparer
	}

	op, err := prep.Prepare(ep.Len(), cfg.Lambda2, cfg.DSPM)
	if err != nil {
		return nil, fmt.Errorf("induced: prepare inverse: %w", err)
	}

	sel, err := pickChannels(ep.ChannelNames, op.ChannelNames)
	if err != nil {
		return nil, err
	}

	kern, err := inverse.NewKernel(op, cfg.PCA)
	if err != nil {
		return nil, err
	}
	kern, err = kern.Restrict(cfg.Label)
	if err != nil {
		return nil, err
	}
	if cfg.DSPM && kern.NoiseNorm == nil {
		return nil, ErrNoiseNorm
	}

	sums, err := reduceTrials(ep.Trials, kern, sel, bank, cfg)
	if err != nil {
		return nil, err
	}

	n := float64(ep.Len())
	power := sums.power
	floats.Scale(1/n, power.Data)

	var plv *Tensor
	if cfg.WithPLV {
		plv = finalizePLV(sums.plvRe, sums.plvIm, n, kern.Orientation)
	}

	if cfg.DSPM {
		applyNoiseNorm(power, kern.NoiseNorm)
	}

	res := &Result{
		Power:         power,
		PLV:           plv,
		LeftVertices:  kern.LeftVertices,
		RightVertices: kern.RightVertices,
		Freqs:         bankFreqs(bank),
		Times:         ep.Times(),
	}

	if cfg.Baseline != nil {
		if err := cfg.Baseline.Rescale(res.Power.TimeMajor(), res.Times); err != nil {
			return nil, fmt.Errorf("induced: baseline: %w", err)
		}
	}
	return res, nil
}

func bankFreqs(bank []wavelet.Wavelet) []float64 {
	freqs := make([]float64, len(bank))
	for i, w := range bank {
		freqs[i] = w.Freq
	}
	return freqs
}

// batchSums accumulates one batch's raw per-trial contributions. Power
// rows are sources; the phase planes keep the kernel's raw rows until
// finalizePLV folds free orientations.
type batchSums struct {
	power *Tensor
	plvRe *Tensor
	plvIm *Tensor
}

func (b *batchSums) merge(o *batchSums) {
	floats.Add(b.power.Data, o.power.Data)
	if b.plvRe != nil {
		floats.Add(b.plvRe.Data, o.plvRe.Data)
		floats.Add(b.plvIm.Data, o.plvIm.Data)
	}
}

// accumulatePower adds one component's squared contribution at frequency
// f. Free orientation folds each triplet of kernel rows into its source.
func (b *batchSums) accumulatePower(f int, sol *mat.Dense, comps int) {
	for s := 0; s < b.power.Rows; s++ {
		dst := b.power.Series(s, f)
		for c := 0; c < comps; c++ {
			row := sol.RawRowView(s*comps + c)
			for t, v := range row {
				dst[t] += v * v
			}
		}
	}
}

// accumulatePhase adds the unit-magnitude phase of solRe + i*solIm at
// frequency f. Zero-magnitude samples contribute nothing.
func (b *batchSums) accumulatePhase(f int, solRe, solIm *mat.Dense, mag []float64) {
	for r := 0; r < b.plvRe.Rows; r++ {
		re := solRe.RawRowView(r)
		im := solIm.RawRowView(r)
		vecmath.Magnitude(mag, re, im)

		dstRe := b.plvRe.Series(r, f)
		dstIm := b.plvIm.Series(r, f)
		for t, m := range mag {
			if m > 0 {
				dstRe[t] += re[t] / m
				dstIm[t] += im[t] / m
			}
		}
	}
}

func (b *batchSums) checkFinite() error {
	if !finite(b.power.Data) {
		return ErrNonFinite
	}
	if b.plvRe != nil && (!finite(b.plvRe.Data) || !finite(b.plvIm.Data)) {
		return ErrNonFinite
	}
	return nil
}

func finite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// computeBatch runs the per-trial pipeline over a contiguous slice of
// trials: channel selection, optional rank reduction, wavelet transform,
// kernel projection and accumulation.
func computeBatch(trials []*mat.Dense, kern *inverse.Kernel, sel []int, bank []wavelet.Wavelet, mode cwt.Mode, withPLV bool) (*batchSums, error) {
	_, nTimes := trials[0].Dims()
	kRows, _ := kern.K.Dims()
	comps := kern.Orientation.Components()

	sums := &batchSums{power: NewTensor(kRows/comps, len(bank), nTimes)}
	if withPLV {
		sums.plvRe = NewTensor(kRows, len(bank), nTimes)
		sums.plvIm = NewTensor(kRows, len(bank), nTimes)
	}

	transformers := make([]*cwt.Transformer, len(bank))
	for i, w := range bank {
		tr, err := cwt.New(w, nTimes, mode)
		if err != nil {
			return nil, fmt.Errorf("induced: wavelet %g Hz: %w", w.Freq, err)
		}
		transformers[i] = tr
	}

	sub := mat.NewDense(len(sel), nTimes, nil)
	data := sub
	var red *mat.Dense
	if kern.Vh != nil {
		rank, _ := kern.Vh.Dims()
		red = mat.NewDense(rank, nTimes, nil)
		data = red
	}
	dataRows, _ := data.Dims()

	tfRe := mat.NewDense(dataRows, nTimes, nil)
	tfIm := mat.NewDense(dataRows, nTimes, nil)
	solRe := mat.NewDense(kRows, nTimes, nil)
	solIm := mat.NewDense(kRows, nTimes, nil)
	var mag []float64
	if withPLV {
		mag = make([]float64, nTimes)
	}

	for _, trial := range trials {
		for c, idx := range sel {
			sub.SetRow(c, trial.RawRowView(idx))
		}
		if red != nil {
			red.Mul(kern.Vh, sub)
		}

		for f, tr := range transformers {
			for r := 0; r < dataRows; r++ {
				if err := tr.ApplyRow(tfRe.RawRowView(r), tfIm.RawRowView(r), data.RawRowView(r)); err != nil {
					return nil, err
				}
			}

			// The complex projection runs as two real multiplications.
			solRe.Mul(kern.K, tfRe)
			solIm.Mul(kern.K, tfIm)

			if withPLV {
				sums.accumulatePhase(f, solRe, solIm, mag)
			}
			sums.accumulatePower(f, solRe, comps)
			sums.accumulatePower(f, solIm, comps)
		}
	}

	if err := sums.checkFinite(); err != nil {
		return nil, err
	}
	return sums, nil
}

// finalizePLV turns summed unit phasors into phase-locking values:
// magnitude over trials, averaged across the three orientation rows for
// free-orientation kernels.
func finalizePLV(plvRe, plvIm *Tensor, n float64, ori inverse.Orientation) *Tensor {
	raw := NewTensor(plvRe.Rows, plvRe.Freqs, plvRe.Times)
	vecmath.Magnitude(raw.Data, plvRe.Data, plvIm.Data)
	floats.Scale(1/n, raw.Data)
	if ori != inverse.OrientationFree {
		return raw
	}

	out := NewTensor(raw.Rows/3, raw.Freqs, raw.Times)
	for s := 0; s < out.Rows; s++ {
		for f := 0; f < out.Freqs; f++ {
			dst := out.Series(s, f)
			for c := 0; c < 3; c++ {
				floats.Add(dst, raw.Series(3*s+c, f))
			}
			floats.Scale(1.0/3, dst)
		}
	}
	return out
}

// applyNoiseNorm scales each source's power by its squared dSPM factor.
func applyNoiseNorm(power *Tensor, noiseNorm []float64) {
	for s := 0; s < power.Rows; s++ {
		factor := noiseNorm[s] * noiseNorm[s]
		for f := 0; f < power.Freqs; f++ {
			floats.Scale(factor, power.Series(s, f))
		}
	}
}
