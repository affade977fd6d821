// Package induced estimates time-frequency source power from single-trial
// sensor data.
//
// Each trial is convolved with a bank of Morlet wavelets, projected into
// source space through a minimum-norm inverse kernel, squared and averaged
// over trials. Averaging the squared projections rather than projecting an
// averaged evoked response keeps non-phase-locked (induced) activity that
// would cancel in the average. The engine optionally computes the
// phase-locking value (PLV), the inter-trial consistency of phase at each
// source, frequency and time.
//
// # Usage
//
// Full time-frequency decomposition:
//
//	bank, err := wavelet.Morlet(sampleRate, []float64{8, 10, 12}, 7)
//	res, err := induced.SourceInducedPower(epochs, inverse.Prepared(op), bank, induced.Config{
//		Lambda2: 1.0 / 9.0,
//		DSPM:    true,
//		PCA:     true,
//		WithPLV: true,
//	})
//	p := res.Power.At(source, freq, sample)
//
// Band-averaged power with baseline correction over the pre-stimulus
// samples (open start through t = 0):
//
//	cfg := induced.DefaultBandConfig()
//	cfg.Baseline = baseline.Rescaler{Window: baseline.Interval(math.NaN(), 0)}
//	stcs, err := induced.SourceBandInducedPower(epochs, inverse.Prepared(op), []induced.Band{
//		{Name: "alpha", Low: 8, High: 12},
//		{Name: "beta", Low: 13, High: 30},
//	}, cfg)
//
// # Pipeline
//
// For every trial the engine selects the operator's channels by name,
// optionally reduces dimensionality through the kernel's whitened-space
// basis, and convolves each row with every wavelet. The real and imaginary
// coefficient planes are projected through the kernel as two separate real
// matrix multiplications. Power accumulates the squared projections; with
// free source orientations the three component rows of each source are
// summed. PLV accumulates each trial's unit-magnitude phasor and takes the
// magnitude of the sum, so N perfectly phase-locked trials score 1 and
// incoherent trials approach 0. Zero-magnitude samples carry no phase and
// contribute nothing.
//
// Trials are split into contiguous batches processed concurrently, one
// worker per batch, bounded by [Config.Workers] and the trial count. The
// batch split does not change the result beyond floating-point rounding.
//
// # Noise normalization
//
// With [Config.DSPM] the averaged power is scaled by the operator's
// squared noise-normalization factors, turning raw amplitudes into
// signal-to-noise units. PLV is a pure phase statistic and is never
// normalized or baseline-corrected.
package induced
