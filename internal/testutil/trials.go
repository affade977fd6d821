package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Trial builds a channels-by-time matrix from per-channel sample slices.
// All rows must share the same length.
func Trial(rows ...[]float64) *mat.Dense {
	nTimes := len(rows[0])
	m := mat.NewDense(len(rows), nTimes, nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m
}

// SineTrials returns nTrials identical single-channel trials carrying a sine
// at freqHz. Identical trials lock the phase across the trial set.
func SineTrials(nTrials int, freqHz, sampleRate float64, nTimes int) []*mat.Dense {
	trials := make([]*mat.Dense, nTrials)
	row := DeterministicSine(freqHz, sampleRate, 1.0, nTimes)
	for k := range trials {
		trials[k] = Trial(row)
	}
	return trials
}

// RandomPhaseTrials returns nTrials single-channel trials carrying sines at
// freqHz whose initial phases are drawn uniformly from a seeded generator.
// Across many trials the phases decorrelate.
func RandomPhaseTrials(seed int64, nTrials int, freqHz, sampleRate float64, nTimes int) []*mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	trials := make([]*mat.Dense, nTrials)
	for k := range trials {
		phase := rng.Float64() * 2 * math.Pi
		trials[k] = Trial(DeterministicSinePhase(freqHz, sampleRate, 1.0, phase, nTimes))
	}
	return trials
}

// NoiseTrials returns nTrials single-channel trials of seeded white noise,
// each trial drawn from its own derived seed.
func NoiseTrials(seed int64, nTrials, nTimes int) []*mat.Dense {
	trials := make([]*mat.Dense, nTrials)
	for k := range trials {
		trials[k] = Trial(DeterministicNoise(seed+int64(k), 1.0, nTimes))
	}
	return trials
}
