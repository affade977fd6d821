package induced_test

import (
	"fmt"

	"github.com/cwbudde/algo-mne/induced"
	"github.com/cwbudde/algo-mne/inverse"
	"github.com/cwbudde/algo-mne/wavelet"
	"gonum.org/v1/gonum/mat"
)

// passthroughOperator maps one channel onto one source with unit gain.
func passthroughOperator() *inverse.Operator {
	return &inverse.Operator{
		RegInv:       []float64{1},
		EigenFields:  mat.NewDense(1, 1, []float64{1}),
		Whitener:     mat.NewDense(1, 1, []float64{1}),
		Proj:         mat.NewDense(1, 1, []float64{1}),
		EigenLeads:   mat.NewDense(1, 1, []float64{1}),
		SourceCov:    []float64{1},
		Orientation:  inverse.OrientationFixed,
		LeftVertices: []int{0},
		ChannelNames: []string{"MEG 0111"},
	}
}

func ExampleSourceInducedPower() {
	// Two identical trials of a constant signal through a unit kernel:
	// power is the squared amplitude and the trials are perfectly phase
	// locked.
	trial := mat.NewDense(1, 4, []float64{2, 2, 2, 2})
	ep := &induced.Epochs{
		Trials:       []*mat.Dense{trial, trial},
		ChannelNames: []string{"MEG 0111"},
		SampleRate:   100,
	}
	bank := []wavelet.Wavelet{{Freq: 10, Data: []complex128{1}}}

	res, _ := induced.SourceInducedPower(ep, inverse.Prepared(passthroughOperator()), bank,
		induced.Config{WithPLV: true, Workers: 1})

	fmt.Printf("power %.1f\n", res.Power.At(0, 0, 0))
	fmt.Printf("plv %.1f\n", res.PLV.At(0, 0, 0))
	// Output:
	// power 4.0
	// plv 1.0
}

func ExampleBandFrequencies() {
	freqs, _ := induced.BandFrequencies(induced.Band{Name: "alpha", Low: 8, High: 12}, 1)
	fmt.Println(freqs)
	// Output: [8 9 10 11 12]
}
