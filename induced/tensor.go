package induced

import "gonum.org/v1/gonum/mat"

// Tensor is a dense [row, frequency, time] stack with the time axis
// contiguous in memory.
type Tensor struct {
	Rows  int
	Freqs int
	Times int
	Data  []float64
}

// NewTensor returns a zeroed tensor of the given dimensions.
func NewTensor(rows, freqs, times int) *Tensor {
	return &Tensor{
		Rows:  rows,
		Freqs: freqs,
		Times: times,
		Data:  make([]float64, rows*freqs*times),
	}
}

// At returns the value at (row, freq, time).
func (t *Tensor) At(r, f, ti int) float64 {
	return t.Data[(r*t.Freqs+f)*t.Times+ti]
}

// Series returns the backing time series at (row, freq). Writes through
// to the tensor.
func (t *Tensor) Series(r, f int) []float64 {
	off := (r*t.Freqs + f) * t.Times
	return t.Data[off : off+t.Times : off+t.Times]
}

// TimeMajor returns a (rows*freqs) by times matrix sharing the tensor's
// backing array.
func (t *Tensor) TimeMajor() *mat.Dense {
	return mat.NewDense(t.Rows*t.Freqs, t.Times, t.Data)
}
