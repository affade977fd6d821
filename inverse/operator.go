package inverse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Orientation describes how dipole components are laid out in the source
// space.
type Orientation int

const (
	// OrientationFixed constrains each source to a single component normal
	// to the cortical surface: one kernel row per source.
	OrientationFixed Orientation = iota

	// OrientationFree keeps three orthogonal components per source; kernel
	// rows come in consecutive triplets.
	OrientationFree
)

// Components returns the number of kernel rows per source.
func (o Orientation) Components() int {
	if o == OrientationFree {
		return 3
	}
	return 1
}

func (o Orientation) String() string {
	switch o {
	case OrientationFixed:
		return "fixed"
	case OrientationFree:
		return "free"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Operator is a prepared minimum-norm inverse operator. All fields are
// read-only once the operator enters kernel assembly; regularization
// (trial count, lambda) and noise normalization are already baked into
// RegInv and NoiseNorm by the preparation step.
type Operator struct {
	// RegInv holds the regularized inverse gains, one per retained
	// eigen-component.
	RegInv []float64

	// EigenFields maps sensor space onto the eigen-components: one row per
	// component, one column per channel.
	EigenFields *mat.Dense

	// Whitener and Proj are square channel-space matrices applied to data
	// before the eigen-field projection.
	Whitener *mat.Dense
	Proj     *mat.Dense

	// EigenLeads maps eigen-components onto source rows. When
	// EigenLeadsWeighted is false the rows still need scaling by the square
	// root of SourceCov.
	EigenLeads         *mat.Dense
	EigenLeadsWeighted bool

	// SourceCov is the source covariance diagonal, one entry per source row.
	SourceCov []float64

	// NoiseNorm holds per-source normalization factors (dSPM). Nil when the
	// preparation ran without noise normalization.
	NoiseNorm []float64

	Orientation Orientation

	// LeftVertices and RightVertices identify the source vertices per
	// hemisphere, in source-row order (left block first).
	LeftVertices  []int
	RightVertices []int

	// ChannelNames lists the channels the operator was computed from, in
	// column order of EigenFields after whitening and projection.
	ChannelNames []string
}

// NSources returns the number of sources across both hemispheres.
func (op *Operator) NSources() int {
	return len(op.LeftVertices) + len(op.RightVertices)
}

// NChannels returns the number of sensor channels the operator expects.
func (op *Operator) NChannels() int {
	return len(op.ChannelNames)
}

// validate checks the cross-field dimension contracts before any kernel
// math touches the matrices.
func (op *Operator) validate() error {
	if op.EigenFields == nil || op.Whitener == nil || op.Proj == nil || op.EigenLeads == nil {
		return fmt.Errorf("%w: missing matrix field", ErrShape)
	}

	nEig := len(op.RegInv)
	efR, efC := op.EigenFields.Dims()
	if efR != nEig {
		return fmt.Errorf("%w: eigen fields rows %d, reginv length %d", ErrShape, efR, nEig)
	}

	nChan := op.NChannels()
	whR, whC := op.Whitener.Dims()
	pjR, pjC := op.Proj.Dims()
	if efC != whR || whC != pjR || pjC != nChan {
		return fmt.Errorf("%w: channel chain %dx%d * %dx%d * %dx%d against %d channels",
			ErrShape, efR, efC, whR, whC, pjR, pjC, nChan)
	}

	elR, elC := op.EigenLeads.Dims()
	if elC != nEig {
		return fmt.Errorf("%w: eigen leads cols %d, reginv length %d", ErrShape, elC, nEig)
	}

	comps := op.Orientation.Components()
	if elR%comps != 0 {
		return fmt.Errorf("%w: %d rows, %d components", ErrOrientationRows, elR, comps)
	}
	if elR != op.NSources()*comps {
		return fmt.Errorf("%w: eigen leads rows %d, %d sources with %d components",
			ErrShape, elR, op.NSources(), comps)
	}

	if !op.EigenLeadsWeighted && len(op.SourceCov) != elR {
		return fmt.Errorf("%w: source covariance length %d, source rows %d", ErrShape, len(op.SourceCov), elR)
	}
	if op.NoiseNorm != nil && len(op.NoiseNorm) != op.NSources() {
		return fmt.Errorf("%w: noise norm length %d, sources %d", ErrShape, len(op.NoiseNorm), op.NSources())
	}

	return nil
}

// Preparer supplies an operator regularized for a given trial count.
// Implementations typically wrap a raw decomposition and fold the number of
// averages and lambda into RegInv and NoiseNorm.
type Preparer interface {
	Prepare(nave int, lambda2 float64, dspm bool) (*Operator, error)
}

// PrepareFunc adapts a plain function to the Preparer interface.
type PrepareFunc func(nave int, lambda2 float64, dspm bool) (*Operator, error)

// Prepare calls f.
func (f PrepareFunc) Prepare(nave int, lambda2 float64, dspm bool) (*Operator, error) {
	return f(nave, lambda2, dspm)
}

// Prepared wraps an operator that is already regularized for the trial set
// it will see. Useful for tests and for callers that prepare out of band.
func Prepared(op *Operator) Preparer {
	return PrepareFunc(func(int, float64, bool) (*Operator, error) {
		return op, nil
	})
}
