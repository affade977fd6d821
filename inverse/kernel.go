package inverse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Singular values below this fraction of the largest are treated as
// numerically zero during rank reduction.
const pcaRankTolerance = 1e-8

// Label names an anatomical region as per-hemisphere vertex sets.
type Label struct {
	Name          string
	LeftVertices  []int
	RightVertices []int
}

// Kernel is the sensor-to-source projection assembled from a prepared
// operator. It is immutable once built.
type Kernel struct {
	// K has one row per source row (three per source under free
	// orientation) and one column per channel, or per retained rank
	// dimension when Vh is set.
	K *mat.Dense

	// Vh projects channel data into the retained rank space before K
	// applies. Nil when rank reduction is off.
	Vh *mat.Dense

	Orientation Orientation

	// NoiseNorm is per source, not per row. Nil when the operator carries
	// no noise normalization.
	NoiseNorm []float64

	LeftVertices  []int
	RightVertices []int
}

// Rows returns the number of source rows in K.
func (k *Kernel) Rows() int {
	r, _ := k.K.Dims()
	return r
}

// NSources returns the number of sources spanned by K.
func (k *Kernel) NSources() int {
	return k.Rows() / k.Orientation.Components()
}

// NewKernel composes the operator's factors into a single projection
// matrix. With pca enabled, the sensor-space factor is truncated to its
// numerical rank and the kernel carries the matching data projector Vh.
func NewKernel(op *Operator, pca bool) (*Kernel, error) {
	if err := op.validate(); err != nil {
		return nil, err
	}

	// Sensor-space factor: eigen fields after whitening and projection,
	// rows scaled by the regularized inverse gains.
	var ew, red mat.Dense
	ew.Mul(op.EigenFields, op.Whitener)
	red.Mul(&ew, op.Proj)
	for i, g := range op.RegInv {
		floats.Scale(g, red.RawRowView(i))
	}

	trans := &red
	var vh *mat.Dense
	if pca {
		var err error
		trans, vh, err = reduceRank(&red)
		if err != nil {
			return nil, err
		}
	}

	var k mat.Dense
	k.Mul(op.EigenLeads, trans)
	if !op.EigenLeadsWeighted {
		for i, c := range op.SourceCov {
			floats.Scale(math.Sqrt(c), k.RawRowView(i))
		}
	}

	return &Kernel{
		K:             &k,
		Vh:            vh,
		Orientation:   op.Orientation,
		NoiseNorm:     op.NoiseNorm,
		LeftVertices:  op.LeftVertices,
		RightVertices: op.RightVertices,
	}, nil
}

// reduceRank truncates a to its numerical rank via thin SVD, returning the
// scaled left factor U*S and the row-space projector Vh.
func reduceRank(a *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, ErrDecomposition
	}

	s := svd.Values(nil)
	rank := 0
	for _, v := range s {
		if v > pcaRankTolerance*s[0] {
			rank++
		}
	}
	if rank == 0 {
		return nil, nil, ErrRankZero
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	ur, _ := u.Dims()
	us := mat.NewDense(ur, rank, nil)
	for j := 0; j < rank; j++ {
		for i := 0; i < ur; i++ {
			us.Set(i, j, u.At(i, j)*s[j])
		}
	}

	vr, _ := v.Dims()
	vh := mat.NewDense(rank, vr, nil)
	for i := 0; i < rank; i++ {
		for j := 0; j < vr; j++ {
			vh.Set(i, j, v.At(j, i))
		}
	}

	return us, vh, nil
}

// Restrict returns a kernel reduced to the label's vertices. The per-source
// noise normalization is subset before rows expand to orientation triplets.
// A nil label returns the kernel unchanged.
func (k *Kernel) Restrict(label *Label) (*Kernel, error) {
	if label == nil {
		return k, nil
	}

	leftSel, leftVerts := selectVertices(k.LeftVertices, label.LeftVertices, 0)
	rightSel, rightVerts := selectVertices(k.RightVertices, label.RightVertices, len(k.LeftVertices))
	srcSel := append(leftSel, rightSel...)
	if len(srcSel) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyLabel, label.Name)
	}

	var noiseNorm []float64
	if k.NoiseNorm != nil {
		noiseNorm = make([]float64, len(srcSel))
		for i, s := range srcSel {
			noiseNorm[i] = k.NoiseNorm[s]
		}
	}

	comps := k.Orientation.Components()
	rows := make([]int, 0, len(srcSel)*comps)
	for _, s := range srcSel {
		for c := 0; c < comps; c++ {
			rows = append(rows, s*comps+c)
		}
	}

	_, cols := k.K.Dims()
	sub := mat.NewDense(len(rows), cols, nil)
	for i, r := range rows {
		sub.SetRow(i, k.K.RawRowView(r))
	}

	return &Kernel{
		K:             sub,
		Vh:            k.Vh,
		Orientation:   k.Orientation,
		NoiseNorm:     noiseNorm,
		LeftVertices:  leftVerts,
		RightVertices: rightVerts,
	}, nil
}

// selectVertices walks the kernel's vertex list in order and keeps the
// source indices whose vertex appears in wanted.
func selectVertices(vertices, wanted []int, offset int) (sel, kept []int) {
	if len(wanted) == 0 {
		return nil, nil
	}
	set := make(map[int]struct{}, len(wanted))
	for _, v := range wanted {
		set[v] = struct{}{}
	}
	for i, v := range vertices {
		if _, ok := set[v]; ok {
			sel = append(sel, offset+i)
			kept = append(kept, v)
		}
	}
	return sel, kept
}
