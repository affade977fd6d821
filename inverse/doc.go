// Package inverse assembles sensor-to-source imaging kernels from prepared
// minimum-norm inverse operators.
//
// An [Operator] holds the decomposed pieces of a regularized inverse
// solution: eigen-fields, whitener, projector, regularized inverse gains,
// and eigen-leads. [NewKernel] composes them into a single dense matrix K
// such that K applied to whitened, projected sensor data yields source
// amplitudes. With PCA enabled the sensor-space factor is rank-truncated by
// SVD and the kernel carries a separate projector Vh that callers apply to
// the data first; this trades one fat multiplication for two thin ones
// without changing the represented units.
//
// # Usage
//
//	kern, err := inverse.NewKernel(op, true)
//	if err != nil { ... }
//	kern, err = kern.Restrict(label) // optional anatomical restriction
//
// Free-orientation operators keep three rows per source; [Kernel.Restrict]
// expands each selected vertex to its row triplet and subsets the per-source
// noise normalization before that expansion.
package inverse
