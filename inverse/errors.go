package inverse

import "errors"

// Errors returned by kernel assembly and restriction.
var (
	ErrShape           = errors.New("inverse: inconsistent operator dimensions")
	ErrOrientationRows = errors.New("inverse: source rows not divisible by orientation components")
	ErrDecomposition   = errors.New("inverse: singular value decomposition failed")
	ErrRankZero        = errors.New("inverse: kernel has zero numerical rank")
	ErrEmptyLabel      = errors.New("inverse: label selects no vertices")
)
