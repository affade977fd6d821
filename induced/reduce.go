package induced

import (
	"github.com/cwbudde/algo-mne/inverse"
	"github.com/cwbudde/algo-mne/wavelet"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// splitRanges partitions n items into at most k contiguous [start, end)
// ranges. The first n%k ranges receive one extra item, so sizes differ by
// at most one.
func splitRanges(n, k int) [][2]int {
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}
	base := n / k
	extra := n % k
	ranges := make([][2]int, 0, k)
	start := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		ranges = append(ranges, [2]int{start, start + size})
		start += size
	}
	return ranges
}

// reduceTrials fans the trials out over worker batches and merges the
// partial sums. The first batch error fails the whole computation.
func reduceTrials(trials []*mat.Dense, kern *inverse.Kernel, sel []int, bank []wavelet.Wavelet, cfg Config) (*batchSums, error) {
	ranges := splitRanges(len(trials), cfg.Workers)

	parts := make([]*batchSums, len(ranges))
	var g errgroup.Group
	for i, rg := range ranges {
		g.Go(func() error {
			sums, err := computeBatch(trials[rg[0]:rg[1]], kern, sel, bank, cfg.Mode, cfg.WithPLV)
			if err != nil {
				return err
			}
			parts[i] = sums
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := parts[0]
	for _, p := range parts[1:] {
		total.merge(p)
	}
	return total, nil
}
