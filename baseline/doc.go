// Package baseline corrects row-major time series against a reference
// interval.
//
// Each row is corrected independently: its baseline statistics come from the
// samples whose times fall inside the window, and the whole row is then
// divided, log-scaled, or standardized against them. Ratio and log-ratio
// modes expect non-negative data such as power estimates.
//
// # Usage
//
//	r := baseline.Rescaler{
//		Mode:   baseline.ModeZScore,
//		Window: baseline.Interval(-0.5, 0),
//	}
//	err := r.Rescale(data, times)
//
// [Full] selects the entire time axis as the baseline. Window bounds are
// inclusive; a NaN bound leaves that side open.
package baseline
