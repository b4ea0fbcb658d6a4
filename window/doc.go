// Package window implements running windows over days of year, the
// seasonal smoothing scheme behind windowed debiasing.
//
// The calendar is treated as circular with 366 days, so days near January 1
// and days near December 31 fall into the same windows. Each window is
// described by an integer center day; around a center there are two nested
// index sets:
//
//   - the donor set (window-length wide): indices whose values are pooled
//     to fit distributions for this window;
//   - the target set (step-length wide): indices whose corrected values are
//     produced by this window.
//
// Consecutive donor windows overlap when the window length exceeds the step
// length, which smooths fitted parameters across the seasons. Target sets
// never overlap: every input index is claimed by exactly one window.
//
// Day 366 only exists in leap years. It is never a window center; samples
// on it are absorbed by the neighboring windows.
//
// # Usage
//
//	w, err := window.New(31, 31)
//	for _, it := range w.Iterate(daysOfYear) {
//	    donor := w.IndicesInWindow(daysOfYear, it.Center)
//	    // fit on donor values, write results to it.TargetIndices
//	}
package window
