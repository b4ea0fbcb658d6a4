package window

import (
	"errors"
	"fmt"
)

// daysInYear is the length of the circular calendar, including the leap
// day.
const daysInYear = 366

var (
	// ErrInvalidWindowLength indicates a non-positive window length.
	ErrInvalidWindowLength = errors.New("window: window length must be a positive number of days")
	// ErrInvalidStepLength indicates a non-positive step length.
	ErrInvalidStepLength = errors.New("window: step length must be a positive number of days")
	// ErrStepExceedsLength indicates a step length larger than the window
	// length, which would leave target days without donor values.
	ErrStepExceedsLength = errors.New("window: step length must not exceed window length")
)

// RunningWindow partitions a circular 366-day calendar into overlapping
// neighborhoods. It is immutable after construction and safe for concurrent
// use.
type RunningWindow struct {
	length  int
	step    int
	centers []int
}

// Iteration is one window of a running-window pass: the window's center day
// of year and the indices whose corrected values this window produces.
type Iteration struct {
	Center        int
	TargetIndices []int
}

// New creates a running window with the given window (donor) length and
// step (target) length, both in days.
func New(length, step int) (*RunningWindow, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindowLength, length)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStepLength, step)
	}
	if step > length {
		return nil, fmt.Errorf("%w: step %d, length %d", ErrStepExceedsLength, step, length)
	}
	return &RunningWindow{
		length:  length,
		step:    step,
		centers: windowCenters(step),
	}, nil
}

// Length returns the window (donor) length in days.
func (w *RunningWindow) Length() int { return w.length }

// Step returns the step (target) length in days.
func (w *RunningWindow) Step() int { return w.step }

// Centers returns the window centers, ordered by day of year.
func (w *RunningWindow) Centers() []int {
	out := make([]int, len(w.centers))
	copy(out, w.centers)
	return out
}

// windowCenters spaces centers step days apart across the year. The first
// center is shifted back by half of what the last step leaves over, so the
// gap across the year boundary is no wider than the interior gaps. A center
// falling on the leap day 366 is moved to 365.
func windowCenters(step int) []int {
	leftover := daysInYear % step
	first := 1 + step/2
	if leftover != 0 {
		first -= (step - leftover) / 2
	}
	var centers []int
	for c := first; c <= daysInYear; c += step {
		if c == daysInYear {
			centers = append(centers, daysInYear-1)
		} else {
			centers = append(centers, c)
		}
	}
	return centers
}

// circularDistance returns the distance between two days of year on the
// circular 366-day calendar.
func circularDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if daysInYear-d < d {
		return daysInYear - d
	}
	return d
}

// IndicesInWindow returns the donor index set of the window around center:
// all indices whose day of year lies within length/2 of the center,
// wrapping across the year boundary.
func (w *RunningWindow) IndicesInWindow(daysOfYear []int, center int) []int {
	radius := w.length / 2
	var indices []int
	for i, d := range daysOfYear {
		if circularDistance(d, center) <= radius {
			indices = append(indices, i)
		}
	}
	return indices
}

// Iterate assigns every index of daysOfYear to exactly one window and
// returns the windows in center order. An index qualifies for a window when
// its day of year lies within step/2 of the center; an index qualifying for
// several windows is claimed by the first, and an index covered by no
// window (possible at the wrap-around for some step lengths) is attached to
// the window with the circularly nearest center. Windows that claim no
// index are skipped.
func (w *RunningWindow) Iterate(daysOfYear []int) []Iteration {
	radius := w.step / 2
	claimed := make([]bool, len(daysOfYear))
	targets := make([][]int, len(w.centers))

	for c, center := range w.centers {
		for i, d := range daysOfYear {
			if claimed[i] {
				continue
			}
			if circularDistance(d, center) <= radius {
				targets[c] = append(targets[c], i)
				claimed[i] = true
			}
		}
	}

	// Stragglers at the wrap-around go to the nearest center.
	for i, d := range daysOfYear {
		if claimed[i] {
			continue
		}
		nearest := 0
		for c := 1; c < len(w.centers); c++ {
			if circularDistance(d, w.centers[c]) < circularDistance(d, w.centers[nearest]) {
				nearest = c
			}
		}
		targets[nearest] = append(targets[nearest], i)
		claimed[i] = true
	}

	iterations := make([]Iteration, 0, len(w.centers))
	for c, center := range w.centers {
		if len(targets[c]) == 0 {
			continue
		}
		iterations = append(iterations, Iteration{Center: center, TargetIndices: targets[c]})
	}
	return iterations
}
