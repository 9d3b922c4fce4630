package format

import "strings"

// ProgressState aggregates the progress of concurrent calculators so that a
// single bar can represent all of them.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates a ProgressState tracking numCalculators entries.
func NewProgressState(numCalculators int) *ProgressState {
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records the progress of one calculator. Out-of-range indices are
// ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage returns the mean progress over all calculators.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numCalculators)
}

// ProgressBar renders a textual bar of the given width, clamping progress
// to [0, 1].
func ProgressBar(progress float64, length int) string {
	progress = max(0.0, min(progress, 1.0))
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
