package orchestration

import (
	"testing"

	"github.com/agbru/combicalc/internal/combinatorics"
)

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		n         int
		wantNil   bool
		wantMulti bool
	}{
		{"three", 3, false, true},
		{"single", 1, false, false},
		{"zero", 0, true, false},
		{"negative", -1, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			agg := NewProgressAggregator(tt.n)
			if (agg == nil) != tt.wantNil {
				t.Fatalf("NewProgressAggregator(%d) nil = %v, want %v", tt.n, agg == nil, tt.wantNil)
			}
			if agg == nil {
				return
			}
			if agg.NumCalculators() != tt.n {
				t.Errorf("NumCalculators() = %d, want %d", agg.NumCalculators(), tt.n)
			}
			if agg.IsMultiCalculator() != tt.wantMulti {
				t.Errorf("IsMultiCalculator() = %v, want %v", agg.IsMultiCalculator(), tt.wantMulti)
			}
		})
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(2)

	ap := agg.Update(combinatorics.ProgressUpdate{CalculatorIndex: 0, Value: 0.5})
	if ap.CalculatorIndex != 0 || ap.Value != 0.5 {
		t.Errorf("unexpected update echo: %+v", ap)
	}
	if ap.AverageProgress != 0.25 {
		t.Errorf("expected AverageProgress=0.25, got %f", ap.AverageProgress)
	}

	ap = agg.Update(combinatorics.ProgressUpdate{CalculatorIndex: 1, Value: 0.5})
	if ap.AverageProgress != 0.5 {
		t.Errorf("expected AverageProgress=0.5, got %f", ap.AverageProgress)
	}

	// Out-of-range indices are ignored.
	ap = agg.Update(combinatorics.ProgressUpdate{CalculatorIndex: 7, Value: 1.0})
	if ap.AverageProgress != 0.5 {
		t.Errorf("expected AverageProgress unchanged at 0.5, got %f", ap.AverageProgress)
	}
}

func TestProgressAggregator_CalculateAverage(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(2)

	if avg := agg.CalculateAverage(); avg != 0.0 {
		t.Errorf("expected initial average=0.0, got %f", avg)
	}
	agg.Update(combinatorics.ProgressUpdate{CalculatorIndex: 0, Value: 1.0})
	if avg := agg.CalculateAverage(); avg != 0.5 {
		t.Errorf("expected average=0.5 after one update, got %f", avg)
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan combinatorics.ProgressUpdate, 5)
	ch <- combinatorics.ProgressUpdate{CalculatorIndex: 0, Value: 0.1}
	ch <- combinatorics.ProgressUpdate{CalculatorIndex: 0, Value: 0.2}
	close(ch)

	DrainChannel(ch)
	if len(ch) != 0 {
		t.Errorf("channel still holds %d updates", len(ch))
	}
}
