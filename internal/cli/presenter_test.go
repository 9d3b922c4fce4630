package cli

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/agbru/combicalc/internal/combinatorics"
	apperrors "github.com/agbru/combicalc/internal/errors"
	"github.com/agbru/combicalc/internal/metrics"
	"github.com/agbru/combicalc/internal/orchestration"
	"github.com/agbru/combicalc/internal/sysmon"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.CalculationResult{
		{Name: "Multiplicative", Result: big.NewInt(10), Duration: 1500 * time.Microsecond},
		{Name: "Pascal", Duration: 0, Err: combinatorics.ErrRecursionLimit},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()

	for _, want := range []string{"Comparison Summary", "Algorithm", "Duration", "Status", "1ms", "< 1µs", "✅ Success", "❌ Failure"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}

	// Without colors, the status column starts at the same offset on every row.
	lines := strings.Split(strings.TrimSpace(out), "\n")[1:]
	col := strings.Index(lines[0], "Status")
	for _, line := range lines[1:] {
		idx := strings.Index(line, "✅")
		if idx < 0 {
			idx = strings.Index(line, "❌")
		}
		if len([]rune(line[:idx])) != col {
			t.Errorf("misaligned row %q: status at %d, header at %d", line, len([]rune(line[:idx])), col)
		}
	}
}

func TestPresentResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	res := orchestration.CalculationResult{Name: "Stdlib", Result: big.NewInt(2598960), Duration: time.Millisecond}
	opts := orchestration.PresentationOptions{N: 52, R: 5, ShowValue: true}

	CLIResultPresenter{}.PresentResult(res, opts, &buf)
	if !strings.Contains(buf.String(), "C(52, 5) = 2,598,960") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"invalid input", combinatorics.ErrInvalidArgument, apperrors.ExitErrorConfig},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if got := (CLIResultPresenter{}).HandleError(tt.err, time.Second, &buf); got != tt.want {
				t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
			if !strings.Contains(buf.String(), "Status:") {
				t.Errorf("expected a status line, got %q", buf.String())
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	if got := (CLIResultPresenter{}).FormatDuration(12 * time.Millisecond); got != "12ms" {
		t.Errorf("FormatDuration = %q, want 12ms", got)
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemorySnapshot{HeapAlloc: 2048, Sys: 4 << 20, NumGC: 2, PauseTotalNs: 1_500_000}, &buf)
	out := buf.String()
	for _, want := range []string{"2.0 KiB", "4.0 MiB", "GC cycles:        2", "1.50ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("memory stats should contain %q:\n%s", want, out)
		}
	}
}

func TestDisplayHostStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayHostStats(sysmon.Stats{CPUPercent: 37.3, MemPercent: 50, TotalMemory: 8 << 30}, &buf)
	out := buf.String()
	for _, want := range []string{"CPU usage:        37.3%", "50.0% of 8.0 GiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("host stats should contain %q:\n%s", want, out)
		}
	}
}
