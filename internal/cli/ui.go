//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/combicalc/internal/combinatorics"
	"github.com/agbru/combicalc/internal/format"
	"github.com/agbru/combicalc/internal/orchestration"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// HexDisplayEdges specifies the number of hex characters to display at the
	// beginning and end of a truncated hexadecimal number.
	HexDisplayEdges = 40
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so that DisplayProgress can be tested
// without a terminal. It defines the essential controls: starting, stopping
// and updating the status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressSuffix renders the text shown after the spinner.
func progressSuffix(agg *orchestration.ProgressAggregator) string {
	avg := agg.CalculateAverage()
	label := "Computing"
	if agg.IsMultiCalculator() {
		label = fmt.Sprintf("Comparing %d algorithms", agg.NumCalculators())
	}
	return fmt.Sprintf(" %s %s %5.1f%%", label, format.ProgressBar(avg, ProgressBarWidth), avg*100)
}

// DisplayProgress shows a spinner with an aggregated progress bar until
// progressChan is closed. The display refreshes every ProgressRefreshRate
// rather than on every update, so a flood of updates costs nothing.
//
// Parameters:
//   - wg: Signaled when the display has stopped.
//   - progressChan: The channel of progress updates. Must be closed by the sender.
//   - numCalculators: The number of calculators sending updates.
//   - out: The writer the spinner draws on.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan combinatorics.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(agg))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(progressSuffix(agg))
				return
			}
			agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix(agg))
		}
	}
}
