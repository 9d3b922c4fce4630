// Package cli provides the presentation layer: result display, progress
// spinner, shell completion and the interactive REPL.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agbru/combicalc/internal/combinatorics"
	"github.com/agbru/combicalc/internal/format"
	"github.com/agbru/combicalc/internal/orchestration"
	"github.com/agbru/combicalc/internal/ui"
)

const defaultREPLTimeout = time.Minute

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the default strategy key for calculations.
	DefaultAlgo string
	// Timeout is the maximum duration for each calculation.
	Timeout time.Duration
	// HexOutput displays results in hexadecimal format.
	HexOutput bool
}

// REPL represents an interactive calculator session.
type REPL struct {
	config      REPLConfig
	factory     combinatorics.CalculatorFactory
	currentAlgo string
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - factory: The source of available strategies.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(factory combinatorics.CalculatorFactory, config REPLConfig) *REPL {
	if config.Timeout <= 0 {
		config.Timeout = defaultREPLTimeout
	}
	currentAlgo := config.DefaultAlgo
	if _, err := factory.Get(currentAlgo); err != nil {
		currentAlgo = "multiplicative"
		if _, err := factory.Get(currentAlgo); err != nil {
			if names := factory.List(); len(names) > 0 {
				currentAlgo = names[0]
			}
		}
	}

	return &REPL{
		config:      config,
		factory:     factory,
		currentAlgo: currentAlgo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It reads and processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"combi> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(input) != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !r.processCommand(input) {
			return
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, ui.RenderBanner("combicalc - Interactive Mode",
		"Binomial coefficients and fraction reduction"))
	fmt.Fprintln(r.out)
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %schoose <n> <r>%s  - Calculate C(n, r) with current algorithm\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sreduce <a> <b>%s  - Reduce the fraction a/b\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %salgo <name>%s     - Change algorithm (%s)\n", ui.ColorYellow(), ui.ColorReset(), r.getAlgoList())
	fmt.Fprintf(r.out, "  %scompare <n> <r>%s - Compare all algorithms for C(n, r)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s            - List available algorithms\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shex%s             - Toggle hexadecimal display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s          - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s            - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s     - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// getAlgoList returns a comma-separated list of available algorithms.
func (r *REPL) getAlgoList() string {
	return strings.Join(r.factory.List(), ", ")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "choose", "c", "calc":
		r.cmdChoose(args)
	case "reduce", "red":
		r.cmdReduce(args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "compare", "cmp":
		r.cmdCompare(args)
	case "list", "ls":
		r.cmdList()
	case "hex":
		r.cmdHex()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Two bare numbers are a shortcut for choose.
		if len(parts) == 2 {
			if n, rr, err := parseBinomialArgs(parts); err == nil {
				r.calculate(n, rr)
				return true
			}
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}

	return true
}

// parseBinomialArgs parses the "<n> <r>" argument pair.
func parseBinomialArgs(args []string) (int64, int64, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("expected two arguments")
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value: %s", args[0])
	}
	rr, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value: %s", args[1])
	}
	return n, rr, nil
}

// cmdChoose handles the "choose" command.
func (r *REPL) cmdChoose(args []string) {
	n, rr, err := parseBinomialArgs(args)
	if err != nil {
		fmt.Fprintf(r.out, "%sUsage: choose <n> <r> (%v)%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	r.calculate(n, rr)
}

// calculate computes C(n, r) with the current algorithm.
func (r *REPL) calculate(n, rr int64) {
	calc, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		fmt.Fprintf(r.out, "%sAlgorithm not found: %s%s\n", ui.ColorRed(), r.currentAlgo, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	label := BinomialLabel(n, rr)
	fmt.Fprintf(r.out, "Calculating %s%s%s with %s%s%s...\n",
		ui.ColorMagenta(), label, ui.ColorReset(),
		ui.ColorCyan(), calc.Name(), ui.ColorReset())

	progressChan := make(chan combinatorics.ProgressUpdate, 10)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	start := time.Now()
	result, err := calc.Calculate(ctx, progressChan, 0, n, rr)
	duration := time.Since(start)
	close(progressChan)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time:   %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(r.out, "  Bits:   %s%d%s\n", ui.ColorCyan(), result.BitLen(), ui.ColorReset())

	resultStr := result.String()
	numDigits := len(resultStr)
	fmt.Fprintf(r.out, "  Digits: %s%d%s\n", ui.ColorCyan(), numDigits, ui.ColorReset())

	switch {
	case r.config.HexOutput:
		hex := result.Text(16)
		if len(hex) > 2*HexDisplayEdges {
			hex = hex[:HexDisplayEdges] + "..." + hex[len(hex)-HexDisplayEdges:]
		}
		fmt.Fprintf(r.out, "  %s = %s0x%s%s\n", label, ui.ColorGreen(), hex, ui.ColorReset())
	case numDigits > TruncationLimit:
		fmt.Fprintf(r.out, "  %s = %s%s...%s%s (truncated)\n",
			label, ui.ColorGreen(), resultStr[:DisplayEdges], resultStr[numDigits-DisplayEdges:], ui.ColorReset())
	default:
		fmt.Fprintf(r.out, "  %s = %s%s%s\n", label, ui.ColorGreen(), resultStr, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdReduce handles the "reduce" command.
func (r *REPL) cmdReduce(args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: reduce <numerator> <denominator>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	num, okNum := new(big.Int).SetString(args[0], 10)
	den, okDen := new(big.Int).SetString(args[1], 10)
	if !okNum || !okDen {
		fmt.Fprintf(r.out, "%sInvalid fraction: %s/%s%s\n", ui.ColorRed(), args[0], args[1], ui.ColorReset())
		return
	}

	start := time.Now()
	reducedNum, reducedDen, err := combinatorics.ReduceFractionBig(num, den)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplayFraction(num, den, reducedNum, reducedDen, time.Since(start), false, r.out)
}

// cmdAlgo handles the "algo" command.
func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", r.getAlgoList())
		return
	}

	name := strings.ToLower(args[0])
	calc, err := r.factory.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", r.getAlgoList())
		return
	}

	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), calc.Name(), ui.ColorReset())
}

// cmdCompare handles the "compare" command.
func (r *REPL) cmdCompare(args []string) {
	n, rr, err := parseBinomialArgs(args)
	if err != nil {
		fmt.Fprintf(r.out, "%sUsage: compare <n> <r> (%v)%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	fmt.Fprintf(r.out, "\n%sComparison for %s:%s\n", ui.ColorBold(), BinomialLabel(n, rr), ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	// Both follow the factory's sorted order.
	names := r.factory.List()
	calculators := orchestration.GetCalculatorsToRun("all", r.factory)
	results := orchestration.ExecuteCalculations(ctx, calculators, n, rr, orchestration.NullProgressReporter{}, io.Discard)

	var reference *big.Int
	for i, res := range results {
		name := names[i]
		if res.Err != nil {
			fmt.Fprintf(r.out, "  %s%-16s%s: %sError - %v%s\n",
				ui.ColorYellow(), name, ui.ColorReset(), ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		if reference == nil {
			reference = res.Result
		}
		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if res.Result.Cmp(reference) != 0 {
			status = ui.ColorRed() + "✗ INCONSISTENT" + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-16s%s: %s%12s%s %s\n",
			ui.ColorYellow(), name, ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(res.Duration), ui.ColorReset(),
			status)
	}

	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable algorithms:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.factory.List() {
		calc, err := r.factory.Get(name)
		if err != nil {
			continue
		}
		marker := "  "
		if name == r.currentAlgo {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-16s%s - %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), calc.Name())
	}
	fmt.Fprintln(r.out)
}

// cmdHex toggles hexadecimal output mode.
func (r *REPL) cmdHex() {
	r.config.HexOutput = !r.config.HexOutput
	status := "disabled"
	if r.config.HexOutput {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Hexadecimal display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Algorithm:      %s%s%s\n", ui.ColorCyan(), r.currentAlgo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:        %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	hexStatus := "no"
	if r.config.HexOutput {
		hexStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Hexadecimal:    %s%s%s\n", ui.ColorCyan(), hexStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}
