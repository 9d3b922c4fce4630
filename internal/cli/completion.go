package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsAlgo    bool     // true if values come from algorithm list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "op", Help: "Operation to run", Values: []string{"binomial", "reduce"}, ValueName: "operation"},
	{Short: "n", Help: "Size of the set", ValueName: "number"},
	{Short: "r", Help: "Size of the subset", ValueName: "number"},
	{Long: "num", Help: "Fraction numerator", ValueName: "integer"},
	{Long: "den", Help: "Fraction denominator", ValueName: "integer"},
	{Long: "algo", Help: "Binomial strategy", IsAlgo: true, ValueName: "algorithm"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "calculate", Short: "c", Help: "Display the computed value"},
	{Long: "verbose", Short: "v", Help: "Display the full value"},
	{Long: "details", Short: "d", Help: "Show digit and bit statistics"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "metrics-file", Help: "Prometheus textfile path", IsFile: true, ValueName: "file"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "no-color", Help: "Disable colors"},
	{Long: "interactive", Help: "Start interactive mode"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - algorithms: List of available algorithm names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// flagPatterns returns the spellings of a flag as typed on the command line.
func flagPatterns(f FlagCompletion) []string {
	var patterns []string
	if f.Long != "" {
		patterns = append(patterns, "--"+f.Long)
	}
	if f.Short != "" {
		patterns = append(patterns, "-"+f.Short)
	}
	return patterns
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, algorithms []string) error {
	var opts []string
	var caseBody strings.Builder
	var filePatterns []string

	for _, f := range flagRegistry {
		patterns := flagPatterns(f)
		opts = append(opts, patterns...)

		var body string
		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, patterns...)
			continue
		case f.IsAlgo:
			body = `COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&caseBody, "        %s)\n            %s\n            return 0\n            ;;\n",
			strings.Join(patterns, "|"), body)
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&caseBody, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	script := fmt.Sprintf(`# Bash completion script for combicalc
# Add this to your ~/.bashrc or ~/.bash_completion

_combicalc_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    algorithms="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _combicalc_completions combicalc
`, strings.Join(opts, " "), strings.Join(algorithms, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, algorithms []string) error {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef combicalc

# Zsh completion script for combicalc
# Add this to your ~/.zshrc or place in $fpath

_combicalc() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_combicalc "$@"
`, strings.Join(algorithms, " "), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, algorithms []string) error {
	lines := []string{
		"# Fish completion script for combicalc",
		"# Add this to ~/.config/fish/completions/combicalc.fish",
		"",
		"# Disable file completion by default",
		"complete -c combicalc -f",
		"",
	}
	algoList := strings.Join(algorithms, " ")
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, algoList))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, algoList string) string {
	parts := []string{"complete -c combicalc"}
	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}
