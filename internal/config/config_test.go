package config

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/combicalc/internal/errors"
)

var testAlgos = []string{"multiplicative", "pascal", "recursive", "stdlib"}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("combicalc", nil, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Operation != OperationBinomial {
		t.Errorf("Operation = %q, want %q", cfg.Operation, OperationBinomial)
	}
	if cfg.N != DefaultN || cfg.R != DefaultR {
		t.Errorf("(N, R) = (%d, %d), want (%d, %d)", cfg.N, cfg.R, DefaultN, DefaultR)
	}
	if cfg.Algo != DefaultAlgo {
		t.Errorf("Algo = %q, want %q", cfg.Algo, DefaultAlgo)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{
		"-n", "100", "-r", "50", "-algo", "Pascal", "-timeout", "5s",
		"-c", "-d", "-o", "out.txt", "-metrics-file", "m.prom", "-no-color",
	}
	cfg, err := ParseConfig("combicalc", args, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.N != 100 || cfg.R != 50 {
		t.Errorf("(N, R) = (%d, %d), want (100, 50)", cfg.N, cfg.R)
	}
	if cfg.Algo != "pascal" {
		t.Errorf("Algo = %q, want lower-cased pascal", cfg.Algo)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", cfg.Timeout)
	}
	if !cfg.ShowValue || !cfg.Details || !cfg.NoColor {
		t.Errorf("boolean flags not applied: %+v", cfg)
	}
	if cfg.OutputFile != "out.txt" || cfg.MetricsFile != "m.prom" {
		t.Errorf("file flags not applied: %+v", cfg)
	}
}

func TestParseConfig_Reduce(t *testing.T) {
	args := []string{"-op", "reduce", "-num", "-9", "-den", "123456789012345678901234567890"}
	cfg, err := ParseConfig("combicalc", args, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	num, den, err := cfg.Fraction()
	if err != nil {
		t.Fatalf("Fraction: %v", err)
	}
	if num.String() != "-9" || den.String() != "123456789012345678901234567890" {
		t.Errorf("Fraction() = %s/%s", num, den)
	}
}

func TestParseConfig_Help(t *testing.T) {
	var buf strings.Builder
	_, err := ParseConfig("combicalc", []string{"-h"}, &buf, testAlgos)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(buf.String(), "Usage: combicalc") || !strings.Contains(buf.String(), EnvPrefix) {
		t.Errorf("usage output is incomplete:\n%s", buf.String())
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantConfig bool
		wantInput  bool
	}{
		{"unknown flag", []string{"-bogus"}, false, false},
		{"bad int", []string{"-n", "ten"}, false, false},
		{"unknown algo", []string{"-algo", "fft"}, true, false},
		{"zero timeout", []string{"-timeout", "0s"}, true, false},
		{"unknown operation", []string{"-op", "sqrt"}, true, false},
		{"quiet and verbose", []string{"-q", "-v"}, true, false},
		{"stray argument", []string{"10"}, true, false},
		{"bad completion shell", []string{"-completion", "powershell"}, true, false},
		{"missing numerator", []string{"-op", "reduce", "-den", "4"}, false, true},
		{"non-integer denominator", []string{"-op", "reduce", "-num", "1", "-den", "1.5"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("combicalc", tt.args, io.Discard, testAlgos)
			if err == nil {
				t.Fatal("expected an error")
			}
			var cfgErr apperrors.ConfigError
			if got := errors.As(err, &cfgErr); got != tt.wantConfig {
				t.Errorf("ConfigError = %v, want %v (err: %v)", got, tt.wantConfig, err)
			}
			if got := apperrors.IsInputError(err); got != tt.wantInput {
				t.Errorf("IsInputError = %v, want %v (err: %v)", got, tt.wantInput, err)
			}
		})
	}
}

func TestValidate_CompletionSkipsOtherChecks(t *testing.T) {
	t.Parallel()
	cfg := AppConfig{Completion: "zsh", Operation: "bogus"}
	if err := cfg.Validate(testAlgos); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_InteractiveReduceNeedsNoOperands(t *testing.T) {
	t.Parallel()
	cfg := AppConfig{Operation: OperationReduce, Interactive: true, Timeout: time.Second, Algo: "all"}
	if err := cfg.Validate(testAlgos); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
