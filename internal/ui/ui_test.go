package ui

import (
	"os"
	"strings"
	"testing"
)

func withTheme(t *testing.T, theme Theme) {
	t.Helper()
	previous := GetCurrentTheme()
	SetCurrentTheme(theme)
	t.Cleanup(func() { SetCurrentTheme(previous) })
}

func TestSetTheme(t *testing.T) {
	withTheme(t, DarkTheme)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.name)
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestInitTheme(t *testing.T) {
	withTheme(t, DarkTheme)

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if ColorsEnabled() {
			t.Error("expected colors to be disabled")
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if ColorsEnabled() {
			t.Error("expected colors to be disabled by NO_COLOR")
		}
	})

	t.Run("default is dark", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		InitTheme(false)
		if GetCurrentTheme().Name != "dark" {
			t.Errorf("got theme %q, want dark", GetCurrentTheme().Name)
		}
	})
}

func TestColorFunctions(t *testing.T) {
	t.Run("no color theme", func(t *testing.T) {
		withTheme(t, NoColorTheme)
		for _, fn := range []func() string{
			ColorReset, ColorRed, ColorGreen, ColorYellow, ColorBlue,
			ColorMagenta, ColorCyan, ColorBold, ColorUnderline,
		} {
			if got := fn(); got != "" {
				t.Errorf("expected empty escape code, got %q", got)
			}
		}
	})

	t.Run("dark theme", func(t *testing.T) {
		withTheme(t, DarkTheme)
		if ColorRed() != DarkTheme.Error {
			t.Errorf("ColorRed() = %q, want %q", ColorRed(), DarkTheme.Error)
		}
		if ColorReset() != "\033[0m" {
			t.Errorf("ColorReset() = %q", ColorReset())
		}
	})
}

func TestRenderBanner(t *testing.T) {
	withTheme(t, NoColorTheme)

	out := RenderBanner("combicalc", "type 'help'")
	if !strings.Contains(out, "combicalc") || !strings.Contains(out, "type 'help'") {
		t.Errorf("banner is missing its content:\n%s", out)
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("banner should have a rounded border:\n%s", out)
	}
	if strings.Count(out, "\n") < 3 {
		t.Errorf("expected a multi-line box, got:\n%s", out)
	}
}
