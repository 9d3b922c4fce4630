package app

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"-version"}, true},
		{[]string{"--version"}, true},
		{[]string{"-n", "10", "-V"}, true},
		{[]string{"-n", "10"}, false},
		{[]string{"--", "-version"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	out := buf.String()
	for _, want := range []string{"combicalc " + Version, "commit:", runtime.Version()} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}
