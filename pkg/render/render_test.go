package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modreport/modreport/pkg/errors"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"deps.dot", "pdf", "deps.pdf"},
		{"out/deps.dot", "svg", "out/deps.svg"},
		{"deps", "png", "deps.png"},
		{"archive.tar.dot", "ps", "archive.tar.ps"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.input, tt.format); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"html", "ps", "pdf", "png", "gif", "jpg", "json", "svg"} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", format, err)
		}
	}
	for _, format := range []string{"", "dot", "bmp", "jpeg"} {
		if err := ValidateFormat(format); !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) = %v, want %s", format, err, errors.ErrCodeInvalidFormat)
		}
	}
}

func TestNewDefaultsToDot(t *testing.T) {
	if e := New(""); e.Command != DefaultEngine {
		t.Errorf("Command = %q, want %q", e.Command, DefaultEngine)
	}
	if e := New("neato"); e.Command != "neato" {
		t.Errorf("Command = %q, want neato", e.Command)
	}
}

// writeStubEngine creates a fake layout engine that copies its input file to
// the path given by -o, mimicking "dot -Tpdf -o out in".
func writeStubEngine(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakedot")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderInvokesEngine(t *testing.T) {
	engine := New(writeStubEngine(t, `cp "$4" "$3"`))

	input := filepath.Join(t.TempDir(), "deps.dot")
	if err := os.WriteFile(input, []byte("digraph g {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := engine.Render(t.Context(), input, "pdf")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != OutputPath(input, "pdf") {
		t.Errorf("output path = %q, want %q", out, OutputPath(input, "pdf"))
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("rendered artifact missing: %v", err)
	}
}

func TestRenderSurfacesEngineFailure(t *testing.T) {
	engine := New(writeStubEngine(t, `echo "layout exploded" >&2; exit 3`))

	input := filepath.Join(t.TempDir(), "deps.dot")
	if err := os.WriteFile(input, []byte("digraph g {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := engine.Render(t.Context(), input, "pdf")
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeRenderFailed)
	}
}

func TestRenderRejectsInvalidFormat(t *testing.T) {
	_, err := New("").Render(t.Context(), "deps.dot", "bmp")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestRenderMissingEngineUnsupportedInProcess(t *testing.T) {
	engine := New("modreport-no-such-engine")

	input := filepath.Join(t.TempDir(), "deps.dot")
	if err := os.WriteFile(input, []byte("digraph g {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// ps has no in-process fallback; the failure must name the problem
	// instead of being swallowed.
	_, err := engine.Render(t.Context(), input, "ps")
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeRenderFailed)
	}
}
