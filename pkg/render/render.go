// Package render drives a Graphviz layout engine to turn a written DOT
// document into a final image or document format.
//
// The engine is normally an external process (dot, neato, ...), invoked as
//
//	<engine> -T<format> -o <output> <input>
//
// Its result, including a non-zero exit status, is returned to the caller.
// When the external binary is not installed, SVG, PNG, and JPG output falls
// back to in-process rendering via goccy/go-graphviz.
package render

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/modreport/modreport/pkg/errors"
)

// DefaultEngine is the layout engine used when none is configured.
const DefaultEngine = "dot"

// ValidFormats is the set of formats a layout engine can produce.
var ValidFormats = map[string]bool{
	"html": true,
	"ps":   true,
	"pdf":  true,
	"png":  true,
	"gif":  true,
	"jpg":  true,
	"json": true,
	"svg":  true,
}

// ValidateFormat checks that the requested render format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid render format: %s (must be one of html, ps, pdf, png, gif, jpg, json, svg)", format)
	}
	return nil
}

// OutputPath derives the rendered artifact path from the DOT input path by
// replacing its extension with the render format.
func OutputPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// Engine invokes a Graphviz layout engine.
type Engine struct {
	// Command is the layout engine binary. Empty means [DefaultEngine].
	Command string
}

// New returns an engine for the given layout command. An empty command
// selects [DefaultEngine].
func New(command string) Engine {
	if command == "" {
		command = DefaultEngine
	}
	return Engine{Command: command}
}

// Render lays out the DOT document at input and writes the result next to
// it, with the format as extension. It returns the path of the rendered
// artifact.
//
// When the engine binary is not on PATH and the format supports it, the
// document is rendered in-process instead.
func (e Engine) Render(ctx context.Context, input, format string) (string, error) {
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	output := OutputPath(input, format)

	if _, err := exec.LookPath(e.Command); err != nil {
		if err := renderInProcess(ctx, input, output, format); err != nil {
			return "", err
		}
		return output, nil
	}

	cmd := exec.CommandContext(ctx, e.Command, "-T"+format, "-o", output, input)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", errors.Wrap(errors.ErrCodeRenderFailed, err,
			"%s -T%s failed: %s", e.Command, format, strings.TrimSpace(string(out)))
	}
	return output, nil
}
