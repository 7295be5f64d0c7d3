package render

import (
	"bytes"
	"context"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/modreport/modreport/pkg/errors"
)

// inProcessFormats maps render formats to the formats the embedded Graphviz
// supports.
var inProcessFormats = map[string]graphviz.Format{
	"svg": graphviz.SVG,
	"png": graphviz.PNG,
	"jpg": graphviz.JPG,
}

// renderInProcess lays out the DOT document with the embedded Graphviz and
// writes the result to output. Formats the embedded engine cannot produce
// are reported as render failures naming the missing external binary.
func renderInProcess(ctx context.Context, input, output, format string) error {
	target, ok := inProcessFormats[format]
	if !ok {
		return errors.New(errors.ErrCodeRenderFailed,
			"layout engine not installed and %s output is not supported in-process", format)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read %s", input)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT %s", input)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, target, &buf); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}

	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", output)
	}
	return nil
}
