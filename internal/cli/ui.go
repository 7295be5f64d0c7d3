package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")
	colorDim   = lipgloss.Color("240")

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	stylePath        = lipgloss.NewStyle().Foreground(colorDim)
)

const iconSuccess = "✓"

// printGenerated reports a written artifact on stderr, keeping stdout clean
// for reports streamed there.
func printGenerated(path string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleIconSuccess.Render(iconSuccess), stylePath.Render(path))
}
