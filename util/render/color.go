// Package render holds the terminal rendering settings shared by the
// output formatters.
package render

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetColor configures the global colorization from a yes|no|auto mode.
// Unknown modes are treated as auto.
func SetColor(mode string) {
	switch mode {
	case "yes":
		color.NoColor = false
	case "no":
		color.NoColor = true
	default:
		color.NoColor = os.Getenv("TERM") == "dumb" || !isTerminal()
	}
}
