// Package motdcmd implements the motd commands. The cobra wiring lives in
// the motd package.
package motdcmd

import (
	"io"
	"os"

	"github.com/opensvc/motd/util/render/palette"
)

type (
	// OptsGlobal are the options shared by all commands.
	OptsGlobal struct {
		Color  string
		Output string
		Quiet  bool
		Debug  bool

		// Palette colorizes the human renderings. nil selects the default
		// palette.
		Palette *palette.ColorPaletteFunc

		// Stdout and Stderr default to the process standard streams.
		Stdout io.Writer
		Stderr io.Writer
	}
)

func (t OptsGlobal) stdout() io.Writer {
	if t.Stdout == nil {
		return os.Stdout
	}
	return t.Stdout
}

func (t OptsGlobal) stderr() io.Writer {
	if t.Stderr == nil {
		return os.Stderr
	}
	return t.Stderr
}

func (t OptsGlobal) palette() *palette.ColorPaletteFunc {
	if t.Palette == nil {
		return palette.DefaultFuncPalette()
	}
	return t.Palette
}
