package palette

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New(StringPalette{Primary: "hicyan", Warning: "unknown"})
	assert.Equal(t, color.FgHiCyan, p.Primary)
	assert.Equal(t, color.FgHiBlack, p.Secondary, "empty role should get the default")
	assert.Equal(t, color.Reset, p.Warning, "unknown color name should reset")
}

func TestFuncsHonorNoColor(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()

	f := DefaultFuncPalette()
	color.NoColor = true
	assert.Equal(t, "150ms", f.Primary("150ms"))
	color.NoColor = false
	assert.Equal(t, "\x1b[33m150ms\x1b[0m", f.Primary("150ms"))
}
