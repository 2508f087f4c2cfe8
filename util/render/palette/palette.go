package palette

import "github.com/fatih/color"

// The color names as string, usable in configuration files.
const (
	DefaultPrimary   = "yellow"
	DefaultSecondary = "hiblack"
	DefaultWarning   = "hiyellow"
)

type (
	// StringPalette declares the color (as string) to use for each role.
	StringPalette struct {
		Primary   string `mapstructure:"primary"`
		Secondary string `mapstructure:"secondary"`
		Warning   string `mapstructure:"warning"`
	}

	// ColorPalette declares the color (as color.Attribute) to use for each role.
	ColorPalette struct {
		Primary   color.Attribute
		Secondary color.Attribute
		Warning   color.Attribute
		Bold      color.Attribute
	}

	// ColorPaletteFunc exposes a colorizing function for each role.
	ColorPaletteFunc struct {
		Primary   func(a ...interface{}) string
		Secondary func(a ...interface{}) string
		Warning   func(a ...interface{}) string
		Bold      func(a ...interface{}) string
	}
)

func toFgColor(s string) color.Attribute {
	switch s {
	case "black":
		return color.FgBlack
	case "red":
		return color.FgRed
	case "green":
		return color.FgGreen
	case "yellow":
		return color.FgYellow
	case "blue":
		return color.FgBlue
	case "magenta":
		return color.FgMagenta
	case "cyan":
		return color.FgCyan
	case "white":
		return color.FgWhite
	case "hiblack":
		return color.FgHiBlack
	case "hired":
		return color.FgHiRed
	case "higreen":
		return color.FgHiGreen
	case "hiyellow":
		return color.FgHiYellow
	case "hiblue":
		return color.FgHiBlue
	case "himagenta":
		return color.FgHiMagenta
	case "hicyan":
		return color.FgHiCyan
	case "hiwhite":
		return color.FgHiWhite
	default:
		return color.Reset
	}
}

// DefaultPalette returns the string palette used when the configuration
// does not override a role.
func DefaultPalette() StringPalette {
	return StringPalette{
		Primary:   DefaultPrimary,
		Secondary: DefaultSecondary,
		Warning:   DefaultWarning,
	}
}

// New returns a color palette from a string color palette (as read by viper).
// Empty roles get their default color.
func New(m StringPalette) ColorPalette {
	d := DefaultPalette()
	pick := func(s, deflt string) color.Attribute {
		if s == "" {
			s = deflt
		}
		return toFgColor(s)
	}
	return ColorPalette{
		Primary:   pick(m.Primary, d.Primary),
		Secondary: pick(m.Secondary, d.Secondary),
		Warning:   pick(m.Warning, d.Warning),
		Bold:      color.Bold,
	}
}

// Funcs returns the colorizing functions of the palette. The functions
// honor color.NoColor at call time.
func (p ColorPalette) Funcs() *ColorPaletteFunc {
	return &ColorPaletteFunc{
		Primary:   color.New(p.Primary).SprintFunc(),
		Secondary: color.New(p.Secondary).SprintFunc(),
		Warning:   color.New(p.Warning).SprintFunc(),
		Bold:      color.New(p.Bold).SprintFunc(),
	}
}

// DefaultFuncPalette returns the colorizing functions of the default palette.
func DefaultFuncPalette() *ColorPaletteFunc {
	return New(DefaultPalette()).Funcs()
}
