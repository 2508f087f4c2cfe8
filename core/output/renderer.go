package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/opensvc/motd/util/render"
	"github.com/opensvc/motd/util/render/palette"
)

type (
	// RenderFunc is the protype of human format renderer functions.
	RenderFunc func() string

	// Renderer hosts the renderer options and data, and exposes the rendering
	// method.
	Renderer struct {
		Format        string
		Color         string
		Data          interface{}
		HumanRenderer RenderFunc
		Colorize      *palette.ColorPaletteFunc
	}

	renderer interface {
		Render() string
	}

	// Tabler is implemented by the data supporting the table format.
	Tabler interface {
		TableHeader() []string
		TableRows() [][]string
	}
)

var (
	indent = "    "
)

// Sprint returns the string representation of the data in one of the
// supported format (human, json, flat, yaml, table).
//
// The human format needs a RenderFunc to be passed, or the data to
// implement Render() string.
func (t Renderer) Sprint() (string, error) {
	format := New(t.Format)
	if t.Color != "" {
		render.SetColor(t.Color)
	}
	if t.Colorize == nil {
		t.Colorize = palette.DefaultFuncPalette()
	}
	switch format {
	case Flat:
		b, err := json.Marshal(t.Data)
		if err != nil {
			return "", err
		}
		if color.NoColor {
			return SprintFlat(b), nil
		}
		return SprintFlatColor(b, t.Colorize), nil
	case JSON:
		b, err := json.MarshalIndent(t.Data, "", indent)
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(t.Data); err != nil {
			return "", err
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
		return buf.String(), nil
	case Table:
		data, ok := t.Data.(Tabler)
		if !ok {
			return "", fmt.Errorf("table format is not supported for %T", t.Data)
		}
		var buf bytes.Buffer
		if err := fprintTable(&buf, data); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		if t.HumanRenderer != nil {
			return t.HumanRenderer(), nil
		}
		if r, ok := t.Data.(renderer); ok {
			return r.Render(), nil
		}
		b, err := json.MarshalIndent(t.Data, "", indent)
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	}
}

// Fprint writes the representation of the data in one of the supported
// format to w.
func (t Renderer) Fprint(w io.Writer) error {
	s, err := t.Sprint()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, s)
	return err
}

func fprintTable(w io.Writer, data Tabler) error {
	table := tablewriter.NewWriter(w)
	header := make([]any, 0)
	for _, s := range data.TableHeader() {
		header = append(header, s)
	}
	table.Header(header...)
	for _, row := range data.TableRows() {
		cells := make([]any, len(row))
		for i, s := range row {
			cells[i] = s
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}
