package output

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/opensvc/motd/util/render/palette"
)

type (
	kv struct {
		k string
		v interface{}
	}
)

func flatten(value any, lkey *bytes.Buffer, flattened *map[string]string) {
	// Use a type switch, which is much faster than reflection.
	switch v := value.(type) {
	case nil:
		if lkey.Len() > 0 {
			(*flattened)[lkey.String()] = "null"
		}
	case map[string]any:
		// Keep track of the builder's length to backtrack efficiently.
		originalLen := lkey.Len()
		for key, val := range v {
			// Write the key separator.
			if lkey.Len() > 0 {
				lkey.WriteByte('.')
			}

			// Handle special characters in the key.
			if strings.ContainsAny(key, ".#$/") || hasDigitPrefix(key) {
				lkey.WriteString(`"`)
				lkey.WriteString(key)
				lkey.WriteString(`"`)
			} else {
				lkey.WriteString(key)
			}

			flatten(val, lkey, flattened)

			// Reset the builder to its original state for the next key in the map.
			lkey.Truncate(originalLen)
		}
	case []any:
		originalLen := lkey.Len()
		for i, val := range v {
			// Append the slice index part, e.g., "[0]"
			lkey.WriteByte('[')
			lkey.WriteString(strconv.Itoa(i))
			lkey.WriteByte(']')

			flatten(val, lkey, flattened)

			// Reset builder for the next iteration.
			lkey.Truncate(originalLen)
		}
	// Add fast paths for primitive types to avoid json.Marshal.
	case string:
		(*flattened)[lkey.String()] = `"` + v + `"`
	case bool:
		(*flattened)[lkey.String()] = strconv.FormatBool(v)
	case float64:
		(*flattened)[lkey.String()] = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		(*flattened)[lkey.String()] = strconv.Itoa(v)
	default:
		// Fallback for complex types not handled above.
		b, err := json.Marshal(value)
		if err == nil { // Only assign if marshaling succeeds.
			(*flattened)[lkey.String()] = string(b)
		}
	}
}

// Flatten accepts a nested struct and returns a flat struct with key like a."b/c".d[0].e
func Flatten(value any) map[string]string {
	flattened := make(map[string]string)
	var b bytes.Buffer
	flatten(value, &b, &flattened)
	return flattened
}

// SprintFlat accepts a JSON formatted byte array and returns the sorted
// "key = val" buffer
func SprintFlat(b []byte) string {
	var buf bytes.Buffer
	for _, e := range sprintFlatData(b) {
		buf.WriteString(e.k)
		buf.WriteString(" = ")
		buf.WriteString(fmt.Sprint(e.v))
		buf.WriteString("\n")
	}
	return buf.String()
}

// SprintFlatColor is SprintFlat with the keys colorized.
func SprintFlatColor(b []byte, colorize *palette.ColorPaletteFunc) string {
	if colorize == nil {
		colorize = palette.DefaultFuncPalette()
	}
	var buf bytes.Buffer
	for _, e := range sprintFlatData(b) {
		buf.WriteString(colorize.Primary(e.k))
		buf.WriteString(colorize.Primary(" = "))
		buf.WriteString(fmt.Sprintln(e.v))
	}
	return buf.String()
}

func sprintFlatData(b []byte) []kv {
	var data interface{}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil
	}
	flattened := Flatten(data)
	l := make([]kv, 0, len(flattened))
	for k, v := range flattened {
		l = append(l, kv{k: k, v: v})
	}
	slices.SortFunc(l, func(i, j kv) int {
		return strings.Compare(i.k, j.k)
	})
	return l
}

func hasDigitPrefix(s string) bool {
	if s == "" {
		return false
	}
	var r = ' '
	for _, r = range s {
		break
	}
	return r >= '0' && r <= '9'
}
