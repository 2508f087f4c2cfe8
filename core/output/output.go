package output

import (
	"bytes"
	"encoding/json"
)

// Type encodes as an integer one of the supported output formats
// (human, json, flat, yaml, table)
type Type int

const (
	// Human encodes the prefered human friendly output format
	Human Type = iota
	// JSON encodes the json output format
	JSON
	// Flat encodes the flattened json output format (a.b.c = d, a[0] = b)
	Flat
	// YAML encodes the yaml output format
	YAML
	// Table encodes the simple tabular output format
	Table
)

var toString = map[Type]string{
	Human: "human",
	JSON:  "json",
	Flat:  "flat",
	YAML:  "yaml",
	Table: "table",
}

var toID = map[string]Type{
	"human": Human,
	"auto":  Human,
	"json":  JSON,
	"flat":  Flat,
	"yaml":  YAML,
	"table": Table,
}

func (t Type) String() string {
	return toString[t]
}

// New returns the integer value of the output format
func New(s string) Type {
	return toID[s]
}

// IsValid returns true if s names a supported output format.
func IsValid(s string) bool {
	_, ok := toID[s]
	return ok
}

// Names returns the supported output format names.
func Names() []string {
	return []string{"human", "json", "flat", "yaml", "table"}
}

// MarshalJSON marshals the enum as a quoted json string
func (t Type) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(toString[t])
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// UnmarshalJSON unmashals a quoted json string to the enum value
func (t *Type) UnmarshalJSON(b []byte) error {
	var j string
	err := json.Unmarshal(b, &j)
	if err != nil {
		return err
	}
	// Unknown strings resolve to the zero value, Human.
	*t = toID[j]
	return nil
}
