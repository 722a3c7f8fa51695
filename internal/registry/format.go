package registry

import "fmt"

// Format selects one of the three interchangeable registry encodings.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatTOML, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported format %q: must be yaml, toml, or json", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

func (f Format) String() string {
	return string(f)
}
