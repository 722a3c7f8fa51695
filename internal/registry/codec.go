package registry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// tomlRegistry is the on-disk shape of the TOML encoding: TOML has no
// top-level arrays, so the record list lives under a named table array.
type tomlRegistry struct {
	Dynamics []Record `toml:"dynamics"`
}

// Decode parses registry file contents into a record list.
//
// The decode is deliberately tolerant: empty or whitespace-only input is an
// empty registry, a document that parses but is not a record list is an
// empty registry, and a document that fails to parse at all is an empty
// registry with a warning. Callers treat "missing", "empty", and "broken"
// registries uniformly and never abort on decode.
func Decode(data []byte, f Format) ([]Record, []string) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	switch f {
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	case FormatJSON:
		return decodeJSON(data)
	}
	return nil, []string{fmt.Sprintf("unsupported registry format %q", f)}
}

// Encode serializes a record list in the given format. A nil list encodes
// as an empty registry, never as a null document.
func Encode(records []Record, f Format) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	switch f {
	case FormatYAML:
		return yaml.Marshal(records)
	case FormatTOML:
		return toml.Marshal(tomlRegistry{Dynamics: records})
	case FormatJSON:
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported registry format %q", f)
}

func decodeYAML(data []byte) ([]Record, []string) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, []string{fmt.Sprintf("registry is not valid YAML, treating as empty: %v", err)}
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		// Parsed fine but isn't a record list.
		return nil, nil
	}

	var records []Record
	if err := root.Decode(&records); err != nil {
		return nil, []string{fmt.Sprintf("registry entries are malformed, treating as empty: %v", err)}
	}
	return records, nil
}

func decodeTOML(data []byte) ([]Record, []string) {
	var doc tomlRegistry
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, []string{fmt.Sprintf("registry is not valid TOML, treating as empty: %v", err)}
	}
	// A missing dynamics table is an empty registry.
	return doc.Dynamics, nil
}

func decodeJSON(data []byte) ([]Record, []string) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, []string{fmt.Sprintf("registry is not valid JSON, treating as empty: %v", err)}
	}
	if _, ok := raw.([]any); !ok {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, []string{fmt.Sprintf("registry entries are malformed, treating as empty: %v", err)}
	}
	return records, nil
}
