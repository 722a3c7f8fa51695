// Package scaffold generates the boilerplate files for a content block: the
// partial definition under quiqr/model/partials and the HTML template under
// the theme's content_blocks layout directory.
package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pelletier/go-toml/v2"
	"github.com/technative-website/quiqr-scaffold-block/internal/registry"
	"go.yaml.in/yaml/v3"
)

// FieldSpec is one field stub in a partial definition. Fields start empty;
// the site author fills them in after scaffolding.
type FieldSpec struct {
	Key   string `yaml:"key" toml:"key" json:"key"`
	Title string `yaml:"title" toml:"title" json:"title"`
	Type  string `yaml:"type" toml:"type" json:"type"`
}

// partialDefinition is the on-disk shape of a content-definition file.
type partialDefinition struct {
	Fields []FieldSpec `yaml:"fields" toml:"fields" json:"fields"`
}

// htmlTemplate is the generated content-block template. The class name is
// the dashed identifier so theme CSS can target the block.
var htmlTemplate = template.Must(template.New("block").Parse(
	`<div class="{{.ClassName}}">
  <!-- {{.Identifier}} content goes here -->
</div>
`))

// PartialDefinition renders the content-definition file for a block in the
// given format: a fields list with a single empty field stub.
func PartialDefinition(f registry.Format) ([]byte, error) {
	def := partialDefinition{
		Fields: []FieldSpec{{}},
	}
	return encodeAs(def, f)
}

func encodeAs(def partialDefinition, f registry.Format) ([]byte, error) {
	switch f {
	case registry.FormatYAML:
		return yaml.Marshal(def)
	case registry.FormatTOML:
		return toml.Marshal(def)
	case registry.FormatJSON:
		out, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// ClassName derives the CSS class for a block identifier: underscores become
// dashes, with a -block suffix.
func ClassName(identifier string) string {
	return Dashed(identifier) + "-block"
}

// Dashed converts a block identifier to its dashed form used for file and
// class names.
func Dashed(identifier string) string {
	return strings.ReplaceAll(identifier, "_", "-")
}

// TemplateHTML renders the HTML template for a block identifier.
func TemplateHTML(identifier string) ([]byte, error) {
	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, struct {
		ClassName  string
		Identifier string
	}{
		ClassName:  ClassName(identifier),
		Identifier: identifier,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering block template: %w", err)
	}
	return buf.Bytes(), nil
}

// ConfirmFunc asks the user a yes/no question before a file is overwritten.
type ConfirmFunc func(question string) (bool, error)

// WriteFile writes content to path, creating parent directories as needed.
// An existing file triggers the overwrite confirmation; declining leaves it
// untouched and returns false. Returns true when the file was written.
func WriteFile(path string, content []byte, confirm ConfirmFunc) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		ok, err := confirm(fmt.Sprintf("File %s already exists. Overwrite it?", path))
		if err != nil {
			return false, fmt.Errorf("confirming overwrite: %w", err)
		}
		if !ok {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
