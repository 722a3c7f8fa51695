package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/technative-website/quiqr-scaffold-block/internal/registry"
)

func accept(string) (bool, error)  { return true, nil }
func decline(string) (bool, error) { return false, nil }

func TestPartialDefinition(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		data, err := PartialDefinition(registry.FormatJSON)
		if err != nil {
			t.Fatalf("PartialDefinition() error: %v", err)
		}
		want := `{
  "fields": [
    {
      "key": "",
      "title": "",
      "type": ""
    }
  ]
}
`
		if string(data) != want {
			t.Errorf("json definition = %q, want %q", data, want)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := PartialDefinition(registry.FormatYAML)
		if err != nil {
			t.Fatalf("PartialDefinition() error: %v", err)
		}
		out := string(data)
		if !strings.Contains(out, "fields:") {
			t.Errorf("yaml definition missing fields list:\n%s", out)
		}
		for _, field := range []string{"key:", "title:", "type:"} {
			if !strings.Contains(out, field) {
				t.Errorf("yaml definition missing %s:\n%s", field, out)
			}
		}
	})

	t.Run("toml", func(t *testing.T) {
		data, err := PartialDefinition(registry.FormatTOML)
		if err != nil {
			t.Fatalf("PartialDefinition() error: %v", err)
		}
		if !strings.Contains(string(data), "[[fields]]") {
			t.Errorf("toml definition missing fields table:\n%s", data)
		}
	})
}

func TestDashedAndClassName(t *testing.T) {
	tests := []struct {
		identifier string
		dashed     string
		class      string
	}{
		{"hero_banner", "hero-banner", "hero-banner-block"},
		{"footer", "footer", "footer-block"},
		{"a_b_c", "a-b-c", "a-b-c-block"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			if got := Dashed(tt.identifier); got != tt.dashed {
				t.Errorf("Dashed() = %q, want %q", got, tt.dashed)
			}
			if got := ClassName(tt.identifier); got != tt.class {
				t.Errorf("ClassName() = %q, want %q", got, tt.class)
			}
		})
	}
}

func TestTemplateHTML(t *testing.T) {
	html, err := TemplateHTML("hero_banner")
	if err != nil {
		t.Fatalf("TemplateHTML() error: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, `<div class="hero-banner-block">`) {
		t.Errorf("template missing wrapping div:\n%s", out)
	}
	if !strings.Contains(out, "<!--") {
		t.Errorf("template missing placeholder comment:\n%s", out)
	}
	if !strings.HasSuffix(out, "</div>\n") {
		t.Errorf("template not closed:\n%s", out)
	}
}

func TestWriteFile(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "themes", "demo", "layouts", "block.html")

		written, err := WriteFile(path, []byte("content"), accept)
		if err != nil {
			t.Fatalf("WriteFile() error: %v", err)
		}
		if !written {
			t.Error("written = false, want true")
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading back: %v", err)
		}
		if string(data) != "content" {
			t.Errorf("content = %q, want %q", data, "content")
		}
	})

	t.Run("overwrite accepted replaces content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "block.html")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}

		written, err := WriteFile(path, []byte("new"), accept)
		if err != nil {
			t.Fatalf("WriteFile() error: %v", err)
		}
		if !written {
			t.Error("written = false, want true")
		}

		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("content = %q, want %q", data, "new")
		}
	})

	t.Run("overwrite declined leaves file untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "block.html")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}

		written, err := WriteFile(path, []byte("new"), decline)
		if err != nil {
			t.Fatalf("WriteFile() error: %v", err)
		}
		if written {
			t.Error("written = true, want false")
		}

		data, _ := os.ReadFile(path)
		if string(data) != "old" {
			t.Errorf("content = %q, want %q", data, "old")
		}
	})

	t.Run("no confirmation for new file", func(t *testing.T) {
		asked := false
		confirm := func(string) (bool, error) {
			asked = true
			return true, nil
		}

		path := filepath.Join(t.TempDir(), "block.html")
		if _, err := WriteFile(path, []byte("content"), confirm); err != nil {
			t.Fatalf("WriteFile() error: %v", err)
		}
		if asked {
			t.Error("confirmation asked for a file that did not exist")
		}
	})
}
