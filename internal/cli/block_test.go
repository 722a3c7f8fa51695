package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/technative-website/quiqr-scaffold-block/internal/registry"
)

// setHome points HOME at a fresh directory so config and last-run state
// stay inside the test. Call once per test, before the first runCLI.
func setHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

// runCLI executes the root command with scripted stdin and captured output.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	// Flag variables and the viper singleton survive across Execute calls;
	// reset both so one test's state doesn't leak into the next.
	viper.Reset()
	blockFormat = ""
	blockProject = "."
	doctorProject = "."
	versionShort = false
	versionJSON = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBlockScaffoldsEmptyProject(t *testing.T) {
	setHome(t)
	project := t.TempDir()

	// Empty line accepts registry creation; "mytheme" names the new theme.
	stdout, _, err := runCLI(t, "\nmytheme\n", "hero_banner", "-t", "json", "--project", project)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	partialPath := filepath.Join(project, "quiqr", "model", "partials", "hero_banner.json")
	data, err := os.ReadFile(partialPath)
	if err != nil {
		t.Fatalf("partial definition not written: %v", err)
	}
	if !strings.Contains(string(data), `"fields"`) {
		t.Errorf("partial definition missing fields list:\n%s", data)
	}

	regPath := filepath.Join(project, "quiqr", "model", "includes", "dynamics.json")
	regData, err := os.ReadFile(regPath)
	if err != nil {
		t.Fatalf("registry not written: %v", err)
	}
	records, warnings := registry.Decode(regData, registry.FormatJSON)
	if len(warnings) != 0 {
		t.Fatalf("registry warnings: %v", warnings)
	}
	if len(records) != 1 {
		t.Fatalf("registry has %d records, want 1", len(records))
	}
	want := registry.Record{Key: "dynbxherobanner", MergePartial: "hero_banner", ContentType: "hero_banner"}
	if records[0] != want {
		t.Errorf("record = %+v, want %+v", records[0], want)
	}

	templatePath := filepath.Join(project, "themes", "mytheme",
		"layouts", "partials", "content_blocks", "hero-banner.html")
	html, err := os.ReadFile(templatePath)
	if err != nil {
		t.Fatalf("template not written: %v", err)
	}
	if !strings.Contains(string(html), `<div class="hero-banner-block">`) {
		t.Errorf("template missing block div:\n%s", html)
	}

	if !strings.Contains(stdout, "hero_banner") {
		t.Errorf("summary missing identifier:\n%s", stdout)
	}
}

func TestBlockRejectsInvalidIdentifierArgument(t *testing.T) {
	setHome(t)
	project := t.TempDir()

	_, _, err := runCLI(t, "", "9bad", "--project", project)
	if err == nil {
		t.Fatal("expected validation error for identifier 9bad")
	}
	if !strings.Contains(err.Error(), "invalid block identifier") {
		t.Errorf("error = %v, want identifier validation failure", err)
	}

	if _, statErr := os.Stat(filepath.Join(project, "quiqr")); !os.IsNotExist(statErr) {
		t.Error("files were created despite invalid identifier")
	}
}

func TestBlockPromptsForMissingIdentifier(t *testing.T) {
	setHome(t)
	project := t.TempDir()

	// Invalid identifier first, then a valid one; accept registry creation
	// and name a theme.
	_, stderr, err := runCLI(t, "9bad\nfooter\n\nmytheme\n", "--project", project, "-t", "yaml")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(stderr, "invalid block identifier") {
		t.Errorf("re-prompt message missing:\n%s", stderr)
	}

	if _, err := os.Stat(filepath.Join(project, "quiqr", "model", "partials", "footer.yaml")); err != nil {
		t.Errorf("partial definition not written: %v", err)
	}
}

func TestBlockDeclinedOverwriteLeavesRegistryUntouched(t *testing.T) {
	setHome(t)
	project := t.TempDir()
	includesDir := filepath.Join(project, "quiqr", "model", "includes")
	if err := os.MkdirAll(includesDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(project, "themes", "solo"), 0755); err != nil {
		t.Fatal(err)
	}

	regPath := filepath.Join(includesDir, "dynamics.json")
	original := `[{"key":"dynbxherobanner","_mergePartial":"hero_banner","content_type":"hero_banner"}]`
	if err := os.WriteFile(regPath, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	// Format auto-detects to json. Decline the registry overwrite; the
	// partial and template files are new and need no confirmation.
	stdout, _, err := runCLI(t, "n\n", "hero_banner", "--project", project)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	data, err := os.ReadFile(regPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("registry changed after declined overwrite:\n%s", data)
	}
	if !strings.Contains(stdout, "Skipped registry entry") {
		t.Errorf("skip not reported:\n%s", stdout)
	}
}

func TestBlockReplacesExistingEntryInPlace(t *testing.T) {
	setHome(t)
	project := t.TempDir()
	if err := os.MkdirAll(filepath.Join(project, "themes", "solo"), 0755); err != nil {
		t.Fatal(err)
	}

	// First run installs the entry, second accepts every overwrite.
	if _, _, err := runCLI(t, "\n", "hero_banner", "-t", "toml", "--project", project); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, _, err := runCLI(t, "y\ny\ny\n", "hero_banner", "-t", "toml", "--project", project); err != nil {
		t.Fatalf("second run: %v", err)
	}

	regPath := filepath.Join(project, "quiqr", "model", "includes", "dynamics.toml")
	data, err := os.ReadFile(regPath)
	if err != nil {
		t.Fatal(err)
	}
	records, _ := registry.Decode(data, registry.FormatTOML)
	if len(records) != 1 {
		t.Errorf("registry has %d records after re-run, want 1", len(records))
	}
}

func TestBlockInvalidFormatFlag(t *testing.T) {
	setHome(t)
	_, _, err := runCLI(t, "", "hero_banner", "-t", "xml", "--project", t.TempDir())
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("error = %v, want unsupported format", err)
	}
}

func TestDoctorReportsProjectState(t *testing.T) {
	setHome(t)
	project := t.TempDir()
	if err := os.MkdirAll(filepath.Join(project, "themes", "solo"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCLI(t, "\n", "hero_banner", "-t", "json", "--project", project); err != nil {
		t.Fatalf("scaffolding run: %v", err)
	}

	stdout, _, err := runCLI(t, "", "doctor", "--project", project)
	if err != nil {
		t.Fatalf("doctor error: %v", err)
	}
	for _, want := range []string{"model directory", "dynamics.json", "themes"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("doctor output missing %q:\n%s", want, stdout)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	setHome(t)
	buildVersion = "1.2.3"
	buildCommit = "abcdef"
	buildDate = "2026-01-01"

	stdout, _, err := runCLI(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(stdout) != "1.2.3" {
		t.Errorf("version --short = %q, want 1.2.3", stdout)
	}
}
