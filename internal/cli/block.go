package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/technative-website/quiqr-scaffold-block/internal/config"
	"github.com/technative-website/quiqr-scaffold-block/internal/prompt"
	"github.com/technative-website/quiqr-scaffold-block/internal/registry"
	"github.com/technative-website/quiqr-scaffold-block/internal/scaffold"
	"github.com/technative-website/quiqr-scaffold-block/internal/theme"
)

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var (
	blockFormat  string
	blockProject string
)

func init() {
	rootCmd.Flags().StringVarP(&blockFormat, "type", "t", "", "Registry format: yaml, toml, or json (default: auto-detect)")
	rootCmd.Flags().StringVar(&blockProject, "project", ".", "Quiqr project root")
}

func runBlock(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	p := prompt.New(cmd.InOrStdin(), errOut)

	identifier, err := resolveIdentifier(args, p)
	if err != nil {
		return err
	}

	partialsDir := filepath.Join(blockProject, "quiqr", "model", "partials")
	includesDir := filepath.Join(blockProject, "quiqr", "model", "includes")

	format, err := resolveFormat(includesDir)
	if err != nil {
		return err
	}

	confirm := func(question string) (bool, error) {
		return p.Confirm(question, true)
	}

	// Content-definition file.
	definition, err := scaffold.PartialDefinition(format)
	if err != nil {
		return err
	}
	partialPath := filepath.Join(partialsDir, identifier+"."+format.Ext())
	written, err := scaffold.WriteFile(partialPath, definition, confirm)
	if err != nil {
		return err
	}
	if written {
		fmt.Fprintf(out, "Created %s\n", partialPath)
	} else {
		fmt.Fprintf(out, "Skipped %s\n", partialPath)
	}

	// Registry entry.
	regPath := registry.RegistryPath(includesDir, format)
	outcome, warnings, err := registry.Upsert(regPath, format, registry.NewRecord(identifier), confirm)
	for _, w := range warnings {
		fmt.Fprintf(errOut, "warning: %s\n", w)
	}
	if err != nil {
		return err
	}
	switch outcome {
	case registry.OutcomeSkipped:
		fmt.Fprintf(out, "Skipped registry entry in %s\n", regPath)
	default:
		fmt.Fprintf(out, "Registry entry %s (%s)\n", outcome, regPath)
		reportRegistryIssues(errOut, regPath, format)
	}

	// Theme template.
	themeName, err := theme.Choose(blockProject, config.Get(config.KeyDefaultTheme), p)
	if err != nil {
		return err
	}
	html, err := scaffold.TemplateHTML(identifier)
	if err != nil {
		return err
	}
	templatePath := filepath.Join(blockProject, "themes", themeName,
		"layouts", "partials", "content_blocks", scaffold.Dashed(identifier)+".html")
	written, err = scaffold.WriteFile(templatePath, html, confirm)
	if err != nil {
		return err
	}
	if written {
		fmt.Fprintf(out, "Created %s\n", templatePath)
	} else {
		fmt.Fprintf(out, "Skipped %s\n", templatePath)
	}

	fmt.Fprintf(out, "\nContent block %q is ready. Edit %s to define its fields.\n", identifier, partialPath)
	return nil
}

// resolveIdentifier takes the identifier from the argument when given
// (invalid input is fatal) or prompts for one until it is valid.
func resolveIdentifier(args []string, p *prompt.Prompter) (string, error) {
	if len(args) == 1 {
		if err := validateIdentifier(args[0]); err != nil {
			return "", err
		}
		return args[0], nil
	}
	return p.Input("Block identifier", validateIdentifier)
}

func validateIdentifier(identifier string) error {
	if !namePattern.MatchString(identifier) {
		return fmt.Errorf("invalid block identifier %q: must match pattern %s", identifier, namePattern)
	}
	return nil
}

// resolveFormat picks the registry format: explicit flag first, then an
// existing registry file, then the configured default, then YAML.
func resolveFormat(includesDir string) (registry.Format, error) {
	if blockFormat != "" {
		return registry.ParseFormat(blockFormat)
	}

	if format, found := registry.DetectFormat(includesDir); found {
		return format, nil
	}

	if preferred := config.Get(config.KeyDefaultFormat); preferred != "" {
		if format, err := registry.ParseFormat(preferred); err == nil {
			return format, nil
		}
	}
	return registry.FormatYAML, nil
}

// reportRegistryIssues prints advisory schema findings for the registry
// file. Findings never fail the run.
func reportRegistryIssues(errOut io.Writer, regPath string, format registry.Format) {
	data, err := os.ReadFile(regPath)
	if err != nil {
		return
	}
	records, _ := registry.Decode(data, format)
	issues, err := registry.ValidateRecords(records)
	if err != nil {
		return
	}
	for _, issue := range issues {
		fmt.Fprintf(errOut, "warning: registry %s: %s\n", regPath, issue)
	}
}
