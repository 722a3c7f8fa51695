package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/technative-website/quiqr-scaffold-block/internal/registry"
	"github.com/technative-website/quiqr-scaffold-block/internal/theme"
)

var doctorProject string

func init() {
	doctorCmd.Flags().StringVar(&doctorProject, "project", ".", "Quiqr project root")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for a Quiqr project",
	Long:  `Inspect the project layout, the dynamics registry, and the installed themes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		modelDir := filepath.Join(doctorProject, "quiqr", "model")
		if _, err := os.Stat(modelDir); err != nil {
			fmt.Fprintf(out, "✗ %s not found — is this a Quiqr project root?\n", modelDir)
			return nil
		}
		fmt.Fprintf(out, "✓ model directory: %s\n", modelDir)

		checkPartials(out, filepath.Join(modelDir, "partials"))
		checkRegistry(out, filepath.Join(modelDir, "includes"))
		checkThemes(out)
		return nil
	},
}

func checkPartials(out io.Writer, partialsDir string) {
	entries, err := os.ReadDir(partialsDir)
	if err != nil {
		fmt.Fprintf(out, "✗ no partials directory (%s)\n", partialsDir)
		return
	}
	fmt.Fprintf(out, "✓ partials: %d definition(s)\n", len(entries))
}

func checkRegistry(out io.Writer, includesDir string) {
	format, found := registry.DetectFormat(includesDir)
	if !found {
		fmt.Fprintf(out, "- no dynamics registry yet (will default to %s)\n", format)
		return
	}

	regPath := registry.RegistryPath(includesDir, format)
	data, err := os.ReadFile(regPath)
	if err != nil {
		fmt.Fprintf(out, "✗ registry %s unreadable: %v\n", regPath, err)
		return
	}

	records, warnings := registry.Decode(data, format)
	for _, w := range warnings {
		fmt.Fprintf(out, "✗ registry %s: %s\n", regPath, w)
	}
	fmt.Fprintf(out, "✓ registry %s: %d entry(ies)\n", regPath, len(records))

	issues, err := registry.ValidateRecords(records)
	if err != nil {
		fmt.Fprintf(out, "✗ registry schema check failed: %v\n", err)
		return
	}
	for _, issue := range issues {
		fmt.Fprintf(out, "  ! %s\n", issue)
	}
}

func checkThemes(out io.Writer) {
	themes, err := theme.List(doctorProject)
	if err != nil {
		fmt.Fprintf(out, "✗ themes: %v\n", err)
		return
	}
	if len(themes) == 0 {
		fmt.Fprintf(out, "- no themes installed\n")
		return
	}
	fmt.Fprintf(out, "✓ themes: %d installed\n", len(themes))
	for _, t := range themes {
		fmt.Fprintf(out, "    %s\n", t)
	}
}
