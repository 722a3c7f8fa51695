package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/technative-website/quiqr-scaffold-block/internal/branding"
	"github.com/technative-website/quiqr-scaffold-block/internal/config"
	"github.com/technative-website/quiqr-scaffold-block/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [identifier]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a reusable content block for a Quiqr site:
a content-definition file under quiqr/model/partials, an entry in the
dynamics registry, and an HTML template in the selected theme.

Run it from the site root. With no identifier argument it prompts for one.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Skip the downgrade notice for commands that only report state.
		if cmd.Name() == "version" {
			return
		}
		updater.CheckAndRecordRun(os.Stderr, buildVersion, config.Dir())
	},
	RunE: runBlock,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	// An interrupt is a normal way to leave an interactive prompt: exit 0.
	// Nothing held across prompts needs cleanup.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Fprintln(os.Stderr, "\nAborted.")
		os.Exit(0)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
