package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/technative-website/quiqr-scaffold-block/internal/branding"
	"github.com/technative-website/quiqr-scaffold-block/internal/config"
	"github.com/technative-website/quiqr-scaffold-block/internal/registry"
)

// configKeys are the settings the config command accepts.
var configKeys = []string{config.KeyDefaultFormat, config.KeyDefaultTheme}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ` + config.FilePath() + `.

Supported keys:
  ` + config.KeyDefaultFormat + `   registry format used when no registry exists (yaml, toml, or json)
  ` + config.KeyDefaultTheme + `    theme that receives block templates without prompting

Each key can also be set for a single run through its environment variable,
e.g. ` + branding.EnvVar(config.KeyDefaultFormat) + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigEntry(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateConfigKey(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

func validateConfigKey(key string) error {
	for _, known := range configKeys {
		if key == known {
			return nil
		}
	}
	return fmt.Errorf("unknown config key %q: supported keys are %s", key, strings.Join(configKeys, ", "))
}

func validateConfigEntry(key, value string) error {
	if err := validateConfigKey(key); err != nil {
		return err
	}
	if key == config.KeyDefaultFormat {
		if _, err := registry.ParseFormat(value); err != nil {
			return err
		}
	}
	return nil
}
