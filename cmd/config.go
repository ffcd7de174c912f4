package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shade-palette/shade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the settings file",
	// Replaces the root hook so a broken settings file can still be located
	// and rewritten.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetSettingsPath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := config.GetSettingsPath()

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if err := config.SaveSettings(config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), successText("Wrote %s", path))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long:  `Print the settings after applying the settings file, environment and flags.`,
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeGlobalState(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		out := cmd.OutOrStdout()

		if jsonOutput {
			data, _ := json.MarshalIndent(settings, "", "  ")
			fmt.Fprintln(out, string(data))
			return nil
		}

		data, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, mutedText("# %s", config.GetSettingsPath()))
		fmt.Fprint(out, string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configShowCmd)
	configInitCmd.Flags().Bool("force", false, "overwrite an existing settings file")
	configShowCmd.Flags().Bool("json", false, "Output in JSON format")
}
