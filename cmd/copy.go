package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shade-palette/shade/internal/formats"
	"github.com/shade-palette/shade/internal/history"
	"github.com/shade-palette/shade/internal/utils"
)

var copyCmd = &cobra.Command{
	Use:   "copy <color>",
	Short: "Copy a color to the clipboard in one notation",
	Long: `Copy a color to the clipboard. The notation defaults to the quick_copy
setting (HEX unless configured otherwise).

Notations: ` + strings.Join(formats.Labels(), ", "),
	Example: `  shade copy "Red 550"
  shade copy '#ef4444' --format "Only RGB Value"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label, _ := cmd.Flags().GetString("format")
		nameFlag, _ := cmd.Flags().GetString("name")
		if label == "" {
			label = settings.QuickCopy
		}
		if !formats.IsLabel(label) {
			return fmt.Errorf("unknown format %q (want one of: %s)", label, strings.Join(formats.Labels(), ", "))
		}

		color, name, err := resolveColor(args, nameFlag)
		if err != nil {
			return err
		}

		entry, _ := formats.Find(formats.Generate(color, name), label)
		if err := clipboardWriter.Copy(entry.Value); err != nil {
			return fmt.Errorf("failed to copy %s: %w", entry.Label, err)
		}

		if err := recordCopy(history.Entry{Color: color, Name: name, Label: entry.Label, Value: entry.Value}); err != nil {
			utils.Debug("Failed to record copy: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), successText("Copied %s to clipboard: %s", entry.Label, entry.Value))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copyCmd.Flags().StringP("format", "f", "", "notation to copy (default from settings)")
	copyCmd.Flags().StringP("name", "n", "", "display name used for the NAME entry")
}
