package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shade-palette/shade/internal/formats"
)

// colorOutput is the JSON form of a color and its notations
type colorOutput struct {
	Name    string          `json:"name"`
	Color   string          `json:"color"`
	Formats []formats.Entry `json:"formats"`
}

var showCmd = &cobra.Command{
	Use:   "show [color]",
	Short: "Show a color in every notation",
	Long: `Show a color as NAME, HEX, RGB, HSL, HWB, CMYK, LAB and LCH.

The color may be a palette name ("Red 550"), a hex code, a CSS color function
or a named color. Without an argument the clipboard is read.`,
	Example: `  shade show "Blue 550"
  shade show '#3b82f6'
  shade show "hsl(217 91% 60%)" --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nameFlag, _ := cmd.Flags().GetString("name")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		color, name, err := resolveColor(args, nameFlag)
		if err != nil {
			return err
		}
		entries := formats.Generate(color, name)
		out := cmd.OutOrStdout()

		if jsonOutput {
			data, _ := json.MarshalIndent(colorOutput{Name: name, Color: color, Formats: entries}, "", "  ")
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, headingText("%s", name))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FORMAT\tVALUE")
		fmt.Fprintln(w, "------\t-----")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\n", e.Label, e.Value)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("name", "n", "", "display name used for the NAME entry")
	showCmd.Flags().Bool("json", false, "Output in JSON format")
}
