package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shade-palette/shade/internal/colorspace"
	"github.com/shade-palette/shade/internal/palette"
)

var lsCmd = &cobra.Command{
	Use:   "ls [family]",
	Short: "List palette colors",
	Long: `List every color of the palette, or of one family.

With --yaml the colors are printed as a palette file, ready to be edited and
passed back with --palette.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		yamlOutput, _ := cmd.Flags().GetBool("yaml")

		p := activePalette
		if len(args) == 1 {
			f, ok := activePalette.Family(args[0])
			if !ok {
				return fmt.Errorf("unknown family %q", args[0])
			}
			var err error
			if p, err = palette.New([]palette.Family{f}); err != nil {
				return err
			}
		}
		shades := p.Shades()

		out := cmd.OutOrStdout()
		if yamlOutput {
			data, err := p.Marshal()
			if err != nil {
				return fmt.Errorf("failed to encode palette: %w", err)
			}
			fmt.Fprint(out, string(data))
			return nil
		}
		if jsonOutput {
			data, _ := json.MarshalIndent(shades, "", "  ")
			fmt.Fprintln(out, string(data))
			return nil
		}

		// Table output
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tHEX\tRGB")
		fmt.Fprintln(w, "----\t---\t---")
		for _, s := range shades {
			c, _ := colorspace.ParseOrBlack(s.Hex)
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, strings.ToUpper(c.Hex()), c.RGBString())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().Bool("json", false, "Output in JSON format")
	lsCmd.Flags().Bool("yaml", false, "Output as a palette file")
	lsCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}
