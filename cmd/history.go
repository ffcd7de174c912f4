package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shade-palette/shade/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently copied values",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		clear, _ := cmd.Flags().GetBool("clear")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		out := cmd.OutOrStdout()

		if clear {
			n, err := history.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, successText("Cleared %d entries.", n))
			return nil
		}

		entries, err := history.Recent(limit)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}

		if jsonOutput {
			if entries == nil {
				entries = []history.Entry{}
			}
			data, _ := json.MarshalIndent(entries, "", "  ")
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "No copies recorded.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "COPIED\tNAME\tFORMAT\tVALUE")
		fmt.Fprintln(w, "------\t----\t------\t-----")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.CopiedAt.Format("2006-01-02 15:04"), e.Name, e.Label, e.Value)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "l", 20, "maximum number of entries (0 for all)")
	historyCmd.Flags().Bool("clear", false, "delete all entries")
	historyCmd.Flags().Bool("json", false, "Output in JSON format")
}
