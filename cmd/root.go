package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shade-palette/shade/internal/clipboard"
	"github.com/shade-palette/shade/internal/config"
	"github.com/shade-palette/shade/internal/history"
	"github.com/shade-palette/shade/internal/palette"
	"github.com/shade-palette/shade/internal/tui"
	"github.com/shade-palette/shade/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Debug logs kept across sessions
const maxDebugLogs = 10

// Clipboard access, replaced in tests
var (
	clipboardWriter clipboard.Writer = clipboard.System{}
	clipboardReader clipboard.Reader = clipboard.System{}
)

// State shared by all commands, loaded before any of them runs
var (
	settings      config.Settings
	activePalette palette.Palette
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shade",
	Short: "Browse a color palette and copy colors in any notation",
	Long: `Shade shows a palette of named colors in your terminal. Pick a color to see it
as HEX, RGB, HSL, HWB, CMYK, LAB and LCH, and copy any of them to the clipboard.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeGlobalState(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		history.CloseDB()
		utils.CloseDebug()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if clipboard.Unsupported() {
			utils.Debug("No clipboard utility found; copies will fail")
		}
		return startTUI()
	},
}

// startTUI runs the palette browser until the user quits
func startTUI() error {
	opts := tui.Options{
		Palette:   activePalette,
		Settings:  settings,
		Clipboard: clipboardWriter,
		Reader:    clipboardReader,
	}
	if settings.History {
		opts.Record = recordCopy
	}

	p := tea.NewProgram(tui.NewRootModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// initializeGlobalState loads .env, settings and the palette, then applies
// command line overrides.
func initializeGlobalState(cmd *cobra.Command) error {
	// .env is optional
	_ = godotenv.Load()

	s, err := config.LoadSettings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if path, _ := flags.GetString("palette"); path != "" {
		s.Palette = path
	}
	if noHistory, _ := flags.GetBool("no-history"); noHistory {
		s.History = false
	}
	if debug, _ := flags.GetBool("debug"); debug {
		s.Debug = true
	}
	if flags.Lookup("columns") != nil && flags.Changed("columns") {
		s.Columns, _ = flags.GetInt("columns")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	utils.EnableDebug(s.Debug)
	if s.Debug {
		utils.CleanupLogs(maxDebugLogs)
		utils.Debug("shade %s (built %s) starting: %s", Version, BuildTime, cmd.CommandPath())
	}

	p := palette.Default()
	if s.Palette != "" {
		if p, err = palette.Load(s.Palette); err != nil {
			return err
		}
	}

	settings = s
	activePalette = p
	return nil
}

// recordCopy stores a copied value when history is enabled
func recordCopy(e history.Entry) error {
	if !settings.History {
		return nil
	}
	_, err := history.Add(e)
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorText("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("palette", "", "YAML palette file to use instead of the built-in one")
	rootCmd.PersistentFlags().Bool("no-history", false, "do not record copied values")
	rootCmd.PersistentFlags().Bool("debug", false, "write a debug log to the logs directory")
	rootCmd.Flags().Int("columns", 0, "grid columns (overrides settings)")
	rootCmd.SetVersionTemplate("shade {{.Version}}\n")
}
