package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shade-palette/shade/internal/colorspace"
	"github.com/shade-palette/shade/internal/config"
	"github.com/shade-palette/shade/internal/history"
	"github.com/shade-palette/shade/internal/palette"
)

type fakeClipboard struct {
	writes []string
	err    error
	paste  string
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

func (f *fakeClipboard) Paste() (string, error) {
	return f.paste, nil
}

// setupCmdTest isolates config, history and clipboard for one test
func setupCmdTest(t *testing.T) (*fakeClipboard, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SHADE_CONFIG_DIR", "")
	t.Setenv("SHADE_COLUMNS", "")
	t.Setenv("SHADE_PALETTE", "")
	t.Setenv("SHADE_DEBUG", "")

	history.CloseDB()
	cb := &fakeClipboard{}
	oldWriter, oldReader := clipboardWriter, clipboardReader
	clipboardWriter, clipboardReader = cb, cb
	t.Cleanup(func() {
		clipboardWriter, clipboardReader = oldWriter, oldReader
		history.CloseDB()
	})
	return cb, dir
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	setupCmdTest(t)
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "shade "+Version+"\n", out)
}

func TestShow_Hex(t *testing.T) {
	setupCmdTest(t)

	out, err := executeCommand(t, "show", "#ef4444")
	require.NoError(t, err)
	assert.Contains(t, out, "FORMAT")
	assert.Contains(t, out, "#EF4444")
	assert.Contains(t, out, "rgb(239, 68, 68)")
	assert.Contains(t, out, "Red/550", "palette colors are named after their shade")
	assert.Contains(t, out, "Only LCH Value")
}

func TestShow_PaletteNameAcrossArgs(t *testing.T) {
	setupCmdTest(t)

	out, err := executeCommand(t, "show", "Blue", "550")
	require.NoError(t, err)
	assert.Contains(t, out, "#3B82F6")
	assert.Contains(t, out, "Blue/550")
}

func TestShow_JSON(t *testing.T) {
	setupCmdTest(t)

	out, err := executeCommand(t, "show", "--json", "--name", "Brand Blue", "rgb(59,", "130,", "246)")
	require.NoError(t, err)

	var got colorOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Brand Blue", got.Name)
	assert.Equal(t, "rgb(59, 130, 246)", got.Color)
	require.Len(t, got.Formats, 14)
	assert.Equal(t, "Brand/Blue", got.Formats[0].Value)
	assert.Equal(t, "#3B82F6", got.Formats[1].Value)
}

func TestShow_InvalidColor(t *testing.T) {
	setupCmdTest(t)

	_, err := executeCommand(t, "show", "not-a-color")
	require.Error(t, err)
	assert.True(t, errors.Is(err, colorspace.ErrInvalidColor))
}

func TestShow_FromClipboard(t *testing.T) {
	cb, _ := setupCmdTest(t)

	cb.paste = "  hsl(0, 100%, 50%)\n"
	out, err := executeCommand(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "#FF0000")

	cb.paste = "hello"
	_, err = executeCommand(t, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clipboard does not contain a color")
}

func TestCopy_DefaultFormatAndHistory(t *testing.T) {
	cb, _ := setupCmdTest(t)

	out, err := executeCommand(t, "copy", "Red 550")
	require.NoError(t, err)
	assert.Equal(t, []string{"#EF4444"}, cb.writes)
	assert.Contains(t, out, "Copied HEX to clipboard: #EF4444")

	out, err = executeCommand(t, "history", "--json")
	require.NoError(t, err)
	var entries []history.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Red 550", entries[0].Name)
	assert.Equal(t, "HEX", entries[0].Label)
	assert.Equal(t, "#EF4444", entries[0].Value)
	assert.NotEmpty(t, entries[0].ID)

	out, err = executeCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Red 550")
	assert.Contains(t, out, "#EF4444")
}

func TestCopy_Format(t *testing.T) {
	cb, _ := setupCmdTest(t)

	_, err := executeCommand(t, "copy", "#ef4444", "--format", "only rgb value")
	require.NoError(t, err)
	assert.Equal(t, []string{"239 68 68"}, cb.writes)

	_, err = executeCommand(t, "copy", "#ef4444", "-f", "HSV")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
	assert.Len(t, cb.writes, 1)
}

func TestCopy_NoHistory(t *testing.T) {
	cb, _ := setupCmdTest(t)

	_, err := executeCommand(t, "copy", "--no-history", "#22c55e")
	require.NoError(t, err)
	assert.Equal(t, []string{"#22C55E"}, cb.writes)

	out, err := executeCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No copies recorded.")
}

func TestCopy_Errors(t *testing.T) {
	cb, _ := setupCmdTest(t)

	_, err := executeCommand(t, "copy")
	assert.Error(t, err, "copy needs a color")

	_, err = executeCommand(t, "copy", "nope")
	assert.True(t, errors.Is(err, colorspace.ErrInvalidColor))

	cb.err = errors.New("no clipboard utility")
	_, err = executeCommand(t, "copy", "#000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to copy HEX")

	out, err := executeCommand(t, "history", "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out, "failed copies are not recorded")
}

func TestHistory_Clear(t *testing.T) {
	setupCmdTest(t)

	for _, c := range []string{"#000", "#fff", "Slate 50"} {
		_, err := executeCommand(t, "copy", c)
		require.NoError(t, err)
	}

	out, err := executeCommand(t, "history", "--limit", "2", "--json")
	require.NoError(t, err)
	var entries []history.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 2)

	out, err = executeCommand(t, "history", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 3 entries.")
}

func TestLs(t *testing.T) {
	setupCmdTest(t)

	out, err := executeCommand(t, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "Slate 50")
	assert.Contains(t, out, "#F8FAFC")
	assert.Contains(t, out, "Rose 1050")

	out, err = executeCommand(t, "ls", "red")
	require.NoError(t, err)
	assert.Contains(t, out, "Red 550")
	assert.Contains(t, out, "rgb(239, 68, 68)")
	assert.NotContains(t, out, "Blue")

	out, err = executeCommand(t, "ls", "Blue", "--json")
	require.NoError(t, err)
	var shades []palette.Shade
	require.NoError(t, json.Unmarshal([]byte(out), &shades))
	require.Len(t, shades, 11)
	assert.Equal(t, "Blue 50", shades[0].Name)

	_, err = executeCommand(t, "ls", "Chartreuse")
	assert.Error(t, err)
}

func TestCustomPalette(t *testing.T) {
	_, dir := setupCmdTest(t)

	path := filepath.Join(dir, "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: Brand\n  shades: [\"#fdf2f8\", \"#ec4899\"]\n"), 0644))

	out, err := executeCommand(t, "ls", "--palette", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Brand 50")
	assert.Contains(t, out, "Brand 150")
	assert.NotContains(t, out, "Slate")

	t.Setenv("SHADE_PALETTE", path)
	out, err = executeCommand(t, "show", "brand/150")
	require.NoError(t, err)
	assert.Contains(t, out, "#EC4899")

	_, err = executeCommand(t, "ls", "--palette", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	_, dir := setupCmdTest(t)
	settingsPath := filepath.Join(dir, "shade", "settings.yaml")

	out, err := executeCommand(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, settingsPath+"\n", out)

	out, err = executeCommand(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	_, err = os.Stat(settingsPath)
	require.NoError(t, err)

	_, err = executeCommand(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCommand(t, "config", "init", "--force")
	require.NoError(t, err)

	out, err = executeCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "columns: 8")
	assert.Contains(t, out, "quick_copy: HEX")

	t.Setenv("SHADE_COLUMNS", "5")
	out, err = executeCommand(t, "config", "show", "--json")
	require.NoError(t, err)
	var s config.Settings
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 5, s.Columns)
}

func TestConfigCommandsRepairBrokenSettings(t *testing.T) {
	_, dir := setupCmdTest(t)
	settingsPath := filepath.Join(dir, "shade", "settings.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(settingsPath), 0755))
	require.NoError(t, os.WriteFile(settingsPath, []byte("quick_copy: HSV\n"), 0644))

	out, err := executeCommand(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, settingsPath+"\n", out)

	_, err = executeCommand(t, "config", "show")
	require.Error(t, err, "show reports the broken file")
	assert.Contains(t, err.Error(), "quick_copy")

	_, err = executeCommand(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCommand(t, "config", "init", "--force")
	require.NoError(t, err)

	out, err = executeCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "quick_copy: HEX")

	_, err = executeCommand(t, "ls", "red")
	assert.NoError(t, err)
}

func TestLs_YAMLExport(t *testing.T) {
	_, dir := setupCmdTest(t)

	out, err := executeCommand(t, "ls", "red", "--yaml")
	require.NoError(t, err)
	p, err := palette.Parse([]byte(out))
	require.NoError(t, err)
	require.Len(t, p.Families(), 1)
	s, ok := p.Lookup("Red 550")
	require.True(t, ok)
	assert.Equal(t, "#ef4444", s.Hex)

	out, err = executeCommand(t, "ls", "--yaml")
	require.NoError(t, err)
	path := filepath.Join(dir, "exported.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0644))

	out, err = executeCommand(t, "ls", "--palette", path, "slate")
	require.NoError(t, err)
	assert.Contains(t, out, "Slate 50")

	_, err = executeCommand(t, "ls", "--yaml", "--json")
	assert.Error(t, err)
}

func TestInvalidSettingsFail(t *testing.T) {
	_, dir := setupCmdTest(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shade"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shade", "settings.yaml"), []byte("quick_copy: HSV\n"), 0644))

	_, err := executeCommand(t, "ls")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "quick_copy"))
}
