package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shade-palette/shade/internal/config"
)

func withDebugDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	ConfigureDebug(dir)
	t.Cleanup(func() {
		EnableDebug(false)
		ConfigureDebug("")
	})
	return dir
}

func debugLogs(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "debug-") && strings.HasSuffix(e.Name(), ".log") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestDebug_CreatesLogFile(t *testing.T) {
	dir := withDebugDir(t)
	EnableDebug(true)

	Debug("copied %s as %s", "#EF4444", "HEX")
	CloseDebug()

	logs := debugLogs(t, dir)
	if len(logs) != 1 {
		t.Fatalf("Expected one debug log, got %v", logs)
	}
	data, err := os.ReadFile(filepath.Join(dir, logs[0]))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "copied #EF4444 as HEX") {
		t.Errorf("log does not contain message: %q", data)
	}
}

func TestDebug_DisabledWritesNothing(t *testing.T) {
	dir := withDebugDir(t)
	EnableDebug(false)

	Debug("should not be written")

	if logs := debugLogs(t, dir); len(logs) != 0 {
		t.Errorf("Expected no debug logs when disabled, got %v", logs)
	}
}

func TestDebug_FormatsMessage(t *testing.T) {
	withDebugDir(t)
	EnableDebug(true)

	// None of these should panic
	Debug("Test message with %s and %d", "string", 42)
	Debug("Simple message without formatting")
	Debug("Message with special chars: %% \\n \\t")
	Debug("")
	Debug("int: %d, float: %f, string: %s, bool: %t", 42, 3.14, "hello", true)
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SHADE_CONFIG_DIR", "")
	logsDir := config.GetLogsDir()

	if !strings.Contains(logsDir, "shade") {
		t.Errorf("Logs directory should be under shade config, got: %s", logsDir)
	}
	if !strings.HasSuffix(logsDir, "logs") {
		t.Errorf("Logs directory should end with 'logs', got: %s", logsDir)
	}
	if !filepath.IsAbs(logsDir) {
		t.Errorf("Logs directory should be absolute path, got: %s", logsDir)
	}
}

func TestCleanupLogs(t *testing.T) {
	tempDir := withDebugDir(t)

	baseTime := time.Now()
	for i := 0; i < 10; i++ {
		ts := baseTime.Add(time.Duration(i) * time.Hour)
		filename := fmt.Sprintf("debug-%s.log", ts.Format("20060102-150405"))
		if err := os.WriteFile(filepath.Join(tempDir, filename), []byte("dummy log"), 0644); err != nil {
			t.Fatalf("Failed to write dummy log: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	CleanupLogs(5)

	logs := debugLogs(t, tempDir)
	if len(logs) != 5 {
		t.Fatalf("Expected 5 files, got %d. Files: %v", len(logs), logs)
	}

	newest := fmt.Sprintf("debug-%s.log", baseTime.Add(9*time.Hour).Format("20060102-150405"))
	oldest := fmt.Sprintf("debug-%s.log", baseTime.Format("20060102-150405"))
	found := false
	for _, name := range logs {
		if name == oldest {
			t.Errorf("Oldest file %s should have been removed", oldest)
		}
		if name == newest {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected newest file %s to be present, but it was not", newest)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "notes.txt")); err != nil {
		t.Errorf("unrelated file was removed: %v", err)
	}
}
