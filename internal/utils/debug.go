package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shade-palette/shade/internal/config"
)

var (
	debugMu      sync.Mutex
	debugEnabled bool
	debugDir     string
	debugFile    *os.File
	debugLogger  *log.Logger
)

// EnableDebug switches debug logging on or off.
func EnableDebug(on bool) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugEnabled = on
}

// ConfigureDebug points debug logging at dir. An open log file is closed and
// the next message starts a new one there.
func ConfigureDebug(dir string) {
	debugMu.Lock()
	defer debugMu.Unlock()
	closeLocked()
	debugDir = dir
}

// CloseDebug closes the current log file.
func CloseDebug() {
	debugMu.Lock()
	defer debugMu.Unlock()
	closeLocked()
}

// Debug writes a message to the session log when debugging is enabled.
// The file is created on first use as debug-YYYYMMDD-HHMMSS.log.
func Debug(format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if !debugEnabled {
		return
	}
	if debugLogger == nil {
		dir := logsDir()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return
		}
		name := fmt.Sprintf("debug-%s.log", time.Now().Format("20060102-150405"))
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		debugFile = f
		debugLogger = log.New(f, "", log.Ltime|log.Lmicroseconds)
	}
	debugLogger.Printf(format, args...)
}

// CleanupLogs removes all but the newest keep debug logs.
func CleanupLogs(keep int) {
	debugMu.Lock()
	dir := logsDir()
	current := ""
	if debugFile != nil {
		current = filepath.Base(debugFile.Name())
	}
	debugMu.Unlock()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "debug-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		logs = append(logs, name)
	}
	if len(logs) <= keep {
		return
	}

	// Names embed the timestamp, so lexical order is chronological.
	sort.Sort(sort.Reverse(sort.StringSlice(logs)))
	for _, name := range logs[keep:] {
		if name == current {
			continue
		}
		_ = os.Remove(filepath.Join(dir, name))
	}
}

func logsDir() string {
	if debugDir != "" {
		return debugDir
	}
	return config.GetLogsDir()
}

func closeLocked() {
	if debugFile != nil {
		_ = debugFile.Close()
	}
	debugFile = nil
	debugLogger = nil
}
