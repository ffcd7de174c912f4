package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/shade-palette/shade/internal/formats"
)

// Settings are the user preferences read from settings.yaml.
type Settings struct {
	// Grid layout
	Columns     int    `yaml:"columns" json:"columns"`
	AspectRatio string `yaml:"aspect_ratio" json:"aspect_ratio"`

	// Label copied by the grid's one-key quick copy
	QuickCopy string `yaml:"quick_copy" json:"quick_copy"`

	// Optional YAML palette replacing the built-in one
	Palette string `yaml:"palette,omitempty" json:"palette,omitempty"`

	History      bool `yaml:"history" json:"history"`
	ToastSeconds int  `yaml:"toast_seconds" json:"toast_seconds"`
	Debug        bool `yaml:"debug" json:"debug"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Columns:      8,
		AspectRatio:  "3/2",
		QuickCopy:    formats.LabelHex,
		History:      true,
		ToastSeconds: 2,
	}
}

// LoadSettings reads the settings file, applies environment overrides and
// validates the result. A missing file yields the defaults.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom is LoadSettings for an explicit path.
func LoadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return s, fmt.Errorf("failed to read settings: %w", err)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
		}
	}

	s.ApplyEnv()
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes the settings file.
func SaveSettings(s Settings) error {
	if err := EnsureDirs(); err != nil {
		return fmt.Errorf("failed to ensure config dirs: %w", err)
	}
	return SaveSettingsTo(GetSettingsPath(), s)
}

// SaveSettingsTo writes s to path. Concurrent writers are serialised through
// a lock file next to it, and the file is replaced atomically.
func SaveSettingsTo(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	lock := flock.New(filepath.Join(filepath.Dir(path), "settings.lock"))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock settings: %w", err)
	}
	defer lock.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from SHADE_COLUMNS, SHADE_PALETTE and SHADE_DEBUG.
// Unparseable values are ignored.
func (s *Settings) ApplyEnv() {
	if v := os.Getenv("SHADE_COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Columns = n
		}
	}
	if v := os.Getenv("SHADE_PALETTE"); v != "" {
		s.Palette = v
	}
	if v := os.Getenv("SHADE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Debug = b
		}
	}
}

// Validate checks that the settings can drive the UI.
func (s Settings) Validate() error {
	if s.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", s.Columns)
	}
	if _, err := s.Ratio(); err != nil {
		return err
	}
	if !formats.IsLabel(s.QuickCopy) {
		return fmt.Errorf("unknown quick_copy format %q", s.QuickCopy)
	}
	if s.ToastSeconds < 0 {
		return fmt.Errorf("toast_seconds must not be negative, got %d", s.ToastSeconds)
	}
	return nil
}

// Ratio parses AspectRatio ("3/2", "16:9" or "1.5") into width divided by height.
func (s Settings) Ratio() (float64, error) {
	raw := strings.TrimSpace(s.AspectRatio)
	if w, h, ok := strings.Cut(strings.ReplaceAll(raw, ":", "/"), "/"); ok {
		wf, err1 := strconv.ParseFloat(strings.TrimSpace(w), 64)
		hf, err2 := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err1 != nil || err2 != nil || wf <= 0 || hf <= 0 {
			return 0, fmt.Errorf("invalid aspect_ratio %q", s.AspectRatio)
		}
		return wf / hf, nil
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil || r <= 0 {
		return 0, fmt.Errorf("invalid aspect_ratio %q", s.AspectRatio)
	}
	return r, nil
}
