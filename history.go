package choose

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HistoryConfig holds the configuration for the selection history: the
// values accepted by past invocations, kept so the fallback search prompt
// can rank familiar candidates first.
//
// File path formats:
//   - empty string: memory-only history (no persistence)
//   - absolute path: "/home/user/.app_choices"
//   - home directory: "~/.app_choices"
//   - relative path: "./app_choices" (converted to absolute)
//
// Use DefaultHistoryFile for an XDG-compliant location.
type HistoryConfig struct {
	Enabled    bool   // enable/disable history
	MaxEntries int    // maximum entries kept in memory and on disk (default: 500)
	File       string // file path for persistence (empty = memory only)
}

// DefaultHistoryConfig returns a memory-only history configuration.
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Enabled:    true,
		MaxEntries: 500,
	}
}

// DefaultHistoryFile returns the default history file path following the XDG
// Base Directory Specification: $XDG_CONFIG_HOME/choose/history, or
// ~/.config/choose/history when XDG_CONFIG_HOME is unset.
func DefaultHistoryFile() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "choose", "history")
}

// HistoryStore is the navigation history buffer shared across invocations of
// one Selector. Retention is owned here: the selection controller only
// appends accepted values and reads the buffer back.
type HistoryStore struct {
	config  *HistoryConfig
	entries []string
}

// NewHistoryStore creates a history store with the given configuration.
func NewHistoryStore(config *HistoryConfig) *HistoryStore {
	if config == nil {
		config = DefaultHistoryConfig()
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = 500
	}
	if config.File != "" {
		if abs, err := expandHistoryPath(config.File); err == nil {
			config.File = abs
		}
	}
	return &HistoryStore{config: config}
}

// Enabled reports whether the store records anything at all.
func (hs *HistoryStore) Enabled() bool {
	return hs.config.Enabled
}

// Load reads persisted entries from the configured file. A missing file is
// not an error; the store simply starts empty.
func (hs *HistoryStore) Load() error {
	if !hs.config.Enabled || hs.config.File == "" {
		return nil
	}

	file, err := os.Open(hs.config.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			hs.entries = append(hs.entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	hs.trim()
	return nil
}

// Save writes the current entries to the configured file, creating parent
// directories as needed.
func (hs *HistoryStore) Save() error {
	if !hs.config.Enabled || hs.config.File == "" {
		return nil
	}

	if dir := filepath.Dir(hs.config.File); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	file, err := os.Create(hs.config.File)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	for _, entry := range hs.entries {
		if _, err := fmt.Fprintln(file, entry); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	return nil
}

// Add records an accepted value, skipping consecutive duplicates and
// trimming the oldest entries beyond MaxEntries.
func (hs *HistoryStore) Add(entry string) {
	if !hs.config.Enabled || entry == "" {
		return
	}
	if len(hs.entries) > 0 && hs.entries[len(hs.entries)-1] == entry {
		return
	}
	hs.entries = append(hs.entries, entry)
	hs.trim()
}

// Entries returns a copy of the stored values, oldest first.
func (hs *HistoryStore) Entries() []string {
	if !hs.config.Enabled {
		return []string{}
	}
	return append([]string{}, hs.entries...)
}

// Clear drops all stored values.
func (hs *HistoryStore) Clear() {
	hs.entries = nil
}

func (hs *HistoryStore) trim() {
	if len(hs.entries) > hs.config.MaxEntries {
		hs.entries = hs.entries[len(hs.entries)-hs.config.MaxEntries:]
	}
}

// expandHistoryPath expands ~ and converts the path to an absolute one.
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return abs, nil
}
