// Package settings manages persistent user settings for the duplexcheck CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences. Each field backs a CLI flag
// default so routine runs don't repeat credentials and relay addresses.
type Settings struct {
	// Community is the SNMP community string used when -c is not specified
	Community string `json:"community,omitempty"`

	// Port is the SNMP port used when -p is not specified
	Port uint16 `json:"port,omitempty"`

	// SMTPServer is the relay used when -s is not specified
	SMTPServer string `json:"smtp_server,omitempty"`

	// CacheDir is the interface-inventory cache directory (--cache-dir default)
	CacheDir string `json:"cache_dir,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "duplexcheck_settings.json"
	}
	return filepath.Join(home, ".duplexcheck", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
