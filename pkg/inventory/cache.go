// Package inventory caches per-device interface inventories on disk so
// repeat runs against large switches skip the ifDescr walk. Only the
// static name/alias inventory is cached; operational and duplex state are
// always queried live.
package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Port is one cached interface: SNMP table index plus the static
// identifiers retrieved from the device.
type Port struct {
	Index int    `yaml:"index"`
	Name  string `yaml:"name"`
	Alias string `yaml:"alias,omitempty"`
}

// Cache stores one YAML file per device under Dir.
type Cache struct {
	Dir string
}

// NewCache returns a cache rooted at dir.
func NewCache(dir string) *Cache {
	return &Cache{Dir: dir}
}

func (c *Cache) path(device string) string {
	return filepath.Join(c.Dir, strings.ToUpper(device)+"-interfaces.yaml")
}

// Load returns the cached inventory for device. ok is false when the
// cache file is absent, unreadable, or empty; callers fall back to a
// live walk.
func (c *Cache) Load(device string) ([]Port, bool) {
	data, err := os.ReadFile(c.path(device))
	if err != nil {
		return nil, false
	}
	var ports []Port
	if err := yaml.Unmarshal(data, &ports); err != nil {
		return nil, false
	}
	if len(ports) == 0 {
		return nil, false
	}
	return ports, true
}

// Store writes the inventory for device, creating Dir when needed.
func (c *Cache) Store(device string, ports []Port) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	data, err := yaml.Marshal(ports)
	if err != nil {
		return fmt.Errorf("encoding inventory for %s: %w", device, err)
	}
	if err := os.WriteFile(c.path(device), data, 0o644); err != nil {
		return fmt.Errorf("writing inventory for %s: %w", device, err)
	}
	return nil
}
