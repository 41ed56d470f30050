// Package devlist loads the newline-delimited list of target devices.
package devlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ConfigError reports an unusable device list. It is fatal: nothing is
// polled when the target list cannot be read.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("device list %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads one device identifier (hostname or IP) per line, trimming
// whitespace and skipping blank lines. Order is preserved; it becomes the
// report order.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	var devices []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		devices = append(devices, line)
	}
	if err := sc.Err(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return devices, nil
}
