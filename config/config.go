// Package config provides configuration management for VPN Launcher.
// It locates, bootstraps, and loads the list of VPN definition files
// offered in the selection menu.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yllada/vpn-launcher/common"
)

// VPNEntry is one named VPN definition file.
type VPNEntry struct {
	// Name is the label shown in the menu.
	Name string `json:"name" yaml:"name"`
	// Path is the VPN definition file handed to the client.
	Path string `json:"path" yaml:"path"`
}

// Config represents the launcher configuration.
// Entries are displayed in the order they appear in the file.
type Config struct {
	VPNFiles []VPNEntry `json:"vpn_files" yaml:"vpn_files"`
}

// rawConfig mirrors Config with pointers so absent keys can be told apart
// from empty values.
type rawConfig struct {
	VPNFiles *[]rawEntry `json:"vpn_files" yaml:"vpn_files"`
}

type rawEntry struct {
	Name *string `json:"name" yaml:"name"`
	Path *string `json:"path" yaml:"path"`
}

// DefaultConfig returns the configuration written on first run.
// Both paths are placeholders the user is expected to replace.
func DefaultConfig() *Config {
	return &Config{
		VPNFiles: []VPNEntry{
			{Name: "Example VPN 1", Path: "/path/to/example_vpn1.ovpn"},
			{Name: "Example VPN 2", Path: "/path/to/example_vpn2.ovpn"},
		},
	}
}

// Locate returns the config file path inside dir. A YAML file takes
// precedence when one exists; otherwise the JSON file name is returned
// whether or not it exists yet.
func Locate(dir string) string {
	for _, name := range []string{common.YAMLConfigFileName, common.YMLConfigFileName} {
		candidate := filepath.Join(dir, name)
		if common.FileExists(candidate) {
			return candidate
		}
	}
	return filepath.Join(dir, common.ConfigFileName)
}

// Bootstrap writes DefaultConfig to path if nothing exists there yet,
// reporting progress on out. It returns true when a file was created.
func Bootstrap(path string, out io.Writer) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}

	common.LogInfo("No configuration at %s, writing defaults", path)
	fmt.Fprintln(out, "Configuration file not found. Creating a default config file...")

	if err := DefaultConfig().Save(path); err != nil {
		return false, err
	}

	fmt.Fprintf(out, "Default configuration file created at '%s'. Please update it as needed.\n", path)
	return true, nil
}

// Load reads and parses the configuration file at path.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}

	var raw rawConfig
	if isYAML(path) {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("empty document")
			}
			return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidConfig, path, err)
		}
	} else if err := raw.decodeJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidConfig, path, err)
	}

	cfg, err := raw.validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidConfig, path, err)
	}

	common.LogDebug("Loaded %d VPN entries from %s", len(cfg.VPNFiles), path)
	return cfg, nil
}

// decodeJSON fills r from a JSON document. encoding/json matches struct
// fields case-insensitively, so keys are looked up by exact name instead.
func (r *rawConfig) decodeJSON(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return err
	}

	files, ok := top["vpn_files"]
	if !ok {
		return nil
	}

	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(files, &objects); err != nil {
		return fmt.Errorf("vpn_files: %w", err)
	}
	if objects == nil {
		return nil
	}

	entries := make([]rawEntry, len(objects))
	for i, obj := range objects {
		var err error
		if entries[i].Name, err = stringField(obj, "name"); err != nil {
			return fmt.Errorf("vpn_files[%d]: %w", i, err)
		}
		if entries[i].Path, err = stringField(obj, "path"); err != nil {
			return fmt.Errorf("vpn_files[%d]: %w", i, err)
		}
	}
	r.VPNFiles = &entries
	return nil
}

// stringField decodes obj[key]. It returns nil when the key is absent or null.
func stringField(obj map[string]json.RawMessage, key string) (*string, error) {
	msg, ok := obj[key]
	if !ok {
		return nil, nil
	}
	var s *string
	if err := json.Unmarshal(msg, &s); err != nil {
		return nil, fmt.Errorf("field `%s`: %w", key, err)
	}
	return s, nil
}

// validate checks that every required key is present and converts to Config.
func (r *rawConfig) validate() (*Config, error) {
	if r.VPNFiles == nil {
		return nil, errors.New("missing field `vpn_files`")
	}

	cfg := &Config{VPNFiles: make([]VPNEntry, 0, len(*r.VPNFiles))}
	for i, entry := range *r.VPNFiles {
		if entry.Name == nil {
			return nil, fmt.Errorf("vpn_files[%d]: missing field `name`", i)
		}
		if entry.Path == nil {
			return nil, fmt.Errorf("vpn_files[%d]: missing field `path`", i)
		}
		cfg.VPNFiles = append(cfg.VPNFiles, VPNEntry{Name: *entry.Name, Path: *entry.Path})
	}
	return cfg, nil
}

// Save writes the configuration to path in human-readable form:
// two-space indented JSON, or YAML for .yaml/.yml paths.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
