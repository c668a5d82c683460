package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yllada/vpn-launcher/common"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.VPNFiles) != 2 {
		t.Fatalf("DefaultConfig() has %d entries, want 2", len(cfg.VPNFiles))
	}

	for _, entry := range cfg.VPNFiles {
		if !strings.HasPrefix(entry.Path, "/path/to/") {
			t.Errorf("default entry %q has non-placeholder path %q", entry.Name, entry.Path)
		}
	}
}

func TestBootstrap_CreatesDefaultAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	var out bytes.Buffer

	created, err := Bootstrap(path, &out)
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	if !created {
		t.Fatal("Bootstrap() should report creation on first run")
	}

	if !strings.Contains(out.String(), "Configuration file not found") {
		t.Errorf("missing bootstrap notice, got %q", out.String())
	}
	if !strings.Contains(out.String(), "created at '"+path+"'") {
		t.Errorf("bootstrap output should name %s, got %q", path, out.String())
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBootstrap_WritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	if _, err := Bootstrap(path, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !json.Valid(data) {
		t.Fatalf("bootstrap wrote invalid JSON: %s", data)
	}
	if !strings.Contains(string(data), "\n  \"vpn_files\": [") {
		t.Errorf("bootstrap JSON should be indented, got:\n%s", data)
	}
}

func TestBootstrap_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	existing := `{"vpn_files":[{"name":"Office","path":"/etc/openvpn/office.ovpn"}]}`
	writeFile(t, path, existing)

	var out bytes.Buffer
	created, err := Bootstrap(path, &out)
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	if created {
		t.Error("Bootstrap() should not recreate an existing file")
	}
	if out.Len() != 0 {
		t.Errorf("Bootstrap() should be silent for existing file, got %q", out.String())
	}

	data, _ := os.ReadFile(path)
	if string(data) != existing {
		t.Error("existing config was modified")
	}
}

func TestBootstrap_UnwritableDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", common.ConfigFileName)

	_, err := Bootstrap(path, &bytes.Buffer{})
	if !errors.Is(err, common.ErrConfigSave) {
		t.Errorf("Bootstrap() error = %v, want ErrConfigSave", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    *Config
		wantErr error
	}{
		{
			name:    "preserves order",
			file:    "config.json",
			content: `{"vpn_files":[{"name":"B","path":"/b.ovpn"},{"name":"A","path":"/a.ovpn"},{"name":"B","path":"/b.ovpn"}]}`,
			want: &Config{VPNFiles: []VPNEntry{
				{Name: "B", Path: "/b.ovpn"},
				{Name: "A", Path: "/a.ovpn"},
				{Name: "B", Path: "/b.ovpn"},
			}},
		},
		{
			name:    "empty list",
			file:    "config.json",
			content: `{"vpn_files":[]}`,
			want:    &Config{VPNFiles: []VPNEntry{}},
		},
		{
			name:    "unknown keys ignored",
			file:    "config.json",
			content: `{"vpn_files":[{"name":"Home","path":"/home.ovpn","note":"x"}],"version":2}`,
			want:    &Config{VPNFiles: []VPNEntry{{Name: "Home", Path: "/home.ovpn"}}},
		},
		{
			name:    "yaml",
			file:    "config.yaml",
			content: "vpn_files:\n  - name: Office\n    path: /etc/openvpn/office.ovpn\n",
			want:    &Config{VPNFiles: []VPNEntry{{Name: "Office", Path: "/etc/openvpn/office.ovpn"}}},
		},
		{
			name:    "missing vpn_files",
			file:    "config.json",
			content: `{"files":[]}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "vpn_files key is case-sensitive",
			file:    "config.json",
			content: `{"VPN_FILES":[{"NAME":"a","PATH":"/a.ovpn"}]}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "entry keys are case-sensitive",
			file:    "config.json",
			content: `{"vpn_files":[{"Name":"a","Path":"/a.ovpn"}]}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "mixed-case duplicate does not override",
			file:    "config.json",
			content: `{"vpn_files":[{"name":"a","path":"/a.ovpn","Name":"b","PATH":"/b.ovpn"}]}`,
			want:    &Config{VPNFiles: []VPNEntry{{Name: "a", Path: "/a.ovpn"}}},
		},
		{
			name:    "null name",
			file:    "config.json",
			content: `{"vpn_files":[{"name":null,"path":"/a.ovpn"}]}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "null entry",
			file:    "config.json",
			content: `{"vpn_files":[null]}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "vpn_files not a list",
			file:    "config.json",
			content: `{"vpn_files":{"name":"a","path":"/a.ovpn"}}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "yaml keys are case-sensitive",
			file:    "config.yaml",
			content: "VPN_FILES:\n  - name: Office\n    path: /etc/openvpn/office.ovpn\n",
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "null vpn_files",
			file:    "config.json",
			content: `{"vpn_files":null}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "missing path",
			file:    "config.json",
			content: `{"vpn_files":[{"name":"Home"}]}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "missing name",
			file:    "config.json",
			content: `{"vpn_files":[{"path":"/home.ovpn"}]}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "wrong type",
			file:    "config.json",
			content: `{"vpn_files":[{"name":1,"path":"/home.ovpn"}]}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "syntax error",
			file:    "config.json",
			content: `{"vpn_files":[`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "trailing data",
			file:    "config.json",
			content: `{"vpn_files":[]} {}`,
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "empty yaml",
			file:    "config.yml",
			content: "",
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "yaml missing path",
			file:    "config.yaml",
			content: "vpn_files:\n  - name: Office\n",
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			got, err := Load(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, common.ErrConfigLoad) {
		t.Errorf("Load() error = %v, want ErrConfigLoad", err)
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()

	if got, want := Locate(dir), filepath.Join(dir, common.ConfigFileName); got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}

	writeFile(t, filepath.Join(dir, common.YMLConfigFileName), "vpn_files: []\n")
	if got, want := Locate(dir), filepath.Join(dir, common.YMLConfigFileName); got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}

	writeFile(t, filepath.Join(dir, common.YAMLConfigFileName), "vpn_files: []\n")
	if got, want := Locate(dir), filepath.Join(dir, common.YAMLConfigFileName); got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}

func TestSave_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.YAMLConfigFileName)
	want := &Config{VPNFiles: []VPNEntry{{Name: "Lab", Path: "/srv/lab.conf"}}}

	if err := want.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}
