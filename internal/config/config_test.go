package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host 127.0.0.1, got %s", cfg.Host)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Transport != TransportHTTP {
		t.Errorf("Expected default transport %s, got %s", TransportHTTP, cfg.Transport)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got: %v", err)
	}
}

func TestConfigSaveLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	original := &Config{
		Host:      "0.0.0.0",
		Port:      9090,
		Transport: TransportStdio,
	}

	if err := original.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %s", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %s", err)
	}

	if loaded.Host != original.Host {
		t.Errorf("Host mismatch: expected %s, got %s", original.Host, loaded.Host)
	}
	if loaded.Port != original.Port {
		t.Errorf("Port mismatch: expected %d, got %d", original.Port, loaded.Port)
	}
	if loaded.Transport != original.Transport {
		t.Errorf("Transport mismatch: expected %s, got %s", original.Transport, loaded.Transport)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	writeConfigFile(t, configPath, "port: 3000\n")

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %s", err)
	}

	// Fields missing from the file keep their defaults.
	if loaded.Port != 3000 {
		t.Errorf("Expected port 3000 from file, got %d", loaded.Port)
	}
	if loaded.Host != DefaultHost {
		t.Errorf("Expected default host, got %s", loaded.Host)
	}
	if loaded.Transport != DefaultTransport {
		t.Errorf("Expected default transport, got %s", loaded.Transport)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("MCP_HOST", "10.1.2.3")
	t.Setenv("MCP_PORT", "9999")
	t.Setenv("MCP_TRANSPORT", "stdio")

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}

	if cfg.Host != "10.1.2.3" {
		t.Errorf("Expected host from MCP_HOST, got %s", cfg.Host)
	}
	if cfg.Port != 9999 {
		t.Errorf("Expected port from MCP_PORT, got %d", cfg.Port)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("Expected transport from MCP_TRANSPORT, got %s", cfg.Transport)
	}
}

func TestApplyEnvInvalidPort(t *testing.T) {
	t.Setenv("MCP_PORT", "not-a-port")

	cfg := Default()
	err := cfg.applyEnv()
	if err == nil {
		t.Fatal("Expected error for non-numeric MCP_PORT")
	}
	if !strings.Contains(err.Error(), "MCP_PORT") {
		t.Errorf("Expected error to mention MCP_PORT, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid http config",
			cfg:  Config{Host: "127.0.0.1", Port: 8080, Transport: TransportHTTP},
		},
		{
			name: "valid stdio config",
			cfg:  Config{Host: "127.0.0.1", Port: 8080, Transport: TransportStdio},
		},
		{
			name:    "empty host",
			cfg:     Config{Host: "", Port: 8080, Transport: TransportHTTP},
			wantErr: true,
		},
		{
			name:    "port zero",
			cfg:     Config{Host: "127.0.0.1", Port: 0, Transport: TransportHTTP},
			wantErr: true,
		},
		{
			name:    "port out of range",
			cfg:     Config{Host: "127.0.0.1", Port: 70000, Transport: TransportHTTP},
			wantErr: true,
		},
		{
			name:    "unknown transport",
			cfg:     Config{Host: "127.0.0.1", Port: 8080, Transport: "websocket"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected valid config, got: %v", err)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", Port: 8080}
	if got := cfg.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Expected addr 127.0.0.1:8080, got %s", got)
	}

	cfg = &Config{Host: "::1", Port: 9000}
	if got := cfg.Addr(); got != "[::1]:9000" {
		t.Errorf("Expected addr [::1]:9000, got %s", got)
	}
}

// writeConfigFile writes raw YAML to a path for testing.
func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}
