// Package config builds the transport configuration for the kwsearch
// server. The configuration is constructed once at startup and handed to
// the transport layer; the search routine itself takes no configuration.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"kwsearch/internal/logging"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "kwsearch" // application name used for config directory

// Transport names accepted in the config file and in MCP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Built-in defaults: local HTTP on 127.0.0.1:8080.
const (
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 8080
	DefaultTransport = TransportHTTP
)

// Config holds the server transport settings for kwsearch.
type Config struct {
	Host      string `yaml:"host"`      // bind host for the http transport
	Port      int    `yaml:"port"`      // bind port for the http transport
	Transport string `yaml:"transport"` // "stdio" or "http"
}

// ConfigPath returns the standard config file path for the current platform.
func ConfigPath() string {
	path := filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")

	logging.Debug("Determined config path", "path", path)
	return path
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Host:      DefaultHost,
		Port:      DefaultPort,
		Transport: DefaultTransport,
	}
}

// Load builds the effective configuration: built-in defaults, overlaid with
// the optional YAML config file, overlaid with environment variables
// (MCP_HOST, MCP_PORT, MCP_TRANSPORT). A .env file in the working directory
// is honored before the environment is read.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		fileCfg, err := LoadFrom(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom loads config from a specific path. Fields missing from the file
// keep their default values.
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// applyEnv overlays MCP_HOST, MCP_PORT and MCP_TRANSPORT onto the config.
func (c *Config) applyEnv() error {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if host := os.Getenv("MCP_HOST"); host != "" {
		c.Host = host
	}
	if port := os.Getenv("MCP_PORT"); port != "" {
		p, err := cast.ToIntE(port)
		if err != nil {
			return fmt.Errorf("invalid MCP_PORT %q: %w", port, err)
		}
		c.Port = p
	}
	if transport := os.Getenv("MCP_TRANSPORT"); transport != "" {
		c.Transport = transport
	}
	return nil
}

// Validate checks that the config describes a servable transport.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	switch c.Transport {
	case TransportStdio, TransportHTTP:
		return nil
	default:
		return fmt.Errorf("unknown transport %q (expected %q or %q)", c.Transport, TransportStdio, TransportHTTP)
	}
}

// Addr returns the host:port the HTTP transport binds.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Save writes the config to the standard location.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
