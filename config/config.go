// Package config loads toolmesh settings from defaults, an optional YAML file
// and TOOLMESH_* environment variables, in that order of precedence (lowest
// first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/toolmesh/agent"
	"github.com/hupe1980/toolmesh/logging"
	"github.com/hupe1980/toolmesh/memory"
	"github.com/hupe1980/toolmesh/tool"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TOOLMESH_"

// Config holds every tunable of the CLI and the default agent.
type Config struct {
	WindowSize       int    `yaml:"window_size"`
	MinContentLength int    `yaml:"min_content_length"`
	DelegationMarker string `yaml:"delegation_marker"`
	Acknowledgement  string `yaml:"acknowledgement"`
	ExcludeMarker    string `yaml:"exclude_marker"`
	PublicOnlyMarker string `yaml:"public_only_marker"`
	WorkspaceRoot    string `yaml:"workspace_root"`
	DiskPath         string `yaml:"disk_path"`
	LogLevel         string `yaml:"log_level"`
	LogFormat        string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WindowSize:       memory.DefaultWindowSize,
		MinContentLength: agent.DefaultMinContentLength,
		DelegationMarker: agent.DefaultDelegationMarker,
		Acknowledgement:  agent.DefaultAcknowledgement,
		ExcludeMarker:    memory.DefaultExcludeMarker,
		PublicOnlyMarker: memory.DefaultPublicOnlyMarker,
		DiskPath:         tool.DefaultDiskPath,
		LogLevel:         "warn",
		LogFormat:        "text",
	}
}

// Load reads path (skipped when empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DELEGATION_MARKER":  &c.DelegationMarker,
		"ACKNOWLEDGEMENT":    &c.Acknowledgement,
		"EXCLUDE_MARKER":     &c.ExcludeMarker,
		"PUBLIC_ONLY_MARKER": &c.PublicOnlyMarker,
		"WORKSPACE_ROOT":     &c.WorkspaceRoot,
		"DISK_PATH":          &c.DiskPath,
		"LOG_LEVEL":          &c.LogLevel,
		"LOG_FORMAT":         &c.LogFormat,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"WINDOW_SIZE":        &c.WindowSize,
		"MIN_CONTENT_LENGTH": &c.MinContentLength,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s %q: %w", EnvPrefix, key, v, err)
		}
		*dst = n
	}
	return nil
}

// Validate rejects settings the agent cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.WindowSize < 0 {
		errs = append(errs, fmt.Errorf("window_size must be >= 0, got %d", c.WindowSize))
	}
	if c.MinContentLength < 0 {
		errs = append(errs, fmt.Errorf("min_content_length must be >= 0, got %d", c.MinContentLength))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// Policy builds the memory admission policy from the configured markers.
func (c Config) Policy() memory.MarkerPolicy {
	return memory.MarkerPolicy{ExcludeMarker: c.ExcludeMarker, PublicOnlyMarker: c.PublicOnlyMarker}
}
