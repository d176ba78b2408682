package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/regdesk/internal/log"
)

// DefaultConfigTemplate returns the default config as YAML with comments.
func DefaultConfigTemplate() string {
	return `# regdesk configuration

# UI settings
ui:
  date_format: "1/2/2006"  # Go time layout for "Registered:" dates
  show_counts: true        # Show record counts in section titles
  markdown_style: auto     # Help overlay style: auto, dark, light or notty

# Theme configuration
theme:
  preset: default  # default, dracula or nord
  # Override individual color tokens (nested or quoted dot notation):
  # colors:
  #   status:
  #     error: "#FF5555"
  #   "header.title": "#BD93F9"

# Records loaded when the app starts (use --no-seed to start empty)
seed:
  enabled: true
  course_types: [Individual, Group, Special]
  courses: [Hindi, English, Urdu]
  offerings:
    - course: English
      type: Individual
    - course: Hindi
      type: Group

# Feature flags
flags:
  live-reload: true  # Apply edits to this file while regdesk runs
  mouse: true        # Click tabs, rows and buttons

# Distributed tracing of committed changes
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # none, file, stdout or otlp (default: file)
#   file_path: ~/.config/regdesk/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at configPath with the default
// template, creating the parent directory if needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// Marshal renders cfg as YAML for `regdesk config show`.
func Marshal(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}
