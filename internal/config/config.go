// Package config provides configuration types, defaults and validation for
// regdesk.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/zjrosen/regdesk/internal/flags"
	"github.com/zjrosen/regdesk/internal/store"
)

// KeyDelimiter separates nested viper keys. It is not "." so that quoted
// dotted color tokens such as "text.primary" survive as single keys.
const KeyDelimiter = "::"

// Config holds all configuration options for regdesk.
type Config struct {
	UI      UIConfig        `mapstructure:"ui" yaml:"ui"`
	Theme   ThemeConfig     `mapstructure:"theme" yaml:"theme"`
	Seed    SeedConfig      `mapstructure:"seed" yaml:"seed"`
	Tracing TracingConfig   `mapstructure:"tracing" yaml:"tracing"`
	Flags   map[string]bool `mapstructure:"flags" yaml:"flags"`
}

// UIConfig holds user interface options.
type UIConfig struct {
	DateFormat    string `mapstructure:"date_format" yaml:"date_format" validate:"required"`
	ShowCounts    bool   `mapstructure:"show_counts" yaml:"show_counts"`
	MarkdownStyle string `mapstructure:"markdown_style" yaml:"markdown_style" validate:"omitempty,oneof=auto dark light notty"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base: default, dracula or nord.
	Preset string `mapstructure:"preset" yaml:"preset" validate:"omitempty,oneof=default dracula nord"`

	// Colors overrides individual color tokens. Both nested YAML and quoted
	// dot notation are accepted:
	//   colors:
	//     status:
	//       error: "#FF0000"
	//     "text.muted": "#777777"
	Colors map[string]any `mapstructure:"colors" yaml:"colors,omitempty"`
}

// FlattenedColors returns Colors with nested maps collapsed to dot keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	out := make(map[string]string)
	flattenColors("", t.Colors, out)
	return out
}

func flattenColors(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flattenColors(key, val, out)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if s, ok := mk.(string); ok {
					converted[s] = mv
				}
			}
			flattenColors(key, converted, out)
		}
	}
}

// SeedConfig describes the records loaded at startup.
type SeedConfig struct {
	Enabled     bool                 `mapstructure:"enabled" yaml:"enabled"`
	CourseTypes []string             `mapstructure:"course_types" yaml:"course_types" validate:"dive,required"`
	Courses     []string             `mapstructure:"courses" yaml:"courses" validate:"dive,required"`
	Offerings   []SeedOfferingConfig `mapstructure:"offerings" yaml:"offerings" validate:"dive"`
}

// SeedOfferingConfig names the course and course type of a seeded offering.
type SeedOfferingConfig struct {
	Course string `mapstructure:"course" yaml:"course" validate:"required"`
	Type   string `mapstructure:"type" yaml:"type" validate:"required"`
}

// Store converts the seed section to the store's seed description.
func (s SeedConfig) Store() store.Seed {
	seed := store.Seed{
		CourseTypes: append([]string(nil), s.CourseTypes...),
		Courses:     append([]string(nil), s.Courses...),
	}
	for _, o := range s.Offerings {
		seed.Offerings = append(seed.Offerings, store.SeedOffering{Course: o.Course, Type: o.Type})
	}
	return seed
}

// TracingConfig holds distributed tracing options.
type TracingConfig struct {
	// Enabled controls whether spans are recorded. Default: false
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Exporter selects the backend: none, file, stdout or otlp. Default: file
	Exporter string `mapstructure:"exporter" yaml:"exporter" validate:"omitempty,oneof=none file stdout otlp"`

	// FilePath is the JSONL output for the file exporter.
	// Default: ~/.config/regdesk/traces/traces.jsonl
	FilePath string `mapstructure:"file_path" yaml:"file_path"`

	// OTLPEndpoint is the collector address for the otlp exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`

	// SampleRate is the fraction of traces kept, 0.0 to 1.0.
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate" validate:"gte=0,lte=1"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	seed := store.DefaultSeed()
	offerings := make([]SeedOfferingConfig, 0, len(seed.Offerings))
	for _, o := range seed.Offerings {
		offerings = append(offerings, SeedOfferingConfig{Course: o.Course, Type: o.Type})
	}

	return Config{
		UI: UIConfig{
			DateFormat:    "1/2/2006",
			ShowCounts:    true,
			MarkdownStyle: "auto",
		},
		Theme: ThemeConfig{
			Preset: "default",
		},
		Seed: SeedConfig{
			Enabled:     true,
			CourseTypes: seed.CourseTypes,
			Courses:     seed.Courses,
			Offerings:   offerings,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Flags: flags.Defaults(),
	}
}

// SetDefaults registers every default on v. Lists are registered whole so a
// config file that sets them replaces the default list instead of merging.
func SetDefaults(v *viper.Viper) {
	d := Defaults()

	offerings := make([]map[string]any, 0, len(d.Seed.Offerings))
	for _, o := range d.Seed.Offerings {
		offerings = append(offerings, map[string]any{"course": o.Course, "type": o.Type})
	}

	for key, value := range map[string]any{
		"ui::date_format":        d.UI.DateFormat,
		"ui::show_counts":        d.UI.ShowCounts,
		"ui::markdown_style":     d.UI.MarkdownStyle,
		"theme::preset":          d.Theme.Preset,
		"seed::enabled":          d.Seed.Enabled,
		"seed::course_types":     d.Seed.CourseTypes,
		"seed::courses":          d.Seed.Courses,
		"seed::offerings":        offerings,
		"tracing::enabled":       d.Tracing.Enabled,
		"tracing::exporter":      d.Tracing.Exporter,
		"tracing::otlp_endpoint": d.Tracing.OTLPEndpoint,
		"tracing::sample_rate":   d.Tracing.SampleRate,
	} {
		v.SetDefault(key, value)
	}
	for name, on := range d.Flags {
		v.SetDefault("flags"+KeyDelimiter+name, on)
	}
}

// DefaultTracePath is where the file exporter writes when no path is set.
func DefaultTracePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".regdesk", "traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "regdesk", "traces", "traces.jsonl")
}

// New returns a viper instance using KeyDelimiter with defaults registered.
func New() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	SetDefaults(v)
	return v
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Tracing.FilePath == "" {
		cfg.Tracing.FilePath = DefaultTracePath()
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
