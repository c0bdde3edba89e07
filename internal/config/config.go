package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"questcal/internal/schedule"
)

// NOTE: This file provides the configuration model and full YAML-based
// load/save behavior, including first-run config creation and 0600
// permissions.

const (
	DefaultMaxCourses  = schedule.DefaultMaxCourses
	DefaultMaxSections = schedule.DefaultMaxSections
	DefaultFilename    = "quest_schedule.ics"
	DefaultDateFormat  = "MM/DD/YYYY"
	DefaultSummary     = "@code @type in @location"
	DefaultDescription = "@code-@section: @name (@type) in @location with @prof"
	DefaultListen      = "127.0.0.1:8080"
	DefaultWatchCron   = "*/5 * * * *"
)

// Limits bounds how much of the pasted text is processed and names the
// exported file. Zero values mean "use the default".
type Limits struct {
	// MaxCourses is the ceiling on course headers in one input.
	MaxCourses int `yaml:"max_courses" json:"max_courses"`
	// MaxSections is the ceiling on meetings recognised per course.
	MaxSections int `yaml:"max_sections" json:"max_sections"`
	// Filename is the suggested name of the exported .ics file.
	Filename string `yaml:"filename" json:"filename"`
	// FailOnTBAOnly turns an input whose only meetings are TBA into an
	// error instead of an empty calendar.
	FailOnTBAOnly bool `yaml:"fail_on_tba_only" json:"fail_on_tba_only"`
}

// DefaultLimits returns the stock ceilings.
func DefaultLimits() Limits {
	return Limits{
		MaxCourses:  DefaultMaxCourses,
		MaxSections: DefaultMaxSections,
		Filename:    DefaultFilename,
	}
}

// WithDefaults merges a partial override over DefaultLimits. The receiver is
// not modified.
func (l Limits) WithDefaults() Limits {
	out := DefaultLimits()
	if l.MaxCourses > 0 {
		out.MaxCourses = l.MaxCourses
	}
	if l.MaxSections > 0 {
		out.MaxSections = l.MaxSections
	}
	if l.Filename != "" {
		out.Filename = l.Filename
	}
	out.FailOnTBAOnly = l.FailOnTBAOnly
	return out
}

// BasicAuthConfig holds HTTP Basic Auth credentials for the HTTP API.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// WatchConfig describes the periodic re-export performed by `questcal watch`.
type WatchConfig struct {
	// Input is the path of the pasted schedule text.
	Input string `yaml:"input" json:"input"`
	// Output is the path of the .ics file to (re)write.
	Output string `yaml:"output" json:"output"`
	// Cron is a cron-style schedule string (e.g. "*/5 * * * *").
	Cron string `yaml:"cron" json:"cron"`
}

// Config is the top-level application configuration.
type Config struct {
	// DateFormat is the field order of dates in the pasted text, one of
	// DD/MM/YYYY, MM/DD/YYYY, YYYY/MM/DD, YYYY/DD/MM, MM/YYYY/DD, DD/YYYY/MM.
	DateFormat string `yaml:"date_format" json:"date_format"`

	// Summary and Description are the event text templates.
	Summary     string `yaml:"summary" json:"summary"`
	Description string `yaml:"description" json:"description"`

	Limits Limits `yaml:"limits" json:"limits"`

	// EmitUID adds a deterministic UID line to every VEVENT.
	EmitUID bool `yaml:"emit_uid" json:"emit_uid"`

	// StrictEscaping enables full RFC 5545 text escaping and line folding
	// instead of comma-only escaping.
	StrictEscaping bool `yaml:"strict_escaping" json:"strict_escaping"`

	// Listen is the HTTP listen address for `questcal serve`.
	Listen string `yaml:"listen" json:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// BasicAuth, if non-nil, enables HTTP Basic Authentication on all endpoints
	// except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`

	// AllowedOrigins enables CORS for browser front ends (the extension
	// popup, say). Empty disables CORS headers.
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" json:"allowed_origins,omitempty"`

	Watch WatchConfig `yaml:"watch" json:"watch"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		DateFormat:  DefaultDateFormat,
		Summary:     DefaultSummary,
		Description: DefaultDescription,
		Limits:      DefaultLimits(),
		Listen:      DefaultListen,
		LogLevel:    "info",
		BasicAuth:   nil,
		Watch: WatchConfig{
			Cron: DefaultWatchCron,
		},
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}
	if c.Summary == "" {
		c.Summary = DefaultSummary
	}
	if c.Description == "" {
		c.Description = DefaultDescription
	}
	c.Limits = c.Limits.WithDefaults()
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// ok
	default:
		c.LogLevel = "info"
	}
	if c.Watch.Cron == "" {
		c.Watch.Cron = DefaultWatchCron
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".questcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Save is a convenience method on Config that delegates to the package-level
// Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
