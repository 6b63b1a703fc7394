package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".leadscan"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .leadscan configuration file.
type File struct {
	// Settings overrides pipeline defaults. Zero values leave the
	// corresponding Config field untouched.
	Settings Settings `yaml:"settings,omitempty"`

	// Vocabulary extends the built-in extraction vocabularies. Entries are
	// appended after the defaults, so the built-in priority order is
	// preserved and extensions act as lowest-priority fallbacks.
	Vocabulary VocabularyFile `yaml:"vocabulary,omitempty"`
}

// Duration wraps time.Duration to accept "2s"-style strings in YAML.
// yaml.v3 only decodes integers into time.Duration, which nobody writes
// by hand.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Settings holds the overridable pipeline defaults.
type Settings struct {
	// RequestDelay overrides the pause between outbound requests.
	RequestDelay Duration `yaml:"requestDelay,omitempty"`

	// Timeout overrides the per-request HTTP timeout.
	Timeout Duration `yaml:"timeout,omitempty"`

	// ReferenceYear overrides the year relative founding phrases resolve
	// against.
	ReferenceYear int `yaml:"referenceYear,omitempty"`

	// UserAgent overrides the HTTP User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// OutputDir overrides where export files are written.
	OutputDir string `yaml:"outputDir,omitempty"`

	// OutputFormat overrides the default export format.
	OutputFormat string `yaml:"outputFormat,omitempty"`

	// StrictEmails enables full email grammar validation.
	StrictEmails bool `yaml:"strictEmails,omitempty"`
}

// VocabularyFile holds user vocabulary extensions.
type VocabularyFile struct {
	// Positions are extra job-title tokens.
	Positions []string `yaml:"positions,omitempty"`

	// Industries are extra industry tokens.
	Industries []string `yaml:"industries,omitempty"`

	// Locations are extra location tokens (lowercase).
	Locations []string `yaml:"locations,omitempty"`
}

// LoadConfigFile loads a .leadscan file from the given path.
// If the file does not exist, it returns ErrConfigNotFound; callers decide
// whether that is fatal based on whether the path was explicitly given.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .leadscan in the current directory
// 3. Look for .leadscan in the user's home directory
//
// Returns the path to the configuration file if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply overlays the file's settings onto the given Config.
// Only non-zero settings are applied, so CLI flags parsed into cfg after
// this call still win.
func (cf *File) Apply(cfg *Config) {
	s := cf.Settings
	if s.RequestDelay != 0 {
		cfg.RequestDelay = time.Duration(s.RequestDelay)
	}
	if s.Timeout != 0 {
		cfg.Timeout = time.Duration(s.Timeout)
	}
	if s.ReferenceYear != 0 {
		cfg.ReferenceYear = s.ReferenceYear
	}
	if s.UserAgent != "" {
		cfg.UserAgent = s.UserAgent
	}
	if s.OutputDir != "" {
		cfg.OutputDir = s.OutputDir
	}
	if s.OutputFormat != "" {
		cfg.OutputFormat = s.OutputFormat
	}
	if s.StrictEmails {
		cfg.StrictEmails = true
	}
}

// CriteriaFile is the JSON file accepted by the structured search mode.
// It supplies the same fields as the --names/--company/--titles flags.
type CriteriaFile struct {
	// Names are person names for the by-name flow.
	Names []string `json:"names,omitempty"`

	// Company is the company to search, or a filter for the by-name flow.
	Company string `json:"company,omitempty"`

	// Titles are job titles for the by-company flow.
	Titles []string `json:"titles,omitempty"`

	// Limit caps the number of leads collected. Zero means the default.
	Limit int `json:"limit,omitempty"`
}

// LoadCriteriaFile reads structured search criteria from a JSON file.
// A missing or malformed file is a fatal configuration error; the pipeline
// never starts with partial criteria.
func LoadCriteriaFile(path string) (*CriteriaFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided criteria path is intentional
	if err != nil {
		return nil, err
	}

	var cf CriteriaFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}
