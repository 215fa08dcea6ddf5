// Package config loads and validates the run configuration: an optional
// YAML file, PE_* environment overrides, and instrument-specific column
// defaults. The core parsing and computation packages never read the
// environment themselves.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pecli/internal/timeseries"
)

// Instrument names accepted by the input configuration.
const (
	InstrumentOptical  = "optical"
	InstrumentMobility = "mobility"
)

// DefaultConfigFile is the YAML file read when no -config flag is given.
const DefaultConfigFile = "pe-report.yml"

// Config represents the complete run configuration.
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
}

// InputConfig describes the source workbook and its layout.
type InputConfig struct {
	File       string `yaml:"file" envconfig:"FILE"`
	Sheet      string `yaml:"sheet" envconfig:"SHEET" validate:"required"`
	Instrument string `yaml:"instrument" envconfig:"INSTRUMENT" validate:"oneof=optical mobility"`
	// FirstDataCol overrides the instrument default (1 for optical, 2 for
	// mobility) when set.
	FirstDataCol *int `yaml:"first_data_col" envconfig:"FIRST_DATA_COL"`
	DateCol      int  `yaml:"date_col" envconfig:"DATE_COL" validate:"gte=0"`
	TimeCol      int  `yaml:"time_col" envconfig:"TIME_COL" validate:"gte=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// OutputConfig names the optional run artifacts.
type OutputConfig struct {
	ChartPath string `yaml:"chart" envconfig:"CHART"`
	CSVPath   string `yaml:"csv" envconfig:"CSV"`
}

// defaultConfig returns the built-in defaults. Defaults live here rather
// than in envconfig tags so a later Process call only touches fields whose
// PE_* variable is actually set.
func defaultConfig() Config {
	return Config{
		Input: InputConfig{
			Sheet:      "Sheet1",
			Instrument: InstrumentOptical,
			DateCol:    0,
			TimeCol:    1,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/pe-report.log",
		},
	}
}

// Load builds the configuration in increasing precedence: defaults, then
// the YAML file overlay if one is given or present at the default location,
// then PE_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("PE", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Input.FirstDataCol != nil && *c.Input.FirstDataCol < 0 {
		return fmt.Errorf("invalid configuration: first_data_col must not be negative")
	}
	return nil
}

// OpticalOptions resolves the adapter options for an optical-counter run.
func (c InputConfig) OpticalOptions() timeseries.OpticalOptions {
	opts := timeseries.DefaultOpticalOptions()
	if c.FirstDataCol != nil {
		opts.FirstDataCol = *c.FirstDataCol
	}
	return opts
}

// MobilityOptions resolves the adapter options for a mobility-sizer run.
func (c InputConfig) MobilityOptions() timeseries.MobilityOptions {
	opts := timeseries.DefaultMobilityOptions()
	opts.DateCol = c.DateCol
	opts.TimeCol = c.TimeCol
	if c.FirstDataCol != nil {
		opts.FirstDataCol = *c.FirstDataCol
	}
	return opts
}
