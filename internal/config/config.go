package config

import (
	"fmt"
)

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Input    InputConfig    `yaml:"input" json:"input"`
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// InputConfig configures the log source
type InputConfig struct {
	LogFile       string `yaml:"log_file" json:"log_file"`               // default log file to analyze
	MaxLineLength int    `yaml:"max_line_length" json:"max_line_length"` // scanner line limit in bytes
}

// AnalysisConfig configures analysis behavior
type AnalysisConfig struct {
	TopN int `yaml:"top_n" json:"top_n"` // IPs shown in the summary
	Year int `yaml:"year" json:"year"`   // reference year for timestamps (0 = current year)
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Input: InputConfig{
			LogFile:       "/var/log/auth.log",
			MaxLineLength: 1024 * 1024, // 1MB
		},
		Analysis: AnalysisConfig{
			TopN: 10,
			Year: 0,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateInputConfig(); err != nil {
		return err
	}
	if err := c.validateAnalysisConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

// validateInputConfig validates input-related configuration
func (c *Config) validateInputConfig() error {
	if c.Input.MaxLineLength < 1 {
		return fmt.Errorf("max_line_length must be greater than 0")
	}
	return nil
}

// validateAnalysisConfig validates analysis-related configuration
func (c *Config) validateAnalysisConfig() error {
	if c.Analysis.TopN < 0 {
		return fmt.Errorf("top_n must be non-negative")
	}
	if c.Analysis.Year != 0 && (c.Analysis.Year < 1970 || c.Analysis.Year > 9999) {
		return fmt.Errorf("year must be 0 (current year) or between 1970 and 9999")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"text":     true,
			"json":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: text, json, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}
