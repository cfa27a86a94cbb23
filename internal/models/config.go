package models

import "time"

// Config holds configuration for a CLI run
type Config struct {
	// StatsPath is a local stats file or an http(s) URL
	StatsPath  string
	ConfigFile string

	// Output settings
	OutputFormat string // "terminal", "json", "sarif"
	OutputFile   string // Optional output file path
	MetricsFile  string // Optional Prometheus textfile path

	// Remote stats settings. A zero CacheTTL fetches on every run.
	CacheTTL   time.Duration
	CacheDir   string // Empty means the user cache directory
	ClearCache bool
	Timeout    time.Duration

	Validation ValidationConfig
}

// ValidationConfig is the immutable input of one validation run
type ValidationConfig struct {
	Mandatory     DependencySet
	Disallowed    DependencySet
	FailOnInvalid bool
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		StatsPath:    "stats.json",
		OutputFormat: "terminal",
		Timeout:      60 * time.Second,
		Validation: ValidationConfig{
			Mandatory:     DependencySet{},
			Disallowed:    DependencySet{},
			FailOnInvalid: false,
		},
	}
}
