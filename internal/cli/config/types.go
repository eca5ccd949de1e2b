// Package config loads flowhigh CLI settings from defaults, flowhigh.yaml,
// FLOWHIGH_* environment variables and command-line flags.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	APIURL      string        `koanf:"api_url"`
	Token       string        `koanf:"token"`
	Timeout     time.Duration `koanf:"timeout"`
	CachePath   string        `koanf:"cache_path"`
	NoCache     bool          `koanf:"no_cache"`
	RealmID     string        `koanf:"realm_id"`
	Style       string        `koanf:"style"`
	Output      string        `koanf:"output"`
	Verbose     bool          `koanf:"verbose"`
	Concurrency int           `koanf:"concurrency"`
}

// Default configuration values.
const (
	DefaultAPIURL      = "https://flowhigh.io"
	DefaultTimeout     = 5 * time.Second
	DefaultCacheFile   = ".flowhigh/cache.db"
	DefaultStyle       = "comfortable"
	DefaultOutput      = "auto" // TTY=text, otherwise markdown
	DefaultConcurrency = 4
)

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		APIURL:      DefaultAPIURL,
		Timeout:     DefaultTimeout,
		CachePath:   DefaultCacheFile,
		Style:       DefaultStyle,
		Output:      DefaultOutput,
		Concurrency: DefaultConcurrency,
	}
}
