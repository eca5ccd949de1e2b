package config

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/leapstack-labs/flowhigh/pkg/format"
)

// OutputModes lists the accepted values of the output setting.
var OutputModes = []string{"auto", "text", "markdown", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url must be an absolute URL, got %q", c.APIURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if _, err := format.ParseStyle(c.Style); err != nil {
		return err
	}
	if !slices.Contains(OutputModes, c.Output) {
		return fmt.Errorf("unknown output format %q (want one of %v)", c.Output, OutputModes)
	}
	if !c.NoCache && c.CachePath == "" {
		return fmt.Errorf("cache_path is required unless no_cache is set")
	}
	return nil
}
