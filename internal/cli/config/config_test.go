package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/flowhigh/internal/testutil"
)

// isolate runs the test from an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, EnvPrefix) {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "flowhigh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("api-url", "", "")
	flags.String("token", "", "")
	flags.Duration("timeout", 0, "")
	flags.String("cache-path", "", "")
	flags.Bool("no-cache", false, "")
	flags.String("style", "", "")
	flags.StringP("output", "o", "", "")
	flags.Int("concurrency", 0, "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, filepath.Join(dir, DefaultCacheFile), cfg.CachePath)
	assert.Equal(t, DefaultStyle, cfg.Style)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.False(t, cfg.NoCache)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `api_url: https://example.test/
timeout: 30s
cache_path: state/cache.db
realm_id: r1
style: compact
output: json
concurrency: 2
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test", cfg.APIURL, "trailing slash is trimmed")
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, filepath.Join(dir, "state", "cache.db"), cfg.CachePath)
	assert.Equal(t, "r1", cfg.RealmID)
	assert.Equal(t, "compact", cfg.Style)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_FindsFileUpward(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "realm_id: upward\n")
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "upward", cfg.RealmID)
	assert.Equal(t, filepath.Join(dir, DefaultCacheFile), cfg.CachePath, "default cache path is anchored at the config file")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := LoadConfig("nope.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file nope.yaml")
}

func TestLoadConfig_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		flag   string
		expect string
	}{
		{name: "file only", expect: "from_file"},
		{name: "env over file", env: "from_env", expect: "from_env"},
		{name: "flag over env", env: "from_env", flag: "from_flag", expect: "from_flag"},
		{name: "flag over file", flag: "from_flag", expect: "from_flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := writeConfig(t, dir, "token: from_file\n")
			if tt.env != "" {
				t.Setenv("FLOWHIGH_TOKEN", tt.env)
			}
			flags := newFlags()
			if tt.flag != "" {
				require.NoError(t, flags.Set("token", tt.flag))
			}

			cfg, err := LoadConfig(path, flags)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, cfg.Token)
		})
	}
}

func TestLoadConfig_UnsetFlagKeepsEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FLOWHIGH_CONCURRENCY", "8")
	t.Setenv("FLOWHIGH_NO_CACHE", "true")

	cfg, err := LoadConfig("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.NoCache)
}

func TestLoadConfig_FlagTypes(t *testing.T) {
	dir := isolate(t)
	flags := newFlags()
	require.NoError(t, flags.Set("timeout", "1m"))
	require.NoError(t, flags.Set("cache-path", "x.db"))
	require.NoError(t, flags.Set("output", "yaml"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, filepath.Join(dir, "x.db"), cfg.CachePath)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestLoadConfig_ExpandsToken(t *testing.T) {
	dir := isolate(t)
	t.Setenv("MY_SECRET", "s3cr3t")
	path := writeConfig(t, dir, "token: ${MY_SECRET}\n")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cfg.Token)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "relative url", mutate: func(c *Config) { c.APIURL = "flowhigh.io" }, errSubstr: "api_url must be an absolute URL"},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, errSubstr: "timeout must be positive"},
		{name: "no workers", mutate: func(c *Config) { c.Concurrency = 0 }, errSubstr: "concurrency must be at least 1"},
		{name: "bad style", mutate: func(c *Config) { c.Style = "roomy" }, errSubstr: "unknown format style"},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }, errSubstr: "unknown output format"},
		{name: "no cache path", mutate: func(c *Config) { c.CachePath = "" }, errSubstr: "cache_path is required"},
		{name: "no cache path but disabled", mutate: func(c *Config) { c.CachePath = ""; c.NoCache = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := testutil.NewTestLogger(t)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
