// Package config provides configuration for the CreatorPulse client.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/PriyanshAroraa/CreatorPulse/api"
)

// TokenEnvVar is the fallback environment variable for the session token.
const TokenEnvVar = "CREATORPULSE_TOKEN"

// Config holds client configuration. Precedence: flags > environment
// (CREATORPULSE_*) > config file > defaults.
type Config struct {
	// APIURL is the backend base URL; "/api" is appended when missing.
	APIURL string `mapstructure:"api_url"`

	// Token is a fixed bearer token. TokenFile points at a file an external
	// auth refresher rotates. When both are empty the token comes from
	// CREATORPULSE_TOKEN per request.
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token_file"`

	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// Output selects CLI rendering: "table" or "json".
	Output string `mapstructure:"output"`

	// Sync defaults mirror the backend's.
	DefaultDaysBack  int `mapstructure:"default_days_back"`
	DefaultMaxVideos int `mapstructure:"default_max_videos"`

	LogLevel string `mapstructure:"log_level"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		APIURL:           "http://localhost:8000",
		RequestTimeout:   30 * time.Second,
		Output:           "table",
		DefaultDaysBack:  30,
		DefaultMaxVideos: 50,
		LogLevel:         "info",
	}
}

// Load reads configuration from the given file path, or from the default
// search locations when path is empty. A missing config file is not an
// error; defaults and environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("api_url", def.APIURL)
	v.SetDefault("request_timeout", def.RequestTimeout)
	v.SetDefault("output", def.Output)
	v.SetDefault("default_days_back", def.DefaultDaysBack)
	v.SetDefault("default_max_videos", def.DefaultMaxVideos)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("CREATORPULSE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := defaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}

// TokenSource resolves where bearer tokens come from: an explicit token
// beats a token file, which beats the environment variable.
func (c *Config) TokenSource() api.TokenSource {
	if c.Token != "" {
		return api.StaticToken(c.Token)
	}
	if c.TokenFile != "" {
		return api.FileToken(c.TokenFile)
	}
	return api.EnvToken(TokenEnvVar)
}

// Init writes a starter config file and returns its path. It refuses to
// overwrite an existing file.
func Init(apiURL string) (string, error) {
	dir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", path)
	}

	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}
	content := fmt.Sprintf(`# CreatorPulse client configuration
api_url: %q
# token: ""
# token_file: ""
output: table
default_days_back: 30
default_max_videos: 50
log_level: info
`, apiURL)

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

func defaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, "creatorpulse"), nil
}
