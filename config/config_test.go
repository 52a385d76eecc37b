package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, 30, cfg.DefaultDaysBack)
	assert.Equal(t, 50, cfg.DefaultMaxVideos)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api_url: "https://pulse.example.com"
token: "sess-abc"
output: json
default_days_back: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://pulse.example.com", cfg.APIURL)
	assert.Equal(t, "sess-abc", cfg.Token)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 7, cfg.DefaultDaysBack)
	assert.Equal(t, 50, cfg.DefaultMaxVideos, "unset keys keep defaults")
}

func TestLoad_ExplicitFileMissingIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: \"http://from-file:8000\"\n"), 0o600))

	t.Setenv("CREATORPULSE_API_URL", "http://from-env:9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:9000", cfg.APIURL)
}

func TestTokenSource_Precedence(t *testing.T) {
	ctx := context.Background()

	tokenFile := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte("from-file\n"), 0o600))
	t.Setenv(TokenEnvVar, "from-env")

	cfg := &Config{Token: "from-flag", TokenFile: tokenFile}
	tok, err := cfg.TokenSource().Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", tok, "explicit token wins")

	cfg = &Config{TokenFile: tokenFile}
	tok, err = cfg.TokenSource().Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-file", tok, "token file beats environment")

	cfg = &Config{}
	tok, err = cfg.TokenSource().Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-env", tok, "environment is the fallback")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, "table", cfg.Output)
}
