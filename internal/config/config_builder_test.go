package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Upstream: Upstream{
			APIBase: "https://backend.example.com/rest/v1",
			APIKey:  "anon-key",
		},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a config without
// upstream settings is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidUpstreamConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier sources take priority and
// later sources only fill zero fields.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Upstream: Upstream{APIKey: "from-env"}},
		&StructuredConfig{Upstream: Upstream{APIKey: "from-json", APIBase: "https://json.example.com"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Upstream.APIKey)
	assert.Equal(t, "https://json.example.com", cfg.Upstream.APIBase)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultSheetsBase, cfg.Upstream.SheetsBase)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
}

// TestBuild_NormalizesBaseURLs verifies trailing slashes are removed.
func TestBuild_NormalizesBaseURLs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Upstream: Upstream{
			APIBase:    " https://backend.example.com/rest/v1/ ",
			APIKey:     " key ",
			SheetsBase: "https://docs.google.com/",
		},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://backend.example.com/rest/v1", cfg.Upstream.APIBase)
	assert.Equal(t, "https://docs.google.com", cfg.Upstream.SheetsBase)
	assert.Equal(t, "key", cfg.Upstream.APIKey)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ExplicitPathLoaded verifies that the path found in an earlier
// source is parsed and appended.
func TestWithJSON_ExplicitPathLoaded(t *testing.T) {
	p := writeTempJSONConfig(t, `{"upstreamApi":"https://backend.example.com","upstreamApiKey":"k","upstreamTimeout":"5s"}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
	b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://backend.example.com", cfg.Upstream.APIBase)
	assert.Equal(t, "k", cfg.Upstream.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Upstream.RequestTimeout)
}

// TestWithJSON_ExplicitPathMissing verifies that a named but absent file is
// a startup error.
func TestWithJSON_ExplicitPathMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})
	b.withJSON()

	require.Error(t, b.err)
	assert.ErrorIs(t, b.err, os.ErrNotExist)
}

// TestWithJSON_ExplicitPathMalformed verifies that a malformed file is a
// startup error.
func TestWithJSON_ExplicitPathMalformed(t *testing.T) {
	p := writeTempJSONConfig(t, `{"upstreamApi":`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
	b.withJSON()

	_, err := b.build()
	require.Error(t, err)
}

// TestWithJSON_DefaultPathMissingSkipped verifies that an absent default
// config.json is not an error by itself.
func TestWithJSON_DefaultPathMissingSkipped(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_DefaultPathLoaded verifies that config.json in the working
// directory is used when no path is given.
func TestWithJSON_DefaultPathLoaded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultJSONFilePath),
		[]byte(`{"upstreamApi":"https://backend.example.com","upstreamApiKey":"k"}`), 0o600))
	t.Chdir(dir)

	b := newConfigBuilder()
	b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.Upstream.APIKey)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_FromEnv verifies the full chain with env only.
func TestGetStructuredConfig_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UPSTREAM_API", "https://backend.example.com/rest/v1")
	t.Setenv("UPSTREAM_API_KEY", "env-key")

	b := newConfigBuilder().withEnv().withFlags(nil).withJSON().withDefaults()
	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://backend.example.com/rest/v1", cfg.Upstream.APIBase)
	assert.Equal(t, "env-key", cfg.Upstream.APIKey)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}
