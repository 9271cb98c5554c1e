package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	writeFile(t, path, `
store:
  kind: xlsx
  path: leads.xlsx
pacing:
  page: { min: 1s, max: 2s }
platforms:
  x:
    enabled: true
    keywords: [unemployed]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "xlsx", cfg.Store.Kind)
	assert.Equal(t, "Sheet1", cfg.Store.Sheet)
	assert.Equal(t, Range{Min: time.Second, Max: 2 * time.Second}, cfg.Pacing.Page)
	assert.Equal(t, 500*time.Millisecond, cfg.Pacing.Card.Min)
	assert.True(t, cfg.Platforms.X.Enabled)
	assert.Equal(t, []string{"unemployed"}, cfg.Platforms.X.Keywords)
	assert.Equal(t, 8, cfg.Platforms.X.MaxScrolls)
	assert.Equal(t, 10, cfg.Platforms.LinkedIn.MaxPages)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	writeFile(t, path, "log:\n  level: info\n")

	t.Setenv("LEADHUNT_LOG_LEVEL", "debug")
	t.Setenv("LEADHUNT_HEADLESS", "true")
	t.Setenv("LEADHUNT_STORE_KIND", "csv")
	t.Setenv("LEADHUNT_STORE_PATH", "/tmp/leads.csv")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, "csv", cfg.Store.Kind)
	assert.Equal(t, "/tmp/leads.csv", cfg.Store.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "LEADHUNT_TEST_DOTENV=from-file\n")
	t.Setenv("LEADHUNT_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("LEADHUNT_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(dir, filepath.Join(dir, "missing")))
	assert.Equal(t, "from-file", os.Getenv("LEADHUNT_TEST_DOTENV"))
}

func TestResolve(t *testing.T) {
	var cfg Config
	cfg.App.DataDir = "/data"
	assert.Equal(t, filepath.Join("/data", "leads.db"), cfg.Resolve("leads.db"))
	assert.Equal(t, "/abs/leads.db", cfg.Resolve("/abs/leads.db"))
	assert.Equal(t, "", cfg.Resolve(""))
}

func TestNormalizeAndValidate_Defaults(t *testing.T) {
	_, res := NormalizeAndValidate(Default())
	assert.True(t, res.OK(), res.Errors)
}

func TestNormalizeAndValidate_TrimsKeywords(t *testing.T) {
	cfg := Default()
	cfg.Platforms.LinkedIn.Keywords = []string{" Open to work ", "open to work", "", "Hiring"}
	cfg.Store.Kind = " SQLite "

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), res.Errors)
	assert.Equal(t, []string{"Open to work", "Hiring"}, out.Platforms.LinkedIn.Keywords)
	assert.Equal(t, "sqlite", out.Store.Kind)
}

func TestNormalizeAndValidate_Errors(t *testing.T) {
	cfg := Default()
	cfg.Platforms.LinkedIn.Enabled = false
	cfg.Store.Kind = "parquet"
	cfg.Pacing.Card = Range{Min: 2 * time.Second, Max: time.Second}

	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.Contains(t, res.Errors, "no platforms enabled: enable platforms.linkedin or platforms.x")
	assert.Contains(t, res.Errors, `store.kind must be sqlite, xlsx or csv (got "parquet")`)
	assert.Contains(t, res.Errors, "pacing.card.max must be >= pacing.card.min")
}

func TestNormalizeAndValidate_Warnings(t *testing.T) {
	cfg := Default()
	cfg.Platforms.X.Enabled = true
	cfg.Platforms.X.Keywords = nil
	cfg.Browser.Headless = true

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), res.Errors)
	assert.Len(t, res.Warnings, 2)
}

func TestOverlayKeywords(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()

	require.NoError(t, OverlayKeywords(&cfg, filepath.Join(dir, "missing.yml")))
	assert.Len(t, cfg.Platforms.LinkedIn.Keywords, 5)

	path := filepath.Join(dir, "keywords.yml")
	writeFile(t, path, "x:\n  - hire me\n")
	require.NoError(t, OverlayKeywords(&cfg, path))
	assert.Equal(t, []string{"hire me"}, cfg.Platforms.X.Keywords)
	assert.Len(t, cfg.Platforms.LinkedIn.Keywords, 5)

	writeFile(t, path, "x: [unclosed\n")
	assert.Error(t, OverlayKeywords(&cfg, path))
}

func TestEnsureUserConfig(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.yml")
	writeFile(t, def, "log:\n  level: warn\n")

	dataDir := filepath.Join(dir, "data")
	p, err := EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), p)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "log:\n  level: warn\n", string(b))

	// an existing user config is never overwritten
	writeFile(t, def, "log:\n  level: error\n")
	_, err = EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	b, _ = os.ReadFile(p)
	assert.Contains(t, string(b), "warn")
}

func TestEnsureUserConfig_WritesDefaultsWithoutTemplate(t *testing.T) {
	dataDir := t.TempDir()
	p, err := EnsureUserConfig(dataDir, filepath.Join(dataDir, "no-template.yml"))
	require.NoError(t, err)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Default().Pacing, cfg.Pacing)
	assert.Equal(t, Default().Platforms.LinkedIn.Keywords, cfg.Platforms.LinkedIn.Keywords)
}

func TestSaveAtomic_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Store.Path = ""
	err := SaveAtomic(filepath.Join(t.TempDir(), "config.yml"), cfg)
	assert.ErrorContains(t, err, "store.path is required")
}

func TestSaveAtomic_KeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, SaveAtomic(path, Default()))

	cfg := Default()
	cfg.Log.Level = "debug"
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", got.Log.Level)
	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err)
}
