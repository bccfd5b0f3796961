package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fqlint/core/validate"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fqlint.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "ACGTNacgtn", cfg.Lint.Alphabet)
	assert.Equal(t, 0.0001, cfg.Duplicates.FalsePositiveRate)
	assert.Equal(t, uint(10000), cfg.Duplicates.Capacity)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
[lint]
alphabet = "ACGT"
level = "medium"
disable = ["S002"]
threads = 2
fail_fast = true

[duplicates]
false_positive_rate = 0.01
capacity = 500

[output]
format = "jsonl"
color = "off"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", cfg.Lint.Alphabet)
	assert.Equal(t, validate.Medium, cfg.Lint.Level)
	assert.Equal(t, []string{"S002"}, cfg.Lint.Disable)
	assert.Equal(t, 2, cfg.Lint.Threads)
	assert.True(t, cfg.Lint.FailFast)
	assert.Equal(t, 0.01, cfg.Duplicates.FalsePositiveRate)
	assert.Equal(t, uint(500), cfg.Duplicates.Capacity)
	assert.Equal(t, "jsonl", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level, "unset keys keep defaults")
}

func TestLoadFileUnknownKey(t *testing.T) {
	path := writeFile(t, "[lint]\nalphabett = \"ACGT\"\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "lint.alphabett")
}

func TestLoadFileBadSeverity(t *testing.T) {
	path := writeFile(t, "[lint]\nlevel = \"fatal\"\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrParsingFile)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "[lint]\nlevel = \"medium\"\n")
	t.Setenv("FQLINT_LINT_LEVEL", "high")
	t.Setenv("FQLINT_LINT_DISABLE", "S002,S007")
	t.Setenv("FQLINT_DUPLICATES_CAPACITY", "42")
	t.Setenv("FQLINT_OUTPUT_COLOR", "on")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, validate.High, cfg.Lint.Level)
	assert.Equal(t, []string{"S002", "S007"}, cfg.Lint.Disable)
	assert.Equal(t, uint(42), cfg.Duplicates.Capacity)
	assert.Equal(t, "on", cfg.Output.Color)
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("FQLINT_LINT_THREADS", "many")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrParsingEnv)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Lint.Alphabet = ""
	cfg.Duplicates.FalsePositiveRate = 1
	cfg.Duplicates.Capacity = 0
	cfg.Output.Color = "sometimes"
	cfg.Log.Format = "xml"
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	for _, want := range []string{"lint.alphabet", "false_positive_rate", "capacity", "output.color", "log.format"} {
		assert.Contains(t, err.Error(), want)
	}
}
