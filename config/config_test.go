package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/bfi/memory"
	"github.com/ezrec/bfi/runner"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.NoError(Validate(cfg))
	assert.Equal(8, cfg.DefaultBits)
	assert.False(cfg.DefaultSigned)
	assert.Equal(runner.Limits{MaxSteps: 10_000_000, Timeout: 5 * time.Second}, cfg.Limits())
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Decode(`
name = "bf-api"
addr = ":8080"
default_bits = 16
default_signed = true
max_steps = 500
timeout = "250ms"
max_body_bytes = 4096
log_level = "debug"
`)
	require.NoError(t, err)

	assert.Equal(Config{
		Name:          "bf-api",
		Addr:          ":8080",
		DefaultBits:   16,
		DefaultSigned: true,
		MaxSteps:      500,
		Timeout:       250 * time.Millisecond,
		MaxBodyBytes:  4096,
		LogLevel:      "debug",
	}, cfg)
}

func TestDecodePartial(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Decode(`max_steps = 0`)
	require.NoError(t, err)

	expected := Default()
	expected.MaxSteps = 0
	assert.Equal(expected, cfg)
}

func TestDecodeInvalid(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		`default_bits = 0`,
		`default_bits = 33`,
		`timeout = "soon"`,
		`timeout = "-1s"`,
		`max_steps = -1`,
		`max_body_bytes = 0`,
		`name = "  "`,
		`addr = ""`,
		`colour = "blue"`,
	}

	for _, text := range table {
		_, err := Decode(text)
		assert.ErrorIs(err, ErrConfigInvalid, text)
	}

	_, err := Decode(`default_bits = 64`)
	assert.ErrorIs(err, memory.ErrBitsInvalid)

	_, err = Decode(`name = `)
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "bfi.toml")
	require.NoError(t, os.WriteFile(path, []byte("addr = \":9999\"\n"), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(":9999", cfg.Addr)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)
}

func TestApplyEnv(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvAddr, " :1234 ")

	cfg := Default()
	ApplyEnv(&cfg)
	assert.Equal("warn", cfg.LogLevel)
	assert.Equal(":1234", cfg.Addr)
}
