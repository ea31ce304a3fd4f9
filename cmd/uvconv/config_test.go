package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uv "github.com/Frizi/ultraviolet"
)

func TestDecodeConfig_OverlaysOnlyDefinedKeys(t *testing.T) {
	base := DefaultConfig()
	base.List = true

	cfg, err := decodeConfig(`
type = "Mat4"
to = "cbor"
out_policy = "dense"
max_depth = 4
log_level = "debug"
`, base)
	require.NoError(t, err)

	assert.Equal(t, "mat4", cfg.Type)
	assert.Equal(t, "json", cfg.From, "undefined keys keep the base value")
	assert.Equal(t, "cbor", cfg.To)
	assert.Equal(t, uv.PolicyDefault, cfg.InPolicy)
	assert.Equal(t, uv.PolicyDense, cfg.OutPolicy)
	assert.True(t, cfg.List)
	assert.Equal(t, 4, cfg.Decode.MaxDepth)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestDecodeConfig_ExplicitFalse(t *testing.T) {
	base := DefaultConfig()
	base.List = true
	base.Decode.FailFast = true
	cfg, err := decodeConfig("list = false\nfail_fast = false\nallow_trailing = true\nreject_non_finite = true\n", base)
	require.NoError(t, err)
	assert.False(t, cfg.List)
	assert.False(t, cfg.Decode.FailFast)
	assert.True(t, cfg.Decode.Strictness.AllowTrailing)
	assert.True(t, cfg.Decode.Strictness.RejectNonFinite)
}

func TestDecodeConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  `colour = "red"`,
		"bad policy":   `in_policy = "compact"`,
		"bad level":    `log_level = "loud"`,
		"invalid toml": `type = `,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeConfig(in, DefaultConfig())
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uvconv.toml")
	require.NoError(t, os.WriteFile(path, []byte("from = \"yaml\"\nlanguage = \"ja\"\n"), 0o600))
	cfg, err := loadConfig(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.From)
	assert.Equal(t, "ja", cfg.Language)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"), DefaultConfig())
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.validate())

	cfg.Type = "quat"
	assert.ErrorContains(t, cfg.validate(), `unknown type "quat"`)

	cfg = DefaultConfig()
	cfg.To = "binary"
	assert.ErrorContains(t, cfg.validate(), `unknown format "binary"`)
}
