package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	uv "github.com/Frizi/ultraviolet"
	"github.com/Frizi/ultraviolet/codec"
)

// Config drives one conversion run.
type Config struct {
	Type      string
	From      string
	To        string
	InPolicy  uv.Policy
	OutPolicy uv.Policy
	List      bool
	Decode    uv.DecodeOpt
	LogLevel  zerolog.Level
	Language  string
}

// DefaultConfig converts one structured JSON Vec3 to itself.
func DefaultConfig() Config {
	return Config{
		Type:     "vec3",
		From:     "json",
		To:       "json",
		LogLevel: zerolog.InfoLevel,
		Language: "en",
	}
}

type fileConfig struct {
	Type            string `toml:"type"`
	From            string `toml:"from"`
	To              string `toml:"to"`
	InPolicy        string `toml:"in_policy"`
	OutPolicy       string `toml:"out_policy"`
	List            bool   `toml:"list"`
	AllowTrailing   bool   `toml:"allow_trailing"`
	RejectNonFinite bool   `toml:"reject_non_finite"`
	MaxDepth        int    `toml:"max_depth"`
	MaxBytes        int64  `toml:"max_bytes"`
	FailFast        bool   `toml:"fail_fast"`
	LogLevel        string `toml:"log_level"`
	Language        string `toml:"language"`
}

func loadConfig(path string, cfg Config) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load uvconv config: %w", err)
	}
	return applyFileConfig(cfg, raw, meta)
}

func decodeConfig(data string, cfg Config) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("decode uvconv config: %w", err)
	}
	return applyFileConfig(cfg, raw, meta)
}

func applyFileConfig(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	var err error
	if meta.IsDefined("type") {
		cfg.Type = strings.ToLower(strings.TrimSpace(raw.Type))
	}
	if meta.IsDefined("from") {
		cfg.From = strings.TrimSpace(raw.From)
	}
	if meta.IsDefined("to") {
		cfg.To = strings.TrimSpace(raw.To)
	}
	if meta.IsDefined("in_policy") {
		if cfg.InPolicy, err = parsePolicy(raw.InPolicy); err != nil {
			return Config{}, err
		}
	}
	if meta.IsDefined("out_policy") {
		if cfg.OutPolicy, err = parsePolicy(raw.OutPolicy); err != nil {
			return Config{}, err
		}
	}
	if meta.IsDefined("list") {
		cfg.List = raw.List
	}
	if meta.IsDefined("allow_trailing") {
		cfg.Decode.Strictness.AllowTrailing = raw.AllowTrailing
	}
	if meta.IsDefined("reject_non_finite") {
		cfg.Decode.Strictness.RejectNonFinite = raw.RejectNonFinite
	}
	if meta.IsDefined("max_depth") {
		cfg.Decode.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("max_bytes") {
		cfg.Decode.MaxBytes = raw.MaxBytes
	}
	if meta.IsDefined("fail_fast") {
		cfg.Decode.FailFast = raw.FailFast
	}
	if meta.IsDefined("log_level") {
		if cfg.LogLevel, err = zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel)); err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
	}
	if meta.IsDefined("language") {
		cfg.Language = strings.TrimSpace(raw.Language)
	}
	return cfg, nil
}

// validate checks the names a run depends on.
func (c Config) validate() error {
	if _, ok := converters[c.Type]; !ok {
		return fmt.Errorf("unknown type %q (want one of %s)", c.Type, strings.Join(typeNames(), ", "))
	}
	for _, f := range []string{c.From, c.To} {
		if !isStreamFormat(f) {
			return fmt.Errorf("unknown format %q (want one of %s)", f, strings.Join(codec.StreamNames(), ", "))
		}
	}
	return nil
}

func parsePolicy(s string) (uv.Policy, error) {
	p, ok := uv.ParsePolicy(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return uv.PolicyDefault, fmt.Errorf("unknown policy %q", s)
	}
	return p, nil
}

func isStreamFormat(name string) bool { return slices.Contains(codec.StreamNames(), name) }
