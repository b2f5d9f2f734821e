package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/fjl/gio-calculators/dualcalc/internal/calc"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dualcalc.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
locale = "de"
delimiter = " "
sign_after_equals = "negate"
layout = "dual"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Locale = "de"
	want.Delimiter = " "
	want.SignAfterEquals = "negate"
	want.Layout = LayoutDual
	if cfg != want {
		t.Fatalf("got %+v\nwant %+v", cfg, want)
	}

	opts, err := cfg.EngineOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Locale != language.German || opts.SignAfterEquals != calc.SignNegate || opts.FractionDigits != 3 {
		t.Fatalf("wrong engine options %+v", opts)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, `locle = "en"`)
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("got %v, want ErrUnknownKey", err)
	}
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Key != "locle" {
		t.Fatalf("wrong error key: %v", err)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, `locale = `)
	if _, err := Load(path); err == nil {
		t.Fatal("no error for broken file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("no error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		key    string
		modify func(*Config)
	}{
		{"locale", func(c *Config) { c.Locale = "not a tag!" }},
		{"delimiter", func(c *Config) { c.Delimiter = "," }},
		{"fraction_digits", func(c *Config) { c.FractionDigits = 0 }},
		{"fraction_digits", func(c *Config) { c.FractionDigits = 16 }},
		{"sign_after_equals", func(c *Config) { c.SignAfterEquals = "flip" }},
		{"layout", func(c *Config) { c.Layout = "triple" }},
		{"log_level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, test := range tests {
		cfg := Default()
		test.modify(&cfg)
		err := cfg.Validate()
		var cerr *Error
		if !errors.As(err, &cerr) || cerr.Key != test.key || !errors.Is(err, ErrInvalidValue) {
			t.Errorf("%s: got error %v", test.key, err)
		}
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, test := range tests {
		cfg := Config{LogLevel: test.input}
		if got, err := cfg.Level(); err != nil || got != test.want {
			t.Errorf("Level(%q) = %v, %v, want %v", test.input, got, err, test.want)
		}
	}
}
