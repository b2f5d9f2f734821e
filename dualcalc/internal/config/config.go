// Package config loads the calculator settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/fjl/gio-calculators/dualcalc/internal/calc"
)

var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrInvalidValue = errors.New("invalid value")
)

// Error is returned for a setting that cannot be used.
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func invalid(key string, format string, args ...any) *Error {
	return &Error{Key: key, Err: fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...)}
}

const (
	LayoutAuto   = "auto"
	LayoutSingle = "single"
	LayoutDual   = "dual"
)

// Config holds the settings of the calculator app.
type Config struct {
	Locale          string `toml:"locale"`
	Delimiter       string `toml:"delimiter"`
	FractionDigits  int    `toml:"fraction_digits"`
	SignAfterEquals string `toml:"sign_after_equals"`
	Layout          string `toml:"layout"`
	LogLevel        string `toml:"log_level"`
}

// Default returns the settings used when there is no config file.
func Default() Config {
	return Config{
		Locale:          "en",
		Delimiter:       "",
		FractionDigits:  3,
		SignAfterEquals: "percent",
		Layout:          LayoutAuto,
		LogLevel:        "info",
	}
}

// Load reads the config file at path. Settings missing from the file keep
// their default. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, &Error{Key: undecoded[0].String(), Err: ErrUnknownKey}
	}
	return cfg, cfg.Validate()
}

// Validate checks all settings.
func (c Config) Validate() error {
	if _, err := c.Tag(); err != nil {
		return err
	}
	if c.Delimiter != "" && c.Delimiter != " " {
		return invalid("delimiter", "%q, want \"\" or \" \"", c.Delimiter)
	}
	if c.FractionDigits < 1 || c.FractionDigits > 15 {
		return invalid("fraction_digits", "%d not in 1..15", c.FractionDigits)
	}
	if _, err := c.signMode(); err != nil {
		return err
	}
	switch c.Layout {
	case LayoutAuto, LayoutSingle, LayoutDual:
	default:
		return invalid("layout", "%q", c.Layout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Tag parses the locale setting.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, &Error{Key: "locale", Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
	}
	return tag, nil
}

func (c Config) signMode() (calc.SignMode, error) {
	switch c.SignAfterEquals {
	case "", "percent":
		return calc.SignScaled, nil
	case "negate":
		return calc.SignNegate, nil
	default:
		return 0, invalid("sign_after_equals", "%q, want \"percent\" or \"negate\"", c.SignAfterEquals)
	}
}

// Level parses the log level setting.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, invalid("log_level", "%q", c.LogLevel)
	}
}

// EngineOptions converts the settings into engine options.
func (c Config) EngineOptions(log *slog.Logger) (calc.Options, error) {
	tag, err := c.Tag()
	if err != nil {
		return calc.Options{}, err
	}
	mode, err := c.signMode()
	if err != nil {
		return calc.Options{}, err
	}
	return calc.Options{
		Locale:          tag,
		FractionDigits:  c.FractionDigits,
		Delimiter:       c.Delimiter,
		SignAfterEquals: mode,
		Logger:          log,
	}, nil
}
