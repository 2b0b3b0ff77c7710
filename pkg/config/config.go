// Package config holds the render options and their layered loading
// (built-in defaults, an optional config file under the XDG config
// directory, then ECSTASY_* environment variables).
package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/chubbymaggie/ecstasy/pkg/errors"
)

// Options controls how markup is scanned, parsed and bound.
type Options struct {
	// Escape is the character that suppresses the syntactic meaning of
	// the character that follows it.
	Escape rune

	// Separator splits the entries of a tag's attribute list.
	Separator rune

	// OpenDelim starts a tag; BodyOpen and BodyClose bracket its body.
	OpenDelim rune
	BodyOpen  rune
	BodyClose rune

	// StrictUnusedArguments turns the leftover-arguments warning into a
	// hard error.
	StrictUnusedArguments bool
}

// Marker glyphs recognized inside attribute lists. They are not
// configurable; the separator and delimiters must not collide with
// them.
const (
	MarkerPositional = '$'
	MarkerPhrase     = '+'
	MarkerOverride   = '!'
)

// Default returns the options every call starts from
func Default() *Options {
	return &Options{
		Escape:    '\\',
		Separator: ':',
		OpenDelim: '`',
		BodyOpen:  '{',
		BodyClose: '}',
	}
}

// Validate checks that the configured characters are usable as syntax
func (o *Options) Validate() error {
	chars := map[string]rune{
		"escape":     o.Escape,
		"separator":  o.Separator,
		"open":       o.OpenDelim,
		"body_open":  o.BodyOpen,
		"body_close": o.BodyClose,
	}

	seen := map[rune]string{}
	for name, c := range chars {
		if c == 0 || unicode.IsSpace(c) {
			return errors.Newf(errors.ErrConfigValid,
				"option %q must be a printable non-space character", name)
		}
		if strings.ContainsRune(string([]rune{MarkerPositional, MarkerPhrase, MarkerOverride}), c) {
			return errors.Newf(errors.ErrConfigValid,
				"option %q collides with the %q marker", name, c)
		}
		if other, dup := seen[c]; dup {
			return errors.Newf(errors.ErrConfigValid,
				"options %q and %q are both %q", other, name, c)
		}
		seen[c] = name
	}
	return nil
}

// fileOptions is the on-disk shape of Options. Characters are stored
// as one-character strings so the file stays readable.
type fileOptions struct {
	Escape                string `koanf:"escape" toml:"escape" yaml:"escape"`
	Separator             string `koanf:"separator" toml:"separator" yaml:"separator"`
	Open                  string `koanf:"open" toml:"open" yaml:"open"`
	BodyOpen              string `koanf:"body_open" toml:"body_open" yaml:"body_open"`
	BodyClose             string `koanf:"body_close" toml:"body_close" yaml:"body_close"`
	StrictUnusedArguments bool   `koanf:"strict_unused_arguments" toml:"strict_unused_arguments" yaml:"strict_unused_arguments"`
}

func (f fileOptions) toOptions() (*Options, error) {
	o := Default()
	for _, field := range []struct {
		name  string
		value string
		dst   *rune
	}{
		{"escape", f.Escape, &o.Escape},
		{"separator", f.Separator, &o.Separator},
		{"open", f.Open, &o.OpenDelim},
		{"body_open", f.BodyOpen, &o.BodyOpen},
		{"body_close", f.BodyClose, &o.BodyClose},
	} {
		if field.value == "" {
			continue
		}
		runes := []rune(field.value)
		if len(runes) != 1 {
			return nil, errors.Newf(errors.ErrConfigValid,
				"option %q must be a single character, got %q", field.name, field.value)
		}
		*field.dst = runes[0]
	}
	o.StrictUnusedArguments = f.StrictUnusedArguments
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Options) toFileOptions() fileOptions {
	return fileOptions{
		Escape:                string(o.Escape),
		Separator:             string(o.Separator),
		Open:                  string(o.OpenDelim),
		BodyOpen:              string(o.BodyOpen),
		BodyClose:             string(o.BodyClose),
		StrictUnusedArguments: o.StrictUnusedArguments,
	}
}

// Encode marshals the options in the given file format ("toml" or
// "yaml"), suitable for seeding a config file.
func (o *Options) Encode(format string) ([]byte, error) {
	switch format {
	case "toml":
		out, err := toml.Marshal(o.toFileOptions())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "encoding TOML config")
		}
		return out, nil
	case "yaml":
		out, err := yaml.Marshal(o.toFileOptions())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "encoding YAML config")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unknown config format %q", format)
	}
}

// String renders the options for debug logging
func (o *Options) String() string {
	return fmt.Sprintf("escape=%q separator=%q open=%q body=%q%q strict=%t",
		o.Escape, o.Separator, o.OpenDelim, o.BodyOpen, o.BodyClose,
		o.StrictUnusedArguments)
}
