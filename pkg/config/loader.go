package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/chubbymaggie/ecstasy/pkg/errors"
)

const envPrefix = "ECSTASY_"

// Load builds Options from defaults, the user's config file (if one
// exists under the XDG config directory) and ECSTASY_* environment
// variables, in that order of precedence.
func Load() (*Options, error) {
	return load(findConfigFile())
}

// LoadFrom is Load with an explicit config file path. The file must
// exist.
func LoadFrom(path string) (*Options, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", path)
	}
	return load(path)
}

func load(path string) (*Options, error) {
	k := koanf.New(".")

	defaults := Default().toFileOptions()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"escape":                  defaults.Escape,
		"separator":               defaults.Separator,
		"open":                    defaults.Open,
		"body_open":               defaults.BodyOpen,
		"body_close":              defaults.BodyClose,
		"strict_unused_arguments": defaults.StrictUnusedArguments,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "loading config from %s", path)
		}
	}

	// ECSTASY_STRICT_UNUSED_ARGUMENTS=true, ECSTASY_ESCAPE=~, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment")
	}

	var f fileOptions
	if err := k.Unmarshal("", &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "unmarshaling config")
	}
	return f.toOptions()
}

// findConfigFile looks for ecstasy.toml or ecstasy.yaml under the XDG
// config directory, returning "" when neither exists.
func findConfigFile() string {
	for _, name := range []string{"ecstasy.toml", "ecstasy.yaml"} {
		path := filepath.Join(xdg.ConfigHome, "ecstasy", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return koanfyaml.Parser()
	default:
		return koanftoml.Parser()
	}
}
