// Package config loads the textcompress configuration: built-in defaults,
// then an optional YAML file, then TEXTCODEC_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	kYaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables; the rest is lowercased
// and '_' becomes the key delimiter, so TEXTCODEC_LOGGER_LEVEL sets
// "logger.level".  Keys therefore never contain '_' or '-'.
const EnvPrefix = "TEXTCODEC_"

// Defaults holds the value of every key that has one.
var Defaults = map[string]interface{}{
	"input":              "sample_text.txt",
	"output":             "",
	"rle":                false,
	"logger.level":       "info",
	"logger.prettier":    true,
	"logger.timeformat": time.RFC3339,
}

// Conf is a koanf instance with getters that fall back to a default when a
// key is absent.
type Conf struct {
	*koanf.Koanf
}

// Load builds a Conf.  path names a YAML file and may be empty; a path that
// does not exist is an error.
func Load(path string) (*Conf, error) {
	conf := &Conf{Koanf: koanf.New(".")}

	if err := conf.Load(confmap.Provider(Defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := conf.Load(file.Provider(path), kYaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := conf.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	return conf, nil
}

// Bool returns the bool at path, or defaultValues[0] if path is not set.
func (c *Conf) Bool(path string, defaultValues ...bool) bool {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Bool(path)
}

// String returns the string at path, or defaultValues[0] if path is not set.
func (c *Conf) String(path string, defaultValues ...string) string {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.String(path)
}
