package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/evdef/log"
)

// resolve is a [kong.ConfigurationLoader] for YAML configuration files like
// the one written by "evdef init":
//
//	log-level: debug
//	log-pretty: false
//	format: json
//
// Keys may use '-' or '_' between words, and nested mappings join their
// keys with '-', so the following is equivalent:
//
//	log:
//	  level: debug
//	  pretty: false
//	format: json
//
// A file that is not valid YAML is ignored with a warning. Command-line
// flags override configuration values.
func resolve(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Warn("ignoring invalid configuration", slog.Any("error", err))

		return config{}, nil
	}

	cfg := config{}
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] over flattened configuration keys.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := c[configKey(flag.Name)]; ok {
		return v, nil
	}

	return nil, nil //nolint:nilnil
}

// configKey is the canonical form of a key: lower case with '-' between
// words.
func configKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", "-"))
}

func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := configKey(k)
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := v.(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = flagValue(v)
	}
}

// flagValue converts a decoded YAML value to a form kong can decode into a
// flag. Numbers become strings; lists keep their shape.
func flagValue(v any) any {
	switch v := v.(type) {
	case nil, bool, string:
		return v

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = flagValue(item)
		}

		return out
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)

	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)

	default:
		return fmt.Sprint(v)
	}
}
