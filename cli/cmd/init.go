package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/evdef/log"
	"github.com/ardnew/evdef/profile"
)

// defaultConfigIndent is the indent width of the generated configuration.
const defaultConfigIndent = 2

// configIgnore lists flag name prefixes that never go into the configuration
// file.
//
//nolint:gochecknoglobals
var configIgnore = []string{"help", "version", "source", profile.Tag}

// Init writes the current flag values to the YAML configuration file.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	path, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	if _, err := os.Stat(path); err == nil && !i.Force {
		return ErrWriteConfig.Wrap(ErrFileExists).With(slog.String("file", path))
	}

	data, err := yaml.MarshalWithOptions(
		i.settings(ktx),
		yaml.Indent(defaultConfigIndent),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ErrWriteConfig.Wrap(err).With(slog.String("file", path))
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", path),
	)

	return nil
}

// settings collects every configurable flag with a value, in model order.
func (i *Init) settings(ktx *kong.Context) yaml.MapSlice {
	var out yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(configIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v, ok := configValue(reflect.ValueOf(ktx.FlagValue(flag))); ok {
			out = append(out, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return out
}

// configValue converts a flag value to a plain YAML value. Empty strings and
// empty lists report false, leaving the flag default in force.
func configValue(v reflect.Value) (any, bool) {
	switch v.Kind() {
	case reflect.Invalid:
		return nil, false

	case reflect.String:
		if v.Len() == 0 {
			return nil, false
		}

		return v.String(), true

	case reflect.Bool:
		return v.Bool(), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), true

	case reflect.Float32, reflect.Float64:
		return v.Float(), true

	case reflect.Slice, reflect.Array:
		items := make([]any, 0, v.Len())

		for j := range v.Len() {
			if item, ok := configValue(v.Index(j)); ok {
				items = append(items, item)
			}
		}

		return items, len(items) > 0

	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, false
		}

		return configValue(v.Elem())

	default:
		return fmt.Sprint(v.Interface()), true
	}
}
