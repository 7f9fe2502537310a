package cli

import (
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/ardnew/yaf/log"
)

// decodeFunc unmarshals a settings document.
type decodeFunc func(data []byte, v any) error

// decoders maps settings file extensions to their decoders.
var decoders = map[string]decodeFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// loaderFor returns the [kong.ConfigurationLoader] for the settings file at
// path, chosen by its extension. Unknown extensions are read as YAML, which
// also accepts JSON.
func loaderFor(path string) kong.ConfigurationLoader {
	dec, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		dec = yaml.Unmarshal
	}

	return load(path, dec)
}

// load is a [kong.ConfigurationLoader] that reads flag defaults from a
// settings document.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(load(path, toml.Unmarshal), path)
//
// Keys name flags without the leading dashes. Nested tables are joined with
// hyphens, so these settings are equivalent:
//
//	log-level = "debug"
//	log_level = "debug"
//
//	[log]
//	level = "debug"
//
// Command-line flags override settings values. A malformed document is
// reported and ignored.
func load(path string, decode decodeFunc) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var doc map[string]any

		err = decode(data, &doc)
		if err != nil {
			log.Warn("ignoring invalid settings",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)

			return settings{}, nil
		}

		s := make(settings)
		s.flatten("", doc)

		return s, nil
	}
}

// settings implements [kong.Resolver] for flattened settings documents.
type settings map[string]any

// Validate implements [kong.Resolver].
func (settings) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (s settings) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but settings keys
	// may use underscores. Try both forms.
	if value, ok := s[flag.Name]; ok {
		return value, nil
	}

	if value, ok := s[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flatten stores the leaves of doc under hyphen-joined keys.
func (s settings) flatten(prefix string, doc map[string]any) {
	for key, val := range doc {
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := val.(map[string]any); ok {
			s.flatten(key, sub)

			continue
		}

		s[key] = native(val)
	}
}

// native converts decoded numbers to strings, which kong parses with the
// flag's own mapper.
func native(val any) any {
	switch v := val.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = native(e)
		}

		return out
	default:
		return v
	}
}
