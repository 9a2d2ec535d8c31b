// SPDX-License-Identifier: MIT

package catalog

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a catalogue file format.
type Format string

// Supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat accepts a format name or a file extension with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}

	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return "", errors.WithHint(err, "use a .toml, .yaml, .yml or .json file")
	}

	return f, nil
}

// Load reads and validates the catalogue at path.
func Load(path string) (*Catalog, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: open")
	}
	defer fh.Close()

	c, err := Decode(fh, f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return c, nil
}

// Decode reads a catalogue in format f and validates it. Unknown keys are
// rejected.
func Decode(r io.Reader, f Format) (*Catalog, error) {
	var c Catalog
	switch f {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&c)
		if err != nil {
			return nil, invalid(err, "decode toml")
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			sort.Strings(names)
			return nil, errors.Wrapf(ErrInvalidCatalog, "unknown keys: %s", strings.Join(names, ", "))
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, invalid(err, "decode yaml")
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, invalid(err, "decode json")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", f)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Encode writes c in format f.
func Encode(w io.Writer, c *Catalog, f Format) error {
	switch f {
	case TOML:
		return errors.Wrap(gotoml.NewEncoder(w).Encode(c), "catalog: encode toml")
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return errors.Wrap(err, "catalog: encode yaml")
		}
		return errors.Wrap(enc.Close(), "catalog: encode yaml")
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(c), "catalog: encode json")
	}

	return errors.Wrapf(ErrUnsupportedFormat, "%q", f)
}

func invalid(err error, msg string) error {
	return errors.Wrapf(ErrInvalidCatalog, "%s: %v", msg, err)
}
