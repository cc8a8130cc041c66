package options

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// hclNames maps HCL attribute names to option names.
var hclNames = map[string]string{
	"config_source": ConfigSourceOption,
}

// ReadFile reads Options from an HCL (.hcl), YAML (.yaml, .yml) or JSON
// (.json) file.
func ReadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options: %w", err)
	}
	return Parse(path, data)
}

// Parse parses Options from data; the format is chosen by the extension of
// filename.
func Parse(filename string, data []byte) (Options, error) {
	var (
		raw map[string]any
		err error
	)
	switch ext := filepath.Ext(filename); ext {
	case ".hcl":
		raw, err = parseHCL(filename, data)
	case ".yaml", ".yml", ".json":
		// JSON is a subset of YAML.
		err = yaml.Unmarshal(data, &raw)
		if err != nil {
			err = fmt.Errorf("failed to parse options file %s: %w", filename, err)
		}
	default:
		err = fmt.Errorf("failed to parse options file %s: unsupported format %q", filename, ext)
	}
	if err != nil {
		return Options{}, err
	}
	return Decode(raw)
}

// parseHCL reads the top-level attributes of an HCL options file:
//
//	enable        = true
//	package       = "default"
//	config_source = "/home/u/dotfiles/duat"
//
// configSource is accepted as a spelling of config_source; setting an option
// under both names is an error.
func parseHCL(filename string, data []byte) (map[string]any, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse options file %s: %w", filename, diags)
	}
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse options file %s: %w", filename, diags)
	}

	raw := make(map[string]any, len(attrs))
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		key := name
		if n, ok := hclNames[name]; ok {
			key = n
		}
		if _, dup := raw[key]; dup {
			return nil, &InvalidOptionError{Option: key, Err: errors.New("set more than once")}
		}
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, &InvalidOptionError{Option: key, Err: diags}
		}
		if val.IsNull() {
			raw[key] = nil
			continue
		}
		v, err := goValue(val)
		if err != nil {
			return nil, &InvalidOptionError{Option: key, Err: err}
		}
		raw[key] = v
	}
	return raw, nil
}

// goValue converts a primitive cty value to its Go equivalent.
func goValue(val cty.Value) (any, error) {
	switch ty := val.Type(); {
	case ty.Equals(cty.Bool):
		return val.True(), nil
	case ty.Equals(cty.String):
		return val.AsString(), nil
	case ty.Equals(cty.Number):
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	}
	return nil, fmt.Errorf("unsupported value of type %s", val.Type().FriendlyName())
}
