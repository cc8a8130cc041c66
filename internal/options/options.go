// Package options implements the options schema of the Duat configuration
// module: the settings a consumer may supply, their defaults, and their
// evaluation into a fully formed Value.
package options

import (
	"github.com/duat-editor/duatflake/internal/resolve"
)

// Option names.
const (
	EnableOption       = "enable"
	PackageOption      = "package"
	ConfigSourceOption = "configSource"
)

// DefaultConfigSource is the configSource used when none is supplied: the
// config directory next to the project definition.
const DefaultConfigSource = "./config"

// Options holds option overrides supplied by a consumer. A nil field means
// the option was omitted.
//
// Package names the artifact to install: an output name ("default",
// "devShell") or an artifact reference such as "packages.x86_64-linux.default".
type Options struct {
	Enable       *bool   `json:"enable,omitempty" yaml:"enable,omitempty"`
	Package      *string `json:"package,omitempty" yaml:"package,omitempty"`
	ConfigSource *string `json:"configSource,omitempty" yaml:"configSource,omitempty"`
}

// Merge returns base with every option set in override replaced by the
// override's value. Each option is merged independently and the last write
// wins; neither argument is modified.
func Merge(base, override Options) Options {
	merged := base
	if override.Enable != nil {
		merged.Enable = override.Enable
	}
	if override.Package != nil {
		merged.Package = override.Package
	}
	if override.ConfigSource != nil {
		merged.ConfigSource = override.ConfigSource
	}
	return merged
}

// MergeAll folds Merge over layers, left to right.
func MergeAll(layers ...Options) Options {
	var merged Options
	for _, l := range layers {
		merged = Merge(merged, l)
	}
	return merged
}

// Bool returns a pointer to b, for building Options.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for building Options.
func String(s string) *string { return &s }

// Ref returns a pointer to the reference of a, for selecting a resolved
// artifact as the package option.
func Ref(a *resolve.Artifact) *string { return String(a.Ref()) }

// Value is a fully evaluated set of options: every option has a value.
type Value struct {
	Enable       bool
	Package      *resolve.Artifact
	ConfigSource string
}
