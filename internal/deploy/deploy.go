// Package deploy evaluates the options of the Duat configuration module
// into a deployment effect: the packages to make available and the files to
// place. Evaluation is pure; applying the effect is left to the installer.
package deploy

import (
	"strings"

	"github.com/duat-editor/duatflake/internal/options"
	"github.com/duat-editor/duatflake/internal/resolve"
)

// DefaultConfigRoot is the per-user configuration root effect targets are
// relative to.
const DefaultConfigRoot = "~/.config"

// ConfigDirName is the directory the configuration is linked to under the
// configuration root.
const ConfigDirName = "duat"

// State is the state an evaluation ends in.
type State int

const (
	// Disabled produces the empty effect.
	Disabled State = iota
	// Enabled installs the selected package and links the configuration.
	Enabled
)

func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}
	return "disabled"
}

// Link places the file tree at Source at Target.
type Link struct {
	Target string `yaml:"target"`
	Source string `yaml:"source"`
}

// Effect is what an installer must do to deploy the module.
type Effect struct {
	Packages []*resolve.Artifact
	Links    []Link
}

// Empty reports whether e installs nothing and places nothing.
func (e Effect) Empty() bool {
	return len(e.Packages) == 0 && len(e.Links) == 0
}

// Result is the outcome of an evaluation: Disabled with the empty effect,
// or Enabled with the effect to apply.
type Result struct {
	State  State
	effect Effect
}

// Effect returns the effect of r. It is empty unless r is Enabled.
func (r Result) Effect() Effect {
	return r.effect
}

// ConfigDir returns the conventional configuration directory of Duat under
// root, with a trailing slash: "~/.config/duat/" for DefaultConfigRoot.
func ConfigDir(root string) string {
	if root == "" {
		root = DefaultConfigRoot
	}
	return strings.TrimRight(root, "/") + "/" + ConfigDirName + "/"
}

// Evaluate computes the result of v for a user whose configuration root is
// configRoot ("" means DefaultConfigRoot). It has no side effects, and
// evaluating the same v twice yields identical results.
func Evaluate(v *options.Value, configRoot string) Result {
	if !v.Enable {
		return Result{State: Disabled}
	}
	return Result{
		State: Enabled,
		effect: Effect{
			Packages: []*resolve.Artifact{v.Package},
			Links: []Link{{
				Target: ConfigDir(configRoot),
				Source: v.ConfigSource,
			}},
		},
	}
}
