// Package resolve resolves the named output artifacts of a project from its
// build unit registry and toolchain context.
package resolve

import (
	"fmt"
	"slices"
	"strings"

	"github.com/duat-editor/duatflake/formula"
	"github.com/duat-editor/duatflake/internal/units"
	"github.com/duat-editor/duatflake/mod/module"
)

// Kind is the kind of an output artifact.
type Kind int

const (
	// ReleasePackage is the installable package of the primary unit.
	ReleasePackage Kind = iota
	// DevEnvironment is the development environment of the project.
	DevEnvironment
)

// Output names of the two artifact kinds, as exposed to consumers.
const (
	DefaultOutput  = "default"
	DevShellOutput = "devShell"
)

func (k Kind) String() string {
	switch k {
	case ReleasePackage:
		return DefaultOutput
	case DevEnvironment:
		return DevShellOutput
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// collection returns the output collection artifacts of kind k are listed
// under in an artifact reference.
func (k Kind) collection() string {
	if k == DevEnvironment {
		return "devShells"
	}
	return "packages"
}

// ParseKind returns the kind of the named output ("default" or "devShell").
func ParseKind(name string) (Kind, error) {
	switch name {
	case DefaultOutput:
		return ReleasePackage, nil
	case DevShellOutput:
		return DevEnvironment, nil
	}
	return 0, fmt.Errorf("unknown output %q: want %q or %q", name, DefaultOutput, DevShellOutput)
}

// -----------------------------------------------------------------------------

// Artifact is a resolved output of a project for one platform.
type Artifact struct {
	Project  string
	Kind     Kind
	Unit     *formula.Unit // producing unit
	Platform string

	// Packages lists what a DevEnvironment makes available, in order.
	// It is nil for a ReleasePackage.
	Packages []module.Version
}

// Ref returns the reference consumers use to address a, e.g.
// "packages.x86_64-linux.default" or "devShells.x86_64-linux.default".
func (a *Artifact) Ref() string {
	return a.Kind.collection() + "." + a.Platform + ".default"
}

func (a *Artifact) String() string {
	return a.Project + "#" + a.Ref()
}

// ParseRef parses an artifact reference as returned by Artifact.Ref.
func ParseRef(ref string) (kind Kind, platform string, err error) {
	parts := strings.Split(ref, ".")
	if len(parts) != 3 || parts[1] == "" || parts[2] != "default" {
		return 0, "", fmt.Errorf("invalid artifact reference %q", ref)
	}
	switch parts[0] {
	case "packages":
		kind = ReleasePackage
	case "devShells":
		kind = DevEnvironment
	default:
		return 0, "", fmt.Errorf("invalid artifact reference %q: unknown collection %q", ref, parts[0])
	}
	return kind, parts[1], nil
}

// -----------------------------------------------------------------------------

// Resolve resolves the artifact of the given kind for project, produced by
// the primary unit of reg and built under ctx.
//
// For DevEnvironment, extra lists packages to make available in addition to
// the base environment: the build inputs of every unit, primary first. Extras
// are appended in order after the base; a package already present is not
// added twice and no base entry is ever dropped. Extras are rejected for
// ReleasePackage.
//
// Resolve does not modify reg or ctx.
func Resolve(project string, reg *units.Registry, ctx *formula.Context, kind Kind, extra ...module.Version) (*Artifact, error) {
	primary, err := reg.Lookup(reg.Primary())
	if err != nil {
		return nil, &MissingUnitError{Project: project, Unit: reg.Primary()}
	}

	a := &Artifact{
		Project:  project,
		Kind:     kind,
		Unit:     primary,
		Platform: ctx.Platform,
	}
	switch kind {
	case ReleasePackage:
		if len(extra) > 0 {
			return nil, fmt.Errorf("failed to resolve %s: extra packages are only supported for %s", kind, DevEnvironment)
		}
	case DevEnvironment:
		a.Packages = environment(reg, extra)
	default:
		return nil, fmt.Errorf("failed to resolve artifact: unknown kind %v", kind)
	}
	return a, nil
}

// environment returns the base environment of reg followed by extra.
func environment(reg *units.Registry, extra []module.Version) []module.Version {
	pkgs := []module.Version{}
	add := func(v module.Version) {
		if !slices.Contains(pkgs, v) {
			pkgs = append(pkgs, v)
		}
	}
	for _, name := range reg.Names() {
		u, err := reg.Lookup(name)
		if err != nil {
			continue
		}
		for _, in := range u.Inputs {
			add(in)
		}
	}
	for _, v := range extra {
		add(v)
	}
	return pkgs
}

// -----------------------------------------------------------------------------

// Outputs resolves the named outputs of project, keyed by output name.
// extra augments the development environment as in Resolve.
func Outputs(project string, reg *units.Registry, ctx *formula.Context, extra ...module.Version) (map[string]*Artifact, error) {
	pkg, err := Resolve(project, reg, ctx, ReleasePackage)
	if err != nil {
		return nil, err
	}
	shell, err := Resolve(project, reg, ctx, DevEnvironment, extra...)
	if err != nil {
		return nil, err
	}
	return map[string]*Artifact{
		DefaultOutput:  pkg,
		DevShellOutput: shell,
	}, nil
}
