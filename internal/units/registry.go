// Package units implements the build unit registry of a project: a mapping
// from unit name to unit specification, bound to the toolchain context the
// units are built under.
//
// A Registry is populated once and then only read. Reads never mutate it, so
// any number of goroutines may resolve against the same Registry.
package units

import (
	"slices"
	"sort"

	"github.com/duat-editor/duatflake/formula"
)

// Registry maps unit names to their specifications.
type Registry struct {
	ctx     *formula.Context // owning toolchain context, lookup only
	primary string
	strict  bool
	systems formula.Matrix
	units   map[string]*formula.Unit
}

// Option configures a Registry.
type Option func(*Registry)

// Strict makes Register fail with a *DuplicateUnitError when a name is
// registered twice instead of replacing the earlier entry.
func Strict() Option {
	return func(r *Registry) {
		r.strict = true
	}
}

// Systems sets the platforms the project is built for, in place of
// formula.DefaultSystems.
func Systems(m formula.Matrix) Option {
	return func(r *Registry) {
		r.systems = m
	}
}

// New creates an empty registry for units built under ctx. primary names the
// unit that produces the project's release package.
func New(ctx *formula.Context, primary string, opts ...Option) *Registry {
	r := &Registry{
		ctx:     ctx,
		primary: primary,
		systems: formula.DefaultSystems,
		units:   make(map[string]*formula.Unit),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts the unit spec under name.
//
// Registering a name that is already present replaces the earlier spec
// (last write wins), unless the registry was created with Strict, in which
// case a *DuplicateUnitError is returned and the registry is unchanged.
// The registry keeps its own copy of spec; later changes to spec are not
// seen. An empty spec.Name stands for name; a differing spec.Name is an error.
func (r *Registry) Register(name string, spec *formula.Unit) error {
	if spec == nil {
		return spec.Validate()
	}
	u := spec.Clone()
	if u.Name == "" {
		u.Name = name
	}
	if err := u.Validate(); err != nil {
		return err
	}
	if u.Name != name {
		return &NameMismatchError{Name: name, UnitName: u.Name}
	}
	if _, ok := r.units[name]; ok && r.strict {
		return &DuplicateUnitError{Name: name}
	}
	r.units[name] = u
	return nil
}

// Lookup returns the unit registered under name. The unit is shared by all
// callers and must not be modified.
func (r *Registry) Lookup(name string) (*formula.Unit, error) {
	if u, ok := r.units[name]; ok {
		return u, nil
	}
	return nil, &UnknownUnitError{Name: name}
}

// Primary returns the name of the unit producing the release package.
func (r *Registry) Primary() string {
	return r.primary
}

// Context returns the toolchain context the registry was created for.
func (r *Registry) Context() *formula.Context {
	return r.ctx
}

// Systems returns the platform matrix the project is built for.
func (r *Registry) Systems() formula.Matrix {
	return r.systems
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}

// Names returns the registered unit names, primary first and the rest
// sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		if name != r.primary {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := r.units[r.primary]; ok {
		names = slices.Insert(names, 0, r.primary)
	}
	return names
}
