package options

import (
	"errors"
	"fmt"
	"strings"

	"github.com/duat-editor/duatflake/formula"
	"github.com/duat-editor/duatflake/internal/resolve"
	"github.com/duat-editor/duatflake/internal/units"
)

// Schema evaluates Options for one project. It holds its registry by
// reference: defaults that depend on the registry are looked up on every
// evaluation, so they track later changes to it.
type Schema struct {
	project string
	reg     *units.Registry
	ctx     *formula.Context
}

// NewSchema returns the options schema of project, whose artifacts are
// resolved from reg under ctx.
func NewSchema(project string, reg *units.Registry, ctx *formula.Context) *Schema {
	return &Schema{project: project, reg: reg, ctx: ctx}
}

// Defaults returns the default of every option. The package default is the
// name of the release package output, not a resolved artifact; it is
// resolved when Evaluate runs.
func (s *Schema) Defaults() Options {
	return Options{
		Enable:       Bool(false),
		Package:      String(resolve.DefaultOutput),
		ConfigSource: String(DefaultConfigSource),
	}
}

// Evaluate fills the options omitted from o with their defaults, checks
// every value, and resolves the selected package. It fails with an
// *InvalidOptionError naming the first offending option.
func (s *Schema) Evaluate(o Options) (*Value, error) {
	m := Merge(s.Defaults(), o)

	if err := checkPath(*m.ConfigSource); err != nil {
		return nil, &InvalidOptionError{Option: ConfigSourceOption, Err: err}
	}
	pkg, err := s.artifact(*m.Package)
	if err != nil {
		return nil, &InvalidOptionError{Option: PackageOption, Err: err}
	}
	return &Value{
		Enable:       *m.Enable,
		Package:      pkg,
		ConfigSource: *m.ConfigSource,
	}, nil
}

// artifact resolves the package option: an output name or an artifact
// reference for the schema's platform.
func (s *Schema) artifact(name string) (*resolve.Artifact, error) {
	kind, err := resolve.ParseKind(name)
	if err != nil {
		var platform string
		kind, platform, err = resolve.ParseRef(name)
		if err != nil {
			return nil, fmt.Errorf("%q is neither an output name nor an artifact reference", name)
		}
		if platform != s.ctx.Platform {
			return nil, fmt.Errorf("artifact %q is built for %s, not %s", name, platform, s.ctx.Platform)
		}
	}
	return resolve.Resolve(s.project, s.reg, s.ctx, kind)
}

func checkPath(p string) error {
	if p == "" {
		return errors.New("empty path")
	}
	if strings.ContainsRune(p, 0) {
		return errors.New("path contains a NUL byte")
	}
	return nil
}
