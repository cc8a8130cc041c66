package units

import (
	"github.com/duat-editor/duatflake/formula"
	"github.com/duat-editor/duatflake/mod/module"
)

// Unit names of the Duat project.
const (
	Editor = "duat"       // the editor itself, producing the release package
	Core   = "duat-core"  // core abstractions
	Term   = "duat-term"  // terminal rendering
	Utils  = "duat-utils" // shared utilities
)

// Duat returns the registry of the Duat project built under ctx.
// Only the editor unit carries a build input, the one contributed by the
// toolchain; the supporting library units have none.
func Duat(ctx *formula.Context) *Registry {
	r := New(ctx, Editor, Strict())
	specs := []*formula.Unit{
		{Name: Editor, Source: ".", Inputs: []module.Version{ctx.ToolchainInput()}},
		{Name: Core, Source: "duat-core"},
		{Name: Term, Source: "duat-term"},
		{Name: Utils, Source: "duat-utils"},
	}
	for _, spec := range specs {
		if err := r.Register(spec.Name, spec); err != nil {
			// The specs above are static and valid.
			panic(err)
		}
	}
	return r
}
