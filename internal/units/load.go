package units

import (
	"fmt"

	"github.com/duat-editor/duatflake/formula"
	"github.com/duat-editor/duatflake/mod/module"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ProjectFile is the name of the project definition file in a project root.
//
// A project definition looks like:
//
//	project "duat" {
//	  primary = "duat"
//
//	  unit "duat" {
//	    source    = "."
//	    toolchain = true
//	  }
//	  unit "duat-core" {
//	    source = "duat-core"
//	    inputs = ["pkg-config"]
//	  }
//	}
//
// A project may narrow the platforms it is built for with arch and os
// lists; an omitted list keeps the axis of formula.DefaultSystems.
const ProjectFile = "flake.hcl"

type projectFile struct {
	Projects []projectBlock `hcl:"project,block"`
}

type projectBlock struct {
	Name    string      `hcl:"name,label"`
	Primary string      `hcl:"primary"`
	Strict  bool        `hcl:"strict,optional"`
	Arch    []string    `hcl:"arch,optional"`
	OS      []string    `hcl:"os,optional"`
	Units   []unitBlock `hcl:"unit,block"`
}

type unitBlock struct {
	Name      string   `hcl:"name,label"`
	Source    string   `hcl:"source"`
	Inputs    []string `hcl:"inputs,optional"`
	Toolchain bool     `hcl:"toolchain,optional"`
}

// Load builds the registry of proj from its ProjectFile, for units built
// under ctx. Units declared twice follow the Register semantics of the
// registry: the later declaration wins unless the project sets strict.
func Load(proj *formula.Project, ctx *formula.Context) (*Registry, error) {
	src, err := proj.ReadFile(ProjectFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	return Parse(proj.Name, ProjectFile, src, ctx)
}

// Parse builds the registry of the project named name from the HCL source
// src. filename is only used in diagnostics.
func Parse(name, filename string, src []byte, ctx *formula.Context) (*Registry, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse project file %s: %w", filename, diags)
	}
	var pf projectFile
	if diags := gohcl.DecodeBody(file.Body, nil, &pf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode project file %s: %w", filename, diags)
	}

	var block *projectBlock
	for i := range pf.Projects {
		if pf.Projects[i].Name == name {
			block = &pf.Projects[i]
			break
		}
	}
	if block == nil {
		return nil, fmt.Errorf("failed to load project: no project %q in %s", name, filename)
	}

	var opts []Option
	if block.Strict {
		opts = append(opts, Strict())
	}
	if block.Arch != nil || block.OS != nil {
		m := formula.DefaultSystems
		if block.Arch != nil {
			m.Arch = block.Arch
		}
		if block.OS != nil {
			m.OS = block.OS
		}
		opts = append(opts, Systems(m))
	}
	reg := New(ctx, block.Primary, opts...)
	for _, ub := range block.Units {
		inputs, err := module.ParseAll(ub.Inputs)
		if err != nil {
			return nil, fmt.Errorf("failed to load unit %q: %w", ub.Name, err)
		}
		if ub.Toolchain {
			inputs = append([]module.Version{ctx.ToolchainInput()}, inputs...)
		}
		spec := &formula.Unit{
			Name:   ub.Name,
			Source: ub.Source,
			Inputs: inputs,
		}
		if err := reg.Register(ub.Name, spec); err != nil {
			return nil, fmt.Errorf("failed to load unit %q: %w", ub.Name, err)
		}
	}
	return reg, nil
}
