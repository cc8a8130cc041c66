// Package plan renders resolved outputs and a deployment result as a YAML
// document for an external installer.
package plan

import (
	"fmt"

	"github.com/duat-editor/duatflake/internal/deploy"
	"github.com/duat-editor/duatflake/internal/resolve"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Plan is the document handed to the installer.
type Plan struct {
	Project  string            `yaml:"project"`
	Platform string            `yaml:"platform"`
	Outputs  map[string]Output `yaml:"outputs"`

	State     string        `yaml:"state"`
	Install   []string      `yaml:"install,omitempty"` // artifact references
	Links     []deploy.Link `yaml:"links,omitempty"`
	Libraries []string      `yaml:"libraries,omitempty"` // config library search paths
	Build     []string      `yaml:"build,omitempty"`     // command that builds the config library
}

// Output describes one resolved artifact.
type Output struct {
	Ref      string   `yaml:"ref"`
	Unit     string   `yaml:"unit"`
	Source   string   `yaml:"source"`
	Inputs   []string `yaml:"inputs,omitempty"`
	Packages []string `yaml:"packages,omitempty"`
}

// NewOutput describes a.
func NewOutput(a *resolve.Artifact) Output {
	out := Output{
		Ref:    a.Ref(),
		Unit:   a.Unit.Name,
		Source: a.Unit.Source,
	}
	for _, in := range a.Unit.Inputs {
		out.Inputs = append(out.Inputs, in.String())
	}
	for _, p := range a.Packages {
		out.Packages = append(out.Packages, p.String())
	}
	return out
}

// New builds the plan of project on platform from its named outputs and
// the result of evaluating its options.
func New(project, platform string, outputs map[string]*resolve.Artifact, r deploy.Result) *Plan {
	p := &Plan{
		Project:  project,
		Platform: platform,
		Outputs:  make(map[string]Output, len(outputs)),
		State:    r.State.String(),
	}
	for name, a := range outputs {
		p.Outputs[name] = NewOutput(a)
	}
	e := r.Effect()
	for _, a := range e.Packages {
		p.Install = append(p.Install, a.Ref())
	}
	p.Links = append(p.Links, e.Links...)
	return p
}

// Marshal renders p as YAML.
func (p *Plan) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	return data, nil
}

// Write atomically replaces the file at path with p rendered as YAML.
func Write(path string, p *Plan) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("failed to create plan file: %w", err)
	}
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace plan file: %w", err)
	}
	return nil
}
