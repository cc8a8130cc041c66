package formula

import (
	"fmt"
	"slices"

	"github.com/duat-editor/duatflake/mod/module"
)

// Unit is the specification of a build unit: a named, independently
// buildable component of a project.
type Unit struct {
	Name   string           `validate:"required,excludesall=@"`
	Inputs []module.Version // extra build inputs, in order
	Source string           `validate:"required"` // source path, relative to the project root
}

// Validate reports whether u is well formed.
func (u *Unit) Validate() error {
	if u == nil {
		return fmt.Errorf("invalid unit: nil")
	}
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("invalid unit %q: %w", u.Name, err)
	}
	for _, in := range u.Inputs {
		if in.Path == "" {
			return fmt.Errorf("invalid unit %q: build input with empty path", u.Name)
		}
	}
	return nil
}

// Clone returns a deep copy of u.
func (u *Unit) Clone() *Unit {
	c := *u
	c.Inputs = slices.Clone(u.Inputs)
	return &c
}
