package resolve

import "fmt"

// MissingUnitError is returned when resolution requires a unit that is not
// in the registry.
type MissingUnitError struct {
	Project string
	Unit    string
}

func (e *MissingUnitError) Error() string {
	return fmt.Sprintf("project %q: build unit %q is missing from the registry", e.Project, e.Unit)
}
