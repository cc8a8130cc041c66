package units

import "fmt"

// UnknownUnitError is returned by Lookup for a name that was never registered.
type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown build unit %q", e.Name)
}

// DuplicateUnitError is returned by Register on a Strict registry when the
// name is already registered.
type DuplicateUnitError struct {
	Name string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("build unit %q already registered", e.Name)
}

// NameMismatchError is returned by Register when the spec carries a name
// other than the one it is registered under.
type NameMismatchError struct {
	Name     string
	UnitName string
}

func (e *NameMismatchError) Error() string {
	return fmt.Sprintf("cannot register build unit %q under name %q", e.UnitName, e.Name)
}
