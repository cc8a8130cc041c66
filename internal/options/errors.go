package options

import "fmt"

// InvalidOptionError is returned when a supplied option value violates the
// type or reference constraint of its option.
type InvalidOptionError struct {
	Option string
	Err    error
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid value for option %q: %v", e.Option, e.Err)
}

func (e *InvalidOptionError) Unwrap() error {
	return e.Err
}
