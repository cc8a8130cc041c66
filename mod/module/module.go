// Package module defines the module.Version type used to reference build
// inputs along with support code.
package module

import (
	"fmt"
	"strings"
)

// A Version references a build input: a package identified by its path,
// optionally pinned to a version. Build inputs are opaque to the composition
// layer; they are carried through to the external toolchain untouched.
type Version struct {
	Path    string // Package path, e.g. "pkg-config" or "rust-toolchain"
	Version string // Version string (e.g., "nightly", "1.86.0"); may be empty
}

// String returns the "path@version" form of v, or just the path when v is
// not pinned.
func (v Version) String() string {
	if v.Version == "" {
		return v.Path
	}
	return v.Path + "@" + v.Version
}

// Parse parses a build input reference in the form "path@version" or "path".
// The last '@' separates the version, so paths may themselves contain '@'.
func Parse(arg string) (Version, error) {
	arg = strings.TrimSpace(arg)
	path, version := arg, ""
	if i := strings.LastIndexByte(arg, '@'); i >= 0 {
		path, version = arg[:i], arg[i+1:]
	}
	if path == "" {
		return Version{}, fmt.Errorf("invalid build input %q: empty path", arg)
	}
	return Version{Path: path, Version: version}, nil
}

// ParseAll parses each element of args with Parse, preserving order.
func ParseAll(args []string) ([]Version, error) {
	if len(args) == 0 {
		return nil, nil
	}
	vers := make([]Version, 0, len(args))
	for _, arg := range args {
		v, err := Parse(arg)
		if err != nil {
			return nil, err
		}
		vers = append(vers, v)
	}
	return vers, nil
}
