package formula

import (
	"fmt"
	"slices"
	"strings"
)

// -----------------------------------------------------------------------------

// Matrix enumerates the platforms a project is built for. A platform
// identifier is an architecture and an operating system joined with "-",
// e.g. "x86_64-linux".
type Matrix struct {
	Arch []string
	OS   []string
}

// DefaultSystems is the platform matrix projects are built for unless they
// declare their own.
var DefaultSystems = Matrix{
	Arch: []string{"x86_64", "aarch64"},
	OS:   []string{"linux", "darwin"},
}

// Platforms returns all platform identifiers of the matrix.
// Architectures vary slowest, in declaration order; duplicates are dropped.
func (m Matrix) Platforms() []string {
	if len(m.Arch) == 0 || len(m.OS) == 0 {
		return nil
	}
	result := make([]string, 0, len(m.Arch)*len(m.OS))
	for _, arch := range m.Arch {
		for _, os := range m.OS {
			id := arch + "-" + os
			if !slices.Contains(result, id) {
				result = append(result, id)
			}
		}
	}
	return result
}

// Contains reports whether platform is one of the matrix platforms.
func (m Matrix) Contains(platform string) bool {
	return slices.Contains(m.Platforms(), platform)
}

// SplitPlatform splits a platform identifier into its architecture and
// operating system. The architecture is everything before the last "-".
func SplitPlatform(platform string) (arch, os string, err error) {
	i := strings.LastIndexByte(platform, '-')
	if i <= 0 || i == len(platform)-1 {
		return "", "", fmt.Errorf("invalid platform identifier %q: want <arch>-<os>", platform)
	}
	return platform[:i], platform[i+1:], nil
}

// -----------------------------------------------------------------------------
