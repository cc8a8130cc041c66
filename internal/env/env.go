// Package env locates the per-user directories and the host platform the
// command line works with.
package env

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/duat-editor/duatflake/formula"
)

// ConfigRoot returns the per-user configuration root installers place files
// under: $XDG_CONFIG_HOME when it is set to an absolute path, and "" otherwise,
// which deploy.ConfigDir reads as deploy.DefaultConfigRoot.
func ConfigRoot() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	return ""
}

// HostPlatform returns the platform identifier of the running machine,
// e.g. "x86_64-linux".
func HostPlatform() string {
	m := formula.Matrix{
		Arch: []string{normalizeArch(hostMachine())},
		OS:   []string{runtime.GOOS},
	}
	return m.Platforms()[0]
}

// normalizeArch maps machine names to the architecture names used in
// platform identifiers.
func normalizeArch(machine string) string {
	switch machine {
	case "amd64", "x64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "386", "i386", "i586":
		return "i686"
	}
	return machine
}
