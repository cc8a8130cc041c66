// Package configlib describes how the Duat runner finds and builds a user's
// compiled configuration: the library file it loads, the directories it
// searches, and the build command that produces it. Nothing here touches the
// file system or runs a command.
package configlib

import (
	"fmt"
	"path/filepath"

	"github.com/duat-editor/duatflake/formula"
)

// ManifestFile is the manifest of a configuration crate.
const ManifestFile = "Cargo.toml"

// Profile is a build profile of the configuration crate.
type Profile int

const (
	Release Profile = iota
	Debug
)

func (p Profile) String() string {
	if p == Debug {
		return "debug"
	}
	return "release"
}

// ParseProfile parses "release" or "debug".
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "release":
		return Release, nil
	case "debug":
		return Debug, nil
	}
	return 0, fmt.Errorf("unknown build profile %q", s)
}

// LibraryName returns the file name of the compiled configuration library
// on the operating system os.
func LibraryName(os string) string {
	switch os {
	case "darwin":
		return "libconfig.dylib"
	case "windows":
		return "config.dll"
	}
	return "libconfig.so"
}

// targetTriple returns the compiler target triple of a platform.
func targetTriple(arch, os string) (string, error) {
	switch os {
	case "linux":
		return arch + "-unknown-linux-gnu", nil
	case "darwin":
		return arch + "-apple-darwin", nil
	case "windows":
		return arch + "-pc-windows-msvc", nil
	}
	return "", fmt.Errorf("no target triple for platform %q", arch+"-"+os)
}

// Candidates returns the paths, in search order, where the runner looks for
// the configuration library built with profile inside configDir.
func Candidates(configDir string, ctx *formula.Context, profile Profile) ([]string, error) {
	triple, err := targetTriple(ctx.Arch(), ctx.OS())
	if err != nil {
		return nil, err
	}
	lib := LibraryName(ctx.OS())
	return []string{
		filepath.Join(configDir, "target", profile.String(), lib),
		filepath.Join(configDir, "target", triple, profile.String(), lib),
	}, nil
}

// BuildArgs returns the command line that builds the configuration crate in
// configDir with profile.
func BuildArgs(configDir string, profile Profile) []string {
	args := []string{"cargo", "build", "--manifest-path", filepath.Join(configDir, ManifestFile)}
	if profile == Release {
		args = append(args, "--release")
	}
	return args
}
