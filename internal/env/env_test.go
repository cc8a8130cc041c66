package env

import (
	"testing"

	"github.com/duat-editor/duatflake/formula"
	"github.com/duat-editor/duatflake/internal/deploy"
)

func TestConfigRoot(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	if got := ConfigRoot(); got != "" {
		t.Errorf("ConfigRoot() = %q, want the default root", got)
	}
	if got := deploy.ConfigDir(ConfigRoot()); got != "~/.config/duat/" {
		t.Errorf("deploy.ConfigDir(ConfigRoot()) = %q, want %q", got, "~/.config/duat/")
	}

	t.Setenv("XDG_CONFIG_HOME", "/srv/config")
	if got := ConfigRoot(); got != "/srv/config" {
		t.Errorf("ConfigRoot() = %q, want %q", got, "/srv/config")
	}

	// Relative values are ignored, as the XDG base directory spec requires.
	t.Setenv("XDG_CONFIG_HOME", "relative")
	if got := ConfigRoot(); got != "" {
		t.Errorf("ConfigRoot() = %q, want the default root", got)
	}
}

func TestHostPlatform(t *testing.T) {
	p := HostPlatform()
	arch, os, err := formula.SplitPlatform(p)
	if err != nil {
		t.Fatalf("HostPlatform() = %q: %v", p, err)
	}
	if arch == "amd64" || arch == "arm64" {
		t.Errorf("HostPlatform() arch = %q, want a normalized name", arch)
	}
	if os == "" {
		t.Errorf("HostPlatform() os is empty")
	}
	if p != HostPlatform() {
		t.Error("HostPlatform() is not stable")
	}
}

func TestNormalizeArch(t *testing.T) {
	tests := map[string]string{
		"amd64":   "x86_64",
		"x86_64":  "x86_64",
		"arm64":   "aarch64",
		"aarch64": "aarch64",
		"i386":    "i686",
		"riscv64": "riscv64",
	}
	for in, want := range tests {
		if got := normalizeArch(in); got != want {
			t.Errorf("normalizeArch(%q) = %q, want %q", in, got, want)
		}
	}
}
