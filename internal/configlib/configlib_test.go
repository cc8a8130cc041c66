package configlib

import (
	"path/filepath"
	"testing"

	"github.com/duat-editor/duatflake/formula"
	"github.com/google/go-cmp/cmp"
)

func TestLibraryName(t *testing.T) {
	tests := map[string]string{
		"linux":   "libconfig.so",
		"darwin":  "libconfig.dylib",
		"windows": "config.dll",
		"freebsd": "libconfig.so",
	}
	for os, want := range tests {
		if got := LibraryName(os); got != want {
			t.Errorf("LibraryName(%q) = %q, want %q", os, got, want)
		}
	}
}

func TestTargetTriple(t *testing.T) {
	tests := []struct {
		arch, os string
		want     string
		wantErr  bool
	}{
		{"x86_64", "linux", "x86_64-unknown-linux-gnu", false},
		{"aarch64", "darwin", "aarch64-apple-darwin", false},
		{"x86_64", "windows", "x86_64-pc-windows-msvc", false},
		{"x86_64", "plan9", "", true},
	}
	for _, tt := range tests {
		got, err := targetTriple(tt.arch, tt.os)
		if (err != nil) != tt.wantErr {
			t.Errorf("targetTriple(%q, %q) error = %v, wantErr %v", tt.arch, tt.os, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("targetTriple(%q, %q) = %q, want %q", tt.arch, tt.os, got, tt.want)
		}
	}
}

func TestCandidates(t *testing.T) {
	ctx, err := formula.NewContext("aarch64-darwin", formula.Nightly)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Candidates("/home/u/dotfiles/duat", ctx, Debug)
	if err != nil {
		t.Fatalf("Candidates() error = %v", err)
	}
	want := []string{
		filepath.Join("/home/u/dotfiles/duat", "target", "debug", "libconfig.dylib"),
		filepath.Join("/home/u/dotfiles/duat", "target", "aarch64-apple-darwin", "debug", "libconfig.dylib"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Candidates() mismatch (-want +got):\n%s", diff)
	}

	plan9, err := formula.NewContext("x86_64-plan9", formula.Nightly)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Candidates("/home/u/dotfiles/duat", plan9, Debug); err == nil {
		t.Error("Candidates() expected error for a platform without a target triple")
	}
}

func TestBuildArgs(t *testing.T) {
	manifest := filepath.Join("cfg", ManifestFile)
	if diff := cmp.Diff([]string{"cargo", "build", "--manifest-path", manifest, "--release"}, BuildArgs("cfg", Release)); diff != "" {
		t.Errorf("BuildArgs(Release) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"cargo", "build", "--manifest-path", manifest}, BuildArgs("cfg", Debug)); diff != "" {
		t.Errorf("BuildArgs(Debug) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProfile(t *testing.T) {
	for _, p := range []Profile{Release, Debug} {
		got, err := ParseProfile(p.String())
		if err != nil || got != p {
			t.Errorf("ParseProfile(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParseProfile("fast"); err == nil {
		t.Error("ParseProfile(fast) expected error")
	}
}
