package formula

import (
	"testing"

	"github.com/duat-editor/duatflake/mod/module"
)

func TestNewContext(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		tc       Toolchain
		wantErr  bool
	}{
		{"nightly", "x86_64-linux", Nightly, false},
		{"pinned stable", "aarch64-darwin", Toolchain{Name: "rust", Channel: "stable", Version: "1.86.0"}, false},
		{"short version", "aarch64-darwin", Toolchain{Name: "rust", Channel: "stable", Version: "1.86"}, false},
		{"empty platform", "", Nightly, true},
		{"bad platform", "linux", Nightly, true},
		{"no toolchain name", "x86_64-linux", Toolchain{Channel: "nightly"}, true},
		{"unknown channel", "x86_64-linux", Toolchain{Name: "rust", Channel: "canary"}, true},
		{"bad version", "x86_64-linux", Toolchain{Name: "rust", Channel: "stable", Version: "latest"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := NewContext(tt.platform, tt.tc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && ctx.Platform != tt.platform {
				t.Errorf("NewContext().Platform = %q, want %q", ctx.Platform, tt.platform)
			}
		})
	}
}

func TestNewContext_CopiesComponents(t *testing.T) {
	tc := Toolchain{Name: "rust", Channel: "nightly", Components: []string{"rust-src"}}
	ctx, err := NewContext("x86_64-linux", tc)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	tc.Components[0] = "mutated"
	if got := ctx.Toolchain.Components[0]; got != "rust-src" {
		t.Errorf("Context.Toolchain.Components[0] = %q, want %q", got, "rust-src")
	}
}

func TestContext_ArchOS(t *testing.T) {
	ctx, err := NewContext("aarch64-darwin", Nightly)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	if ctx.Arch() != "aarch64" || ctx.OS() != "darwin" {
		t.Errorf("Context Arch/OS = %q/%q, want aarch64/darwin", ctx.Arch(), ctx.OS())
	}
}

func TestContext_ToolchainInput(t *testing.T) {
	tests := []struct {
		tc   Toolchain
		want module.Version
	}{
		{Nightly, module.Version{Path: "rust-toolchain", Version: "nightly"}},
		{Toolchain{Name: "rust", Channel: "stable", Version: "1.86.0"}, module.Version{Path: "rust-toolchain", Version: "1.86.0"}},
		{Toolchain{Name: "rust", Channel: "stable", Version: "v1.86"}, module.Version{Path: "rust-toolchain", Version: "1.86.0"}},
	}

	for _, tt := range tests {
		ctx, err := NewContext("x86_64-linux", tt.tc)
		if err != nil {
			t.Fatalf("NewContext(%+v) error = %v", tt.tc, err)
		}
		if got := ctx.ToolchainInput(); got != tt.want {
			t.Errorf("Context{%+v}.ToolchainInput() = %v, want %v", tt.tc, got, tt.want)
		}
	}

	bad := Toolchain{Name: "rust", Channel: "beta", Version: "bogus"}
	if _, err := NewContext("x86_64-linux", bad); err == nil {
		t.Errorf("NewContext(%+v) accepted a toolchain whose input would be wrong", bad)
	}
}
