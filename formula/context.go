package formula

import (
	"fmt"
	"strings"

	"github.com/duat-editor/duatflake/mod/module"
	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
)

// validate is shared by all struct validation in this package.
// A *validator.Validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// -----------------------------------------------------------------------------

// Toolchain describes the compiler toolchain units are built with.
// It is opaque to the composition layer apart from the build input it
// contributes to the primary unit.
type Toolchain struct {
	Name       string   `validate:"required,excludesall=@"`
	Channel    string   `validate:"required,oneof=stable beta nightly"`
	Version    string   // optional release, e.g. "1.86.0"
	Components []string // extra components, e.g. "rust-src"
}

// Nightly is the toolchain Duat is built with; the editor relies on
// unstable language features.
var Nightly = Toolchain{
	Name:       "rust",
	Channel:    "nightly",
	Components: []string{"rust-src", "rust-analyzer"},
}

// canonicalVersion returns the canonical semantic version of t.Version
// without the "v" prefix, or "" when no version is pinned.
func (t Toolchain) canonicalVersion() (string, error) {
	if t.Version == "" {
		return "", nil
	}
	v := t.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid toolchain version %q", t.Version)
	}
	return strings.TrimPrefix(semver.Canonical(v), "v"), nil
}

// input returns the build input contributed by t. t must have passed
// canonicalVersion.
func (t Toolchain) input() module.Version {
	ver := t.Channel
	if v, _ := t.canonicalVersion(); v != "" {
		ver = v
	}
	return module.Version{Path: t.Name + "-toolchain", Version: ver}
}

// -----------------------------------------------------------------------------

// Context is the toolchain context every unit of a project is built under:
// the target platform and the compiler toolchain. A Context is immutable
// once created by NewContext.
type Context struct {
	Platform  string `validate:"required"`
	Toolchain Toolchain
}

// NewContext creates the toolchain context for the given platform
// identifier (e.g. "x86_64-linux").
func NewContext(platform string, tc Toolchain) (*Context, error) {
	ctx := &Context{
		Platform:  platform,
		Toolchain: tc,
	}
	if err := validate.Struct(ctx); err != nil {
		return nil, fmt.Errorf("failed to create toolchain context: %w", err)
	}
	if _, _, err := SplitPlatform(platform); err != nil {
		return nil, fmt.Errorf("failed to create toolchain context: %w", err)
	}
	if _, err := tc.canonicalVersion(); err != nil {
		return nil, fmt.Errorf("failed to create toolchain context: %w", err)
	}
	ctx.Toolchain.Components = append([]string(nil), tc.Components...)
	return ctx, nil
}

// OS returns the operating system part of the context platform.
func (c *Context) OS() string {
	_, os, _ := SplitPlatform(c.Platform)
	return os
}

// Arch returns the architecture part of the context platform.
func (c *Context) Arch() string {
	arch, _, _ := SplitPlatform(c.Platform)
	return arch
}

// ToolchainInput returns the build input contributed by the context
// toolchain, e.g. "rust-toolchain@nightly", or "rust-toolchain@1.86.0" when
// a release is pinned. c must come from NewContext, which rejects toolchain
// versions that are not semantic versions.
func (c *Context) ToolchainInput() module.Version {
	return c.Toolchain.input()
}

// -----------------------------------------------------------------------------
