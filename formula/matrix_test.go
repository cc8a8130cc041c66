package formula

import (
	"reflect"
	"testing"
)

func TestMatrix_Platforms(t *testing.T) {
	tests := []struct {
		name   string
		matrix Matrix
		want   []string
	}{
		{
			name:   "default systems",
			matrix: DefaultSystems,
			want: []string{
				"x86_64-linux",
				"x86_64-darwin",
				"aarch64-linux",
				"aarch64-darwin",
			},
		},
		{
			name:   "single platform",
			matrix: Matrix{Arch: []string{"x86_64"}, OS: []string{"linux"}},
			want:   []string{"x86_64-linux"},
		},
		{
			name:   "duplicates dropped",
			matrix: Matrix{Arch: []string{"x86_64", "x86_64"}, OS: []string{"linux"}},
			want:   []string{"x86_64-linux"},
		},
		{
			name:   "no os",
			matrix: Matrix{Arch: []string{"x86_64"}},
			want:   nil,
		},
		{
			name:   "empty matrix",
			matrix: Matrix{},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.matrix.Platforms()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Matrix.Platforms() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix_Contains(t *testing.T) {
	if !DefaultSystems.Contains("aarch64-darwin") {
		t.Error("DefaultSystems.Contains(aarch64-darwin) = false, want true")
	}
	if DefaultSystems.Contains("x86_64-windows") {
		t.Error("DefaultSystems.Contains(x86_64-windows) = true, want false")
	}
}

func TestSplitPlatform(t *testing.T) {
	tests := []struct {
		platform string
		arch, os string
		wantErr  bool
	}{
		{"x86_64-linux", "x86_64", "linux", false},
		{"aarch64-darwin", "aarch64", "darwin", false},
		{"i686-pc-windows", "i686-pc", "windows", false},
		{"linux", "", "", true},
		{"-linux", "", "", true},
		{"x86_64-", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			arch, os, err := SplitPlatform(tt.platform)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitPlatform(%q) error = %v, wantErr %v", tt.platform, err, tt.wantErr)
			}
			if arch != tt.arch || os != tt.os {
				t.Errorf("SplitPlatform(%q) = %q, %q, want %q, %q", tt.platform, arch, os, tt.arch, tt.os)
			}
		})
	}
}
