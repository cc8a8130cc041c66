package formula

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestProject_ReadFile(t *testing.T) {
	proj := &Project{
		Name: "duat",
		DirFS: fstest.MapFS{
			"flake.hcl": {Data: []byte("hello")},
		},
	}

	t.Run("existing file", func(t *testing.T) {
		got, err := proj.ReadFile("flake.hcl")
		if err != nil {
			t.Fatalf("Project.ReadFile() error = %v", err)
		}
		if string(got) != "hello" {
			t.Fatalf("Project.ReadFile() = %q, want %q", string(got), "hello")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := proj.ReadFile("missing.hcl")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("Project.ReadFile() error = %v, want fs.ErrNotExist", err)
		}
	})
}
