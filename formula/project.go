package formula

import "io/fs"

// -----------------------------------------------------------------------------

// Project is a project root: the name its definition file declares it
// under, and the file system that definition file is read from.
type Project struct {
	Name  string
	DirFS fs.FS
}

// ReadFile reads the file at path, relative to the project root. A missing
// file is reported as fs.ErrNotExist.
func (p *Project) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(p.DirFS, path)
}

// -----------------------------------------------------------------------------
