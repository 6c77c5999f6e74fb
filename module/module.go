// Package module discovers gada modules on a filesystem.
//
// A module is any directory containing a gada.yml manifest declaring
// the nodes it provides. Discovery walks an fs.FS so callers can point
// it at the real filesystem or at an in-memory tree in tests.
package module

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// YMLName is the manifest filename looked up in every module directory.
const YMLName = "gada.yml"

// Config is a raw gada.yml manifest. Node entries are kept as decoded
// maps; turning them into node definitions is the node package's job.
type Config struct {
	Nodes []map[string]any `yaml:"nodes"`
}

// YMLPath returns the manifest path of the module directory dir.
func YMLPath(dir string) string {
	return path.Join(dir, YMLName)
}

// Name returns the dotted module name of a directory path, e.g.
// "foo/bar" becomes "foo.bar".
func Name(dir string) string {
	return strings.ReplaceAll(dir, "/", ".")
}

// LoadYML reads and decodes the gada.yml manifest of dir.
func LoadYML(fsys fs.FS, dir string) (*Config, error) {
	data, err := fs.ReadFile(fsys, YMLPath(dir))
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", YMLPath(dir), err)
	}
	return &cfg, nil
}

func hasYML(fsys fs.FS, dir string) bool {
	info, err := fs.Stat(fsys, YMLPath(dir))
	return err == nil && !info.IsDir()
}

// IterModules returns the top-level module directories of fsys. See
// WalkModules for the recursive version.
func IterModules(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	dirs := lo.FilterMap(entries, func(entry fs.DirEntry, _ int) (string, bool) {
		if !entry.IsDir() || !hasYML(fsys, entry.Name()) {
			return "", false
		}
		return entry.Name(), true
	})
	return dirs, nil
}

// WalkModules returns every module directory of fsys, including nested
// ones. See IterModules for the top-level-only version.
func WalkModules(fsys fs.FS) ([]string, error) {
	var dirs []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." || !d.IsDir() {
			return nil
		}
		if hasYML(fsys, p) {
			dirs = append(dirs, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}
