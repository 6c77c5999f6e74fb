package node

import (
	"io/fs"

	"github.com/gadalang/gada-runtime/module"
)

// Loader is a lazily-loaded node definition discovered in a module
// manifest. Load decodes the full definition, including parsing its
// type expressions.
type Loader struct {
	Module string
	Name   string
	config map[string]any
}

func (l Loader) Load() (Node, error) {
	return FromConfig(l.config, l.Module)
}

// IterNodes returns loaders for the nodes of the top-level modules of
// fsys.
func IterNodes(fsys fs.FS) ([]Loader, error) {
	dirs, err := module.IterModules(fsys)
	if err != nil {
		return nil, err
	}
	return loadersIn(fsys, dirs)
}

// WalkNodes returns loaders for the nodes of every module of fsys,
// including nested ones.
func WalkNodes(fsys fs.FS) ([]Loader, error) {
	dirs, err := module.WalkModules(fsys)
	if err != nil {
		return nil, err
	}
	return loadersIn(fsys, dirs)
}

func loadersIn(fsys fs.FS, dirs []string) ([]Loader, error) {
	var loaders []Loader
	for _, dir := range dirs {
		cfg, err := module.LoadYML(fsys, dir)
		if err != nil {
			return nil, err
		}
		mod := module.Name(dir)
		for _, o := range cfg.Nodes {
			loaders = append(loaders, Loader{Module: mod, Name: str(o["name"]), config: o})
		}
	}
	return loaders, nil
}
