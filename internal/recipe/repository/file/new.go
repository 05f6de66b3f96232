package file

import "recipe-browser/internal/recipe/repository"

type implSource struct {
	path string
}

// New creates a Source reading the data file from a local path.
func New(path string) repository.Source {
	return &implSource{path: path}
}
