// Package model holds the plain data shared between the CLI, the workflow and the adapters.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Source is a Java file selected for analysis.
type Source struct {
	// Path is absolute.
	Path Path
	// Rel is the path relative to the analysis root, slash separated and
	// starting with "/". It is what check filters are matched against.
	Rel string
}
