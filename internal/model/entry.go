package model

import "io/fs"

// Path represents a file system path.
type Path string

// Entry represents a single enumerated file.
type Entry struct {
	Root Path     `json:"root" yaml:"root"`
	Path Path     `json:"path" yaml:"path"`
	Name string   `json:"name" yaml:"name"`
	Size int64    `json:"size" yaml:"size"`
	Mode FileMode `json:"mode" yaml:"mode"`
	// Hash is the hex SHA-256 of the file contents, empty unless requested.
	Hash string `json:"hash,omitempty" yaml:"hash,omitempty"`
}

// FileMode is a file mode that serialises in its symbolic form
// (-rw-r--r--).
type FileMode fs.FileMode

func (m FileMode) String() string {
	return fs.FileMode(m).String()
}

// IsRegular reports whether m describes a regular file.
func (m FileMode) IsRegular() bool {
	return fs.FileMode(m).IsRegular()
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML output.
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Listing groups the entries found under one root.
type Listing struct {
	Root      Path    `json:"root" yaml:"root"`
	Recursive bool    `json:"recursive" yaml:"recursive"`
	Entries   []Entry `json:"entries" yaml:"entries"`
}

// Literal is a named, pre-rendered value shown by the numbers command.
type Literal struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}
