// Package adapter contains infrastructure adapters for the fenum CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "fenum.dev/pkg/fenum/internal/model"
)

// FSAdapter abstracts the filesystem operations the domain layer relies on
// when enumerating directories. It hides direct `os` access so the
// enumeration logic can be tested against fakes.
type FSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain
// layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalFSAdapter is the os-backed FSAdapter.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter instance ready to be wired
// into the workflow.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// Walk iterates over entries under root, optionally descending into
// subdirectories. Entries are visited in lexical order per directory.
//
// A root that is a symlink is followed (/bin -> usr/bin), but reported paths
// keep the root as given.
func (a *LocalFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	walkRoot, err := resolveRoot(rootStr)
	if err != nil {
		return fn(rootStr, nil, err)
	}

	return filepath.Walk(walkRoot, func(path string, info os.FileInfo, err error) error {
		reported := rebase(path, walkRoot, rootStr)

		if err != nil {
			return fn(reported, info, err)
		}

		if info.IsDir() && !recursive && path != walkRoot {
			return filepath.SkipDir
		}

		return fn(reported, info, nil)
	})
}

func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return "", err
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return root, nil
	}

	return filepath.EvalSymlinks(root)
}

func rebase(path, from, to string) string {
	if from == to {
		return path
	}

	rel, err := filepath.Rel(from, path)
	if err != nil {
		return path
	}

	return filepath.Join(to, rel)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalFSAdapter) HashFile(path m.Path) (string, error) {
	// #nosec G304 - path comes from a directory walk the user asked for
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
