package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"fenum.dev/pkg/fenum/internal/adapter"
	m "fenum.dev/pkg/fenum/internal/model"
)

// ErrNotDirectory is returned when an enumeration root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// EnumerateOptions controls a single enumeration.
type EnumerateOptions struct {
	// Recursive descends into subdirectories when set.
	Recursive bool
	// Exclude holds compiled patterns (see CompileExcludes) matched against
	// the entry path relative to the root.
	Exclude []*regexp.Regexp
	// Hash fills Entry.Hash with the SHA-256 of each regular file.
	Hash bool
	// Visit, when set, is called for every file accepted into the result.
	Visit func(entry m.Entry)
}

// Enumerator lists the files under a root, optionally recursively.
//
// A shallow enumeration keeps regular files only, following symlinks. A
// recursive one keeps every entry that is not a directory: dangling links,
// FIFOs, sockets and devices included. Symlinks to directories are neither
// kept nor descended into.
type Enumerator interface {
	Enumerate(ctx context.Context, root m.Path, opts EnumerateOptions) ([]m.Entry, error)
}

type enumerator struct {
	fsAdapter adapter.FSAdapter
}

// NewEnumerator constructs an Enumerator backed by the provided filesystem
// adapter.
func NewEnumerator(fsAdapter adapter.FSAdapter) Enumerator {
	return &enumerator{fsAdapter: fsAdapter}
}

func (e *enumerator) Enumerate(ctx context.Context, root m.Path, opts EnumerateOptions) ([]m.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := e.fsAdapter.FileInfo(root)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("enumerate %s: %w", root, ErrNotDirectory)
	}

	slog.Debug("Enumerating", "root", root, "recursive", opts.Recursive, "exclude", len(opts.Exclude))

	entries := []m.Entry{}

	err = e.fsAdapter.Walk(root, opts.Recursive, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk %s: %w", path, walkErr)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		entry, ok, err := e.entryFor(root, m.Path(path), info, opts)
		if err != nil || !ok {
			return err
		}

		if opts.Hash && entry.Mode.IsRegular() {
			hash, err := e.fsAdapter.HashFile(entry.Path)
			if err != nil {
				return fmt.Errorf("hash %s: %w", path, err)
			}

			entry.Hash = hash
		}

		if opts.Visit != nil {
			opts.Visit(entry)
		}

		entries = append(entries, entry)

		return nil
	})
	if err != nil {
		slog.Error("Failed to enumerate", "root", root, "error", err)
		return nil, err
	}

	slog.Debug("Enumerated", "root", root, "count", len(entries))

	return entries, nil
}

// entryFor reports whether path is a file for this enumeration mode that
// survives the exclusion patterns.
func (e *enumerator) entryFor(root, path m.Path, info os.FileInfo, opts EnumerateOptions) (m.Entry, bool, error) {
	if info.IsDir() {
		return m.Entry{}, false, nil
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := e.fsAdapter.FileInfo(path)

		switch {
		case err == nil && target.IsDir():
			return m.Entry{}, false, nil
		case err == nil:
			info = target
		case !opts.Recursive:
			// Dangling links are not files.
			return m.Entry{}, false, nil
		}
	}

	if !opts.Recursive && !info.Mode().IsRegular() {
		return m.Entry{}, false, nil
	}

	if len(opts.Exclude) > 0 {
		rel, err := e.fsAdapter.RelPath(root, path)
		if err != nil {
			return m.Entry{}, false, fmt.Errorf("relative path for %s: %w", path, err)
		}

		if matchesAny(filepath.ToSlash(string(rel)), opts.Exclude) {
			slog.Debug("Excluded", "path", path)
			return m.Entry{}, false, nil
		}
	}

	return m.Entry{
		Root: root,
		Path: path,
		Name: filepath.Base(string(path)),
		Size: info.Size(),
		Mode: m.FileMode(info.Mode()),
	}, true, nil
}

// CompileExcludes compiles exclusion patterns, failing on the first invalid
// one.
func CompileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func matchesAny(path string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// BaseNames reduces entries to their base names, keeping order and
// duplicates.
func BaseNames(entries []m.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}

	return names
}
