package domain

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/sync/errgroup"

	"fenum.dev/pkg/fenum/internal/controller"
	m "fenum.dev/pkg/fenum/internal/model"
)

// DefaultParallel bounds how many roots List enumerates at once.
const DefaultParallel = 4

// ListArgs contains the arguments for listing one or more roots.
type ListArgs struct {
	Paths     []m.Path
	Recursive bool
	Exclude   []string
	Hash      bool
	Parallel  int
	Format    controller.Format
	Names     bool
}

// WalkArgs contains the arguments for the recursive base-name walk.
type WalkArgs struct {
	Root    m.Path
	Exclude []string
	// Quiet suppresses the per-file diagnostic line.
	Quiet bool
}

// NumbersArgs contains the arguments for the numbers demo.
type NumbersArgs struct {
	Literals bool
}

// Workflow wires enumeration to the UI for each CLI command.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Walk(ctx context.Context, args WalkArgs) error
	Numbers(ctx context.Context, args NumbersArgs) error
}

type workflow struct {
	Enumerator
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(enumerator Enumerator, ui controller.UI) Workflow {
	return &workflow{
		Enumerator: enumerator,
		UI:         ui,
	}
}

// List enumerates every root concurrently and renders the listings in the
// order the roots were given.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	excludes, err := CompileExcludes(args.Exclude)
	if err != nil {
		return err
	}

	listings, err := w.collectListings(ctx, paths, excludes, args)
	if err != nil {
		slog.Error("Failed to list files", "error", err)
		return fmt.Errorf("list files: %w", err)
	}

	options := []controller.ListingOption{controller.WithFormat(args.Format)}
	if args.Names {
		options = append(options, controller.WithNames())
	}

	if err := w.DisplayListings(ctx, listings, options...); err != nil {
		slog.Error("Failed to display listings", "error", err)
		return err
	}

	return nil
}

func (w *workflow) collectListings(ctx context.Context, paths []m.Path, excludes []*regexp.Regexp, args ListArgs) ([]m.Listing, error) {
	listings := make([]m.Listing, len(paths))

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = DefaultParallel
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, path := range paths {
		group.Go(func() error {
			entries, err := w.Enumerate(groupCtx, path, EnumerateOptions{
				Recursive: args.Recursive,
				Exclude:   excludes,
				Hash:      args.Hash,
			})
			if err != nil {
				return err
			}

			listings[i] = m.Listing{
				Root:      path,
				Recursive: args.Recursive,
				Entries:   entries,
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return listings, nil
}

// Walk collects every file base name under the root, reporting each visited
// file as it goes, then prints the indexed names.
func (w *workflow) Walk(ctx context.Context, args WalkArgs) error {
	excludes, err := CompileExcludes(args.Exclude)
	if err != nil {
		return err
	}

	opts := EnumerateOptions{
		Recursive: true,
		Exclude:   excludes,
	}

	if !args.Quiet {
		opts.Visit = func(entry m.Entry) {
			w.DisplayVisit(ctx, entry)
		}
	}

	entries, err := w.Enumerate(ctx, args.Root, opts)
	if err != nil {
		slog.Error("Failed to walk", "root", args.Root, "error", err)
		return fmt.Errorf("walk: %w", err)
	}

	names := BaseNames(entries)
	slog.Info("Walk finished", "root", args.Root, "files", len(names))

	return w.DisplayIndexedNames(ctx, names)
}

// Numbers prints the fixed banners and the numeric series.
func (w *workflow) Numbers(ctx context.Context, args NumbersArgs) error {
	var literals []m.Literal
	if args.Literals {
		literals = LiteralTable()
	}

	banners := []string{NumbersBanner, NumbersBanner}

	return w.DisplayNumbers(ctx, banners, Series(SeriesLength), literals)
}
