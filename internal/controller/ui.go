// Package controller provides output adapters for displaying enumeration results.
package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "fenum.dev/pkg/fenum/internal/model"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how listings are rendered.
type Format string

// Available Format values.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// Formats lists every supported format name.
var Formats = []Format{FormatText, FormatTable, FormatYAML, FormatJSON}

// ParseFormat resolves a user supplied format name (case-insensitive).
func ParseFormat(value string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(value)))
	if name == "" {
		return FormatText, nil
	}

	for _, f := range Formats {
		if f == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
}

// ListingOption is a functional option for DisplayListings.
type ListingOption func(*ListingConfig)

// ListingConfig holds rendering settings for DisplayListings.
type ListingConfig struct {
	format Format
	names  bool
}

// WithFormat selects the output format.
func WithFormat(format Format) ListingOption {
	return func(c *ListingConfig) {
		c.format = format
	}
}

// WithNames prints base names instead of full paths in text output.
func WithNames() ListingOption {
	return func(c *ListingConfig) {
		c.names = true
	}
}

func newListingConfig(options []ListingOption) ListingConfig {
	cfg := ListingConfig{format: FormatText}
	for _, option := range options {
		option(&cfg)
	}

	if cfg.format == "" {
		cfg.format = FormatText
	}

	return cfg
}

// UI defines the interface for displaying enumeration results.
type UI interface {
	DisplayListings(ctx context.Context, listings []m.Listing, options ...ListingOption) error
	DisplayVisit(ctx context.Context, entry m.Entry)
	DisplayIndexedNames(ctx context.Context, names []string) error
	DisplayNumbers(ctx context.Context, banners []string, series []float64, literals []m.Literal) error
}

// NewUI returns the UI used by the CLI. Headers are styled when the output is
// a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
