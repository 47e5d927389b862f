package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "fenum.dev/pkg/fenum/internal/model"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI. When styled is set, headers are
// rendered with lipgloss.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayListings renders listings in the configured format.
func (s *SimpleUI) DisplayListings(ctx context.Context, listings []m.Listing, options ...ListingOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newListingConfig(options)

	switch cfg.format {
	case FormatText:
		s.renderText(listings, cfg.names)
	case FormatTable:
		s.printf("%s", renderListingTable(listings))
	case FormatYAML:
		return s.renderYAML(listings)
	case FormatJSON:
		return s.renderJSON(listings)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.format)
	}

	return nil
}

func (s *SimpleUI) renderText(listings []m.Listing, names bool) {
	withHeaders := len(listings) > 1

	for i, listing := range listings {
		if withHeaders {
			if i > 0 {
				s.printf("\n")
			}

			s.printf("%s\n", s.header(string(listing.Root)+":"))
		}

		for _, entry := range listing.Entries {
			label := string(entry.Path)
			if names {
				label = entry.Name
			}

			if entry.Hash != "" {
				s.printf("%s  %s\n", entry.Hash, label)
				continue
			}

			s.printf("%s\n", label)
		}
	}
}

func renderListingTable(listings []m.Listing) string {
	var tableBuffer bytes.Buffer

	withHash := hasHashes(listings)

	header := []string{"Path", "Size"}
	alignment := []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT}

	if withHash {
		header = append(header, "SHA-256")
		alignment = append(alignment, tablewriter.ALIGN_LEFT)
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(alignment)

	filesCount := 0

	var totalSize int64

	for _, listing := range listings {
		for _, entry := range listing.Entries {
			row := []string{string(entry.Path), fmt.Sprintf("%d", entry.Size)}
			if withHash {
				row = append(row, entry.Hash)
			}

			table.Append(row)

			filesCount++
			totalSize += entry.Size
		}
	}

	footer := []string{
		fmt.Sprintf("Total Files %d", filesCount),
		fmt.Sprintf("%d", totalSize),
	}
	if withHash {
		footer = append(footer, "")
	}

	table.SetFooter(footer)
	table.Render()

	return tableBuffer.String()
}

func hasHashes(listings []m.Listing) bool {
	for _, listing := range listings {
		for _, entry := range listing.Entries {
			if entry.Hash != "" {
				return true
			}
		}
	}

	return false
}

func (s *SimpleUI) renderYAML(listings []m.Listing) error {
	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(listings); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return encoder.Close()
}

func (s *SimpleUI) renderJSON(listings []m.Listing) error {
	encoder := json.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(listings); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// DisplayVisit prints the per-file diagnostic line of a recursive walk.
func (s *SimpleUI) DisplayVisit(ctx context.Context, entry m.Entry) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("File: \"%s\" ('%s')\n", entry.Name, entry.Name)
}

// DisplayIndexedNames prints every name with its index in two quoting styles.
func (s *SimpleUI) DisplayIndexedNames(ctx context.Context, names []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, name := range names {
		s.printf("file: #%d '%s' (\"%s\")\n", i, name, name)
	}

	return nil
}

// DisplayNumbers prints the banners, the numeric series and the literal
// fixture when present.
func (s *SimpleUI) DisplayNumbers(ctx context.Context, banners []string, series []float64, literals []m.Literal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, banner := range banners {
		s.printf("%s\n", banner)
	}

	for _, value := range series {
		s.printf("%s\n", FormatFloat(value))
	}

	if len(literals) == 0 {
		return nil
	}

	s.printf("%s\n", s.header("Literals:"))

	for _, literal := range literals {
		s.printf("  %-12s %s\n", literal.Name, literal.Value)
	}

	return nil
}

func (s *SimpleUI) header(text string) string {
	if !s.styled {
		return text
	}

	return headerStyle.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
