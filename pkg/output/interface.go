package output

import (
	"context"
	"io"
)

// Formatter renders an analysis report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes the daily timeline and full word-cloud table.
	Verbose bool

	// Quiet limits output to the top-line statistics.
	Quiet bool
}
