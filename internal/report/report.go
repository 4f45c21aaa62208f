// Package report renders an equity table as a heatmap grid, a ranked list,
// JSON, CSV or Go source.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/lox/preflop-equity/internal/equity"
)

// Output formats.
const (
	FormatGrid = "grid"
	FormatList = "list"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatGo   = "go"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{FormatCSV, FormatGo, FormatGrid, FormatJSON, FormatList}
}

// Options controls rendering.
type Options struct {
	Format    string
	Precision int // digits after the decimal point
	// Profile is the terminal colour profile for grid and list output.
	// termenv.Ascii renders plain text.
	Profile termenv.Profile
	// Limit caps the number of rows in list output; 0 lists every class.
	Limit int
	// Package names the generated Go package.
	Package string
}

func (o Options) precision() int {
	if o.Precision < 1 {
		return 3
	}
	return o.Precision
}

// Write renders t to w.
func Write(w io.Writer, t *equity.Table, opts Options) error {
	switch opts.Format {
	case FormatGrid, "":
		return WriteGrid(w, t, opts)
	case FormatList:
		return WriteList(w, t, opts)
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatCSV:
		return WriteCSV(w, t, opts)
	case FormatGo:
		return WriteGo(w, t, opts)
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}
}

// Title returns the heading used for a table.
func Title(t *equity.Table) string {
	return fmt.Sprintf("Winning probabilities for %d-player poker", t.Seats)
}

func summary(t *equity.Table) string {
	s := fmt.Sprintf("trials=%d seats=%d seed=%d evaluator=%s workers=%d elapsed=%s",
		t.Trials, t.Seats, t.Seed, t.Evaluator, t.Workers, t.Elapsed.Round(time.Millisecond))
	if t.Partial {
		s += fmt.Sprintf(" partial=true failed_workers=%d", len(t.Failures))
	}
	return s
}
