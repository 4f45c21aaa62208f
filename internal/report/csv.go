package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/lox/preflop-equity/internal/equity"
)

var csvHeader = []string{"class", "combos", "played", "won", "equity", "std_error", "ci95_low", "ci95_high"}

// WriteCSV writes one row per class in grid order. Numeric columns of an
// unsampled class are empty.
func WriteCSV(w io.Writer, t *equity.Table, opts Options) error {
	prec := opts.precision() + 3
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	format := func(f float64) string {
		return strconv.FormatFloat(f, 'f', prec, 64)
	}
	for _, e := range t.Entries() {
		row := []string{
			e.Class.String(),
			strconv.Itoa(e.Class.Combos()),
			strconv.FormatUint(e.Played, 10),
			strconv.FormatUint(e.Won, 10),
			"", "", "", "",
		}
		if eq, err := e.Equity(); err == nil {
			lo, hi := e.ConfidenceInterval95()
			row[4], row[5], row[6], row[7] = format(eq), format(e.StdError()), format(lo), format(hi)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
