package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/preflop-equity/internal/equity"
	"github.com/lox/preflop-equity/poker"
)

// WriteGrid renders the 13x13 class grid as a heatmap. Row and column
// headers are ranks, ace first; suited classes sit above the diagonal and
// offsuit classes below it.
func WriteGrid(w io.Writer, t *equity.Table, opts Options) error {
	st := newStyles(w, opts.Profile)
	prec := opts.precision()
	width := prec + 2
	lo, hi := equityRange(t)

	var b strings.Builder
	b.WriteString(st.title.Render(Title(t)))
	b.WriteString("\n\n")

	header := st.header.Padding(0, 1)
	b.WriteString(header.Render(" "))
	for col := range poker.NumRanks {
		b.WriteString(header.Render(center(string(gridRank(col)), width)))
	}
	b.WriteString("\n")

	empty := st.muted.Padding(0, 1)
	for row := range poker.NumRanks {
		b.WriteString(header.Render(string(gridRank(row))))
		for col := range poker.NumRanks {
			e := t.Entry(poker.HandClass(row*poker.NumRanks + col))
			eq, err := e.Equity()
			if err != nil {
				b.WriteString(empty.Render(center("-", width)))
				continue
			}
			b.WriteString(st.shade(eq, lo, hi).Render(fmt.Sprintf("%.*f", prec, eq)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.muted.Render("suited above the diagonal, offsuit below"))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(summary(t)))
	b.WriteString("\n")
	if t.Partial {
		b.WriteString(st.warn.Render(fmt.Sprintf("warning: %d worker(s) failed, results are partial", len(t.Failures))))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func gridRank(i int) byte {
	return poker.RankChar(poker.Ace - uint8(i))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

// equityRange returns the lowest and highest sampled equity.
func equityRange(t *equity.Table) (lo, hi float64) {
	lo, hi = 1, 0
	for _, e := range t.Entries() {
		eq, err := e.Equity()
		if err != nil {
			continue
		}
		lo, hi = min(lo, eq), max(hi, eq)
	}
	return lo, hi
}
