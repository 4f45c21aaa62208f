package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lox/preflop-equity/internal/equity"
)

// WriteList renders classes ranked by equity, strongest first.
func WriteList(w io.Writer, t *equity.Table, opts Options) error {
	st := newStyles(w, opts.Profile)
	prec := opts.precision()

	fmt.Fprintf(w, "%s\n\n", st.title.Render(Title(t)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		st.header.Render("#"),
		st.header.Render("hand"),
		st.header.Render("equity"),
		st.header.Render("±95%"),
		st.header.Render("played"),
		st.header.Render("won"),
		st.header.Render("tier"))

	ranked := t.Ranked()
	if opts.Limit > 0 && opts.Limit < len(ranked) {
		ranked = ranked[:opts.Limit]
	}
	for i, e := range ranked {
		eq, err := e.Equity()
		eqStr, marginStr := "-", "-"
		if err == nil {
			eqStr = fmt.Sprintf("%.*f", prec, eq)
			lo, hi := e.ConfidenceInterval95()
			marginStr = fmt.Sprintf("%.*f", prec, (hi-lo)/2)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
			i+1,
			st.hand.Render(e.Class.String()),
			st.equity.Render(eqStr),
			st.muted.Render(marginStr),
			e.Played,
			e.Won,
			strings.ToLower(string(e.Class.Category())))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if sample := t.EquitySample(); sample.Len() > 0 {
		fmt.Fprintf(w, "\n%s\n", st.muted.Render(fmt.Sprintf("median=%.*f p10=%.*f p90=%.*f classes=%d",
			prec, sample.Median(), prec, sample.Percentile(0.1), prec, sample.Percentile(0.9), sample.Len())))
	}
	_, err := fmt.Fprintf(w, "%s\n", st.muted.Render(summary(t)))
	return err
}
