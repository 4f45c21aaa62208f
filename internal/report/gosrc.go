package report

import (
	"bytes"
	"fmt"
	"go/format"
	"io"

	"github.com/lox/preflop-equity/internal/equity"
)

// DefaultPackage names generated Go source when Options.Package is empty.
const DefaultPackage = "preflop"

// WriteGo writes t as a Go source file declaring a map from class label to
// equity. Unsampled classes are omitted.
func WriteGo(w io.Writer, t *equity.Table, opts Options) error {
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	prec := opts.precision() + 1

	var b bytes.Buffer
	b.WriteString("// Code generated by preflop-equity; DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// seats=%d trials=%d seed=%d evaluator=%s\n\n", t.Seats, t.Trials, t.Seed, t.Evaluator)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "// Seats is the table size the equities were simulated for.\n")
	fmt.Fprintf(&b, "const Seats = %d\n\n", t.Seats)
	b.WriteString("// Equity holds the probability of winning or tying a showdown for each\n")
	b.WriteString("// starting hand. Key format: \"AA\", \"AKs\", \"AKo\".\n")
	b.WriteString("var Equity = map[string]float64{\n")
	for _, e := range t.Entries() {
		eq, err := e.Equity()
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\t%q: %.*f,\n", e.Class.String(), prec, eq)
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
