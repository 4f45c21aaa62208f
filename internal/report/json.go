package report

import (
	"encoding/json"
	"io"

	"github.com/lox/preflop-equity/internal/equity"
)

// Document is the JSON form of an equity table.
type Document struct {
	Seats     int      `json:"seats"`
	Trials    int      `json:"trials"`
	Workers   int      `json:"workers"`
	Seed      int64    `json:"seed"`
	Evaluator string   `json:"evaluator"`
	ElapsedMS int64    `json:"elapsed_ms"`
	Partial   bool     `json:"partial"`
	Failures  []string `json:"failures,omitempty"`
	Classes   []Class  `json:"classes"`
}

// Class is one row of a Document. Equity is null for a class that was never
// dealt.
type Class struct {
	Class    string   `json:"class"`
	Combos   int      `json:"combos"`
	Played   uint64   `json:"played"`
	Won      uint64   `json:"won"`
	Equity   *float64 `json:"equity"`
	StdError float64  `json:"std_error"`
	CILow    float64  `json:"ci95_low"`
	CIHigh   float64  `json:"ci95_high"`
}

// NewDocument builds the JSON form of t with classes in grid order.
func NewDocument(t *equity.Table) Document {
	doc := Document{
		Seats:     t.Seats,
		Trials:    t.Trials,
		Workers:   t.Workers,
		Seed:      t.Seed,
		Evaluator: t.Evaluator,
		ElapsedMS: t.Elapsed.Milliseconds(),
		Partial:   t.Partial,
	}
	for _, f := range t.Failures {
		doc.Failures = append(doc.Failures, f.Error())
	}
	for _, e := range t.Entries() {
		c := Class{
			Class:  e.Class.String(),
			Combos: e.Class.Combos(),
			Played: e.Played,
			Won:    e.Won,
		}
		if eq, err := e.Equity(); err == nil {
			c.Equity = &eq
			c.StdError = e.StdError()
			c.CILow, c.CIHigh = e.ConfidenceInterval95()
		}
		doc.Classes = append(doc.Classes, c)
	}
	return doc
}

// WriteJSON writes t as an indented Document.
func WriteJSON(w io.Writer, t *equity.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(t))
}
