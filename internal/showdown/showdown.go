// Package showdown adapts 7-card hand evaluators to the ordering the equity
// simulator needs: a Score per seat where lower is stronger and equal scores tie.
package showdown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/preflop-equity/poker"
)

// Score orders 7-card hands. Lower is stronger; equal scores are equal strength.
type Score uint32

// Evaluator ranks seven distinct cards (two hole cards plus the board).
type Evaluator interface {
	Rank(cards [7]poker.Card) Score
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(cards [7]poker.Card) Score

// Rank calls f(cards).
func (f EvaluatorFunc) Rank(cards [7]poker.Card) Score {
	return f(cards)
}

const (
	// Native names the built-in bitmask evaluator.
	Native = "native"
	// Hankin names the adapter over github.com/paulhankin/poker.
	Hankin = "hankin"
)

var registry = map[string]func() Evaluator{
	Native: func() Evaluator { return NativeEvaluator{} },
	Hankin: func() Evaluator { return HankinEvaluator{} },
}

// New returns the evaluator registered under name.
func New(name string) (Evaluator, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names lists the registered evaluator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NativeEvaluator ranks hands with poker.Evaluate7.
type NativeEvaluator struct{}

// Rank implements Evaluator.
func (NativeEvaluator) Rank(cards [7]poker.Card) Score {
	return Score(poker.Evaluate7(cards))
}
