package main

import (
	"fmt"
	"strings"

	"github.com/lox/preflop-equity/poker"
)

// ClassifyCmd prints the class of a two-card hand.
type ClassifyCmd struct {
	Cards []string `arg:"" name:"cards" help:"Two hole cards, e.g. 'Ah Kh' or AhKh"`
}

func (cmd *ClassifyCmd) Run(env *Env) error {
	cards, err := poker.ParseCards(strings.Join(cmd.Cards, ""))
	if err != nil {
		return err
	}
	if len(cards) != 2 {
		return fmt.Errorf("need exactly two cards, got %d", len(cards))
	}
	if cards[0] == cards[1] {
		return fmt.Errorf("duplicate card %s", cards[0])
	}

	hc := poker.Classify(cards[0], cards[1])
	kind := "offsuit"
	switch {
	case hc.Pair():
		kind = "pair"
	case hc.Suited():
		kind = "suited"
	}
	_, err = fmt.Fprintf(env.Stdout, "%s  %s, %d combos, %s\n",
		hc, kind, hc.Combos(), strings.ToLower(string(hc.Category())))
	return err
}
