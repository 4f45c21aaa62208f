package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/preflop-equity/poker"
)

// ClassesCmd lists the starting-hand classes in grid order.
type ClassesCmd struct {
	Category string `help:"Only list classes in this tier (premium, strong, medium, weak, trash)"`
}

func (cmd *ClassesCmd) Run(env *Env) error {
	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "class\tcombos\ttier\texample")

	listed, combos := 0, 0
	for _, hc := range poker.AllHandClasses() {
		category := strings.ToLower(string(hc.Category()))
		if cmd.Category != "" && !strings.EqualFold(cmd.Category, category) {
			continue
		}
		a, b := hc.Representative()
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s%s\n", hc, hc.Combos(), category, a, b)
		listed++
		combos += hc.Combos()
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if listed == 0 {
		return fmt.Errorf("no classes in tier %q", cmd.Category)
	}

	_, err := fmt.Fprintf(env.Stdout, "\n%d classes, %d combos\n", listed, combos)
	return err
}
