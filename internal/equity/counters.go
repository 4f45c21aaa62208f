package equity

import (
	"fmt"

	"github.com/lox/preflop-equity/poker"
)

// Tally holds the play and win counts of one hand class.
type Tally struct {
	Played uint64
	Won    uint64
}

// Counters holds a Tally for every hand class, indexed by poker.HandClass.
// The zero value has every class at 0/0.
type Counters [poker.NumHandClasses]Tally

// Record counts one seat holding class hc, and a win if won is set.
func (c *Counters) Record(hc poker.HandClass, won bool) {
	t := &c[hc]
	t.Played++
	if won {
		t.Won++
	}
}

// Merge adds other into c, class by class.
func (c *Counters) Merge(other *Counters) {
	for i := range c {
		c[i].Played += other[i].Played
		c[i].Won += other[i].Won
	}
}

// Played returns the number of seat occurrences across all classes.
func (c *Counters) Played() uint64 {
	var n uint64
	for i := range c {
		n += c[i].Played
	}
	return n
}

// Won returns the number of wins across all classes.
func (c *Counters) Won() uint64 {
	var n uint64
	for i := range c {
		n += c[i].Won
	}
	return n
}

// Validate checks that no class has more wins than plays.
func (c *Counters) Validate() error {
	for i := range c {
		if c[i].Won > c[i].Played {
			return fmt.Errorf("class %s: won %d exceeds played %d", poker.HandClass(i), c[i].Won, c[i].Played)
		}
	}
	return nil
}

// MergeAll sums a set of counters into a fresh value.
func MergeAll(parts ...*Counters) Counters {
	var total Counters
	for _, p := range parts {
		if p != nil {
			total.Merge(p)
		}
	}
	return total
}
