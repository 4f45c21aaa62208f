package poker

import (
	"fmt"
)

// NumHandClasses is the number of canonical starting-hand classes.
const NumHandClasses = NumRanks * NumRanks

// HandClass identifies one of the 169 canonical starting hands ("AA", "AKs", "AKo").
//
// Classes are numbered in 13x13 grid order: row and column 0 is the ace, 12 the
// deuce. Pairs sit on the diagonal, suited hands above it (row = high rank) and
// offsuit hands below it (row = low rank).
type HandClass uint8

// HoleCardCategory represents the strength tier of a starting hand
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// gridIndex maps a rank (0-12) to its grid row/column (ace first).
func gridIndex(rank uint8) int {
	return int(Ace - rank)
}

func classAt(row, col int) HandClass {
	return HandClass(row*NumRanks + col)
}

// Classify returns the class of a two-card starting hand. The result does not
// depend on card order.
func Classify(a, b Card) HandClass {
	hi, lo := a.Rank(), b.Rank()
	if hi < lo {
		hi, lo = lo, hi
	}
	switch {
	case hi == lo:
		return classAt(gridIndex(hi), gridIndex(hi))
	case a.Suit() == b.Suit():
		return classAt(gridIndex(hi), gridIndex(lo))
	default:
		return classAt(gridIndex(lo), gridIndex(hi))
	}
}

// AllHandClasses returns the 169 classes in grid order.
func AllHandClasses() []HandClass {
	classes := make([]HandClass, NumHandClasses)
	for i := range classes {
		classes[i] = HandClass(i)
	}
	return classes
}

// Grid returns the class's row and column in the 13x13 grid.
func (hc HandClass) Grid() (row, col int) {
	return int(hc) / NumRanks, int(hc) % NumRanks
}

// Pair reports whether the class is a pocket pair.
func (hc HandClass) Pair() bool {
	row, col := hc.Grid()
	return row == col
}

// Suited reports whether the class is a suited non-pair.
func (hc HandClass) Suited() bool {
	row, col := hc.Grid()
	return col > row
}

// Ranks returns the high and low rank (0-12) of the class.
func (hc HandClass) Ranks() (hi, lo uint8) {
	row, col := hc.Grid()
	if row > col {
		row, col = col, row
	}
	return Ace - uint8(row), Ace - uint8(col)
}

// Valid reports whether hc is one of the 169 classes.
func (hc HandClass) Valid() bool {
	return int(hc) < NumHandClasses
}

// String returns the class label, e.g. "AA", "AKs", "72o".
func (hc HandClass) String() string {
	if !hc.Valid() {
		return "??"
	}
	hi, lo := hc.Ranks()
	label := []byte{RankChar(hi), RankChar(lo)}
	switch {
	case hc.Pair():
	case hc.Suited():
		label = append(label, 's')
	default:
		label = append(label, 'o')
	}
	return string(label)
}

// Combos returns how many distinct two-card hands belong to the class.
func (hc HandClass) Combos() int {
	switch {
	case hc.Pair():
		return 6
	case hc.Suited():
		return 4
	default:
		return 12
	}
}

// Representative returns one concrete hand of the class.
func (hc HandClass) Representative() (Card, Card) {
	hi, lo := hc.Ranks()
	if hc.Suited() {
		return NewCard(hi, Spades), NewCard(lo, Spades)
	}
	return NewCard(hi, Spades), NewCard(lo, Hearts)
}

// ParseHandClass parses a label such as "AA", "AKs", "t9o".
func ParseHandClass(label string) (HandClass, error) {
	if len(label) != 2 && len(label) != 3 {
		return 0, fmt.Errorf("invalid hand class %q", label)
	}
	r1, err := ParseRank(label[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hand class %q: %w", label, err)
	}
	r2, err := ParseRank(label[1])
	if err != nil {
		return 0, fmt.Errorf("invalid hand class %q: %w", label, err)
	}
	hi, lo := max(r1, r2), min(r1, r2)

	if len(label) == 2 {
		if hi != lo {
			return 0, fmt.Errorf("invalid hand class %q: missing suited/offsuit marker", label)
		}
		return classAt(gridIndex(hi), gridIndex(hi)), nil
	}
	if hi == lo {
		return 0, fmt.Errorf("invalid hand class %q: pairs take no marker", label)
	}
	switch label[2] {
	case 's', 'S':
		return classAt(gridIndex(hi), gridIndex(lo)), nil
	case 'o', 'O':
		return classAt(gridIndex(lo), gridIndex(hi)), nil
	default:
		return 0, fmt.Errorf("invalid hand class %q: marker must be 's' or 'o'", label)
	}
}

// Category provides a simple preflop tier for the class.
// Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited connectors), Trash (everything else).
func (hc HandClass) Category() HoleCardCategory {
	hi, lo := hc.Ranks()
	pair, suited := hc.Pair(), hc.Suited()

	switch {
	case pair && lo >= Jack, hi == Ace && lo == King:
		return CategoryPremium
	case pair && lo == Ten, hi == Ace && (lo == Queen || lo == Jack):
		return CategoryStrong
	case pair && lo >= Seven, suited && lo >= Ten:
		return CategoryMedium
	case pair, suited && hi-lo <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}
