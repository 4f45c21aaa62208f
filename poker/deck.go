package poker

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned when drawing from a deck with no cards left.
var ErrEmptyDeck = errors.New("draw from empty deck")

// Deck represents a standard 52-card deck
type Deck struct {
	cards [DeckSize]Card // Fixed size array
	n     int            // cards remaining, drawn from the end
	rng   *rand.Rand
}

// NewDeck creates a full deck and shuffles it with the given random source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.fill()
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	i := 0
	for suit := range uint8(NumSuits) {
		for rank := range uint8(NumRanks) {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	d.n = DeckSize
}

// Shuffle permutes the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := d.n - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the last card of the deck.
func (d *Deck) Draw() (Card, error) {
	if d.n == 0 {
		return 0, ErrEmptyDeck
	}
	d.n--
	return d.cards[d.n], nil
}

// Reset restores all 52 cards and reshuffles
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return d.n
}
