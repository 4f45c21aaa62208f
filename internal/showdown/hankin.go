package showdown

import (
	"fmt"
	"math"

	hpoker "github.com/paulhankin/poker"

	"github.com/lox/preflop-equity/poker"
)

// hankinCards maps a card index (suit*13 + rank) to the library's card value.
var hankinCards = func() [poker.DeckSize]hpoker.Card {
	var table [poker.DeckSize]hpoker.Card
	for suit := range uint8(poker.NumSuits) {
		for rank := range uint8(poker.NumRanks) {
			// The library numbers ranks ace=1, deuce..ten by face value, king=13.
			hr := hpoker.Rank(rank + 2)
			if rank == poker.Ace {
				hr = 1
			}
			c, err := hpoker.MakeCard(hpoker.Suit(suit), hr)
			if err != nil {
				panic(fmt.Sprintf("showdown: mapping %s: %v", poker.NewCard(rank, suit), err))
			}
			table[int(suit)*poker.NumRanks+int(rank)] = c
		}
	}
	return table
}()

// HankinEvaluator ranks hands with github.com/paulhankin/poker.
// That library scores stronger hands higher, so the score is inverted.
type HankinEvaluator struct{}

// Rank implements Evaluator.
func (HankinEvaluator) Rank(cards [7]poker.Card) Score {
	var hand [7]hpoker.Card
	for i, c := range cards {
		hand[i] = hankinCards[c.Index()]
	}
	return Score(int32(math.MaxInt16) - int32(hpoker.Eval7(&hand)))
}
