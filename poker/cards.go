package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs], deuce in the low bit.
type Card uint64

// Hand is a set of cards sharing the Card bit layout.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

const (
	// NumRanks is the number of distinct ranks.
	NumRanks = 13
	// NumSuits is the number of distinct suits.
	NumSuits = 4
	// DeckSize is the number of cards in a full deck.
	DeckSize = NumRanks * NumSuits

	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// NewCard creates a card from rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (suit*NumRanks + rank)
}

// Index returns the card's bit position (0-51), or 255 for the zero card.
func (c Card) Index() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12).
func (c Card) Rank() uint8 {
	idx := c.Index()
	if idx == 255 {
		return 255
	}
	return idx % NumRanks
}

// Suit returns the suit of the card (0-3).
func (c Card) Suit() uint8 {
	idx := c.Index()
	if idx == 255 {
		return 255
	}
	return idx / NumRanks
}

// String returns the two-character notation, e.g. "As", "Td".
func (c Card) String() string {
	rank, suit := c.Rank(), c.Suit()
	if rank >= NumRanks || suit >= NumSuits {
		return "??"
	}
	return string(rankChars[rank]) + string(suitChars[suit])
}

// RankChar returns the single-character symbol for a rank (0-12).
func RankChar(rank uint8) byte {
	if rank >= NumRanks {
		return '?'
	}
	return rankChars[rank]
}

// ParseRank parses a rank symbol such as 'A' or 'T'.
func ParseRank(b byte) (uint8, error) {
	switch b {
	case 't':
		b = 'T'
	case 'j':
		b = 'J'
	case 'q':
		b = 'Q'
	case 'k':
		b = 'K'
	case 'a':
		b = 'A'
	}
	idx := strings.IndexByte(rankChars, b)
	if idx < 0 {
		return 0, fmt.Errorf("invalid rank: %c", b)
	}
	return uint8(idx), nil
}

// ParseSuit parses a suit symbol such as 'h' or 's'.
func ParseSuit(b byte) (uint8, error) {
	switch b {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("invalid suit: %c", b)
	}
}

// ParseCard parses a string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}
	rank, err := ParseRank(s[0])
	if err != nil {
		return 0, err
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return 0, err
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses concatenated card notation such as "AhKs" or "Ah Ks".
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i/2+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// NewHand creates a hand from multiple cards
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// SuitMask returns the ranks held in one suit as a 13-bit mask.
func (h Hand) SuitMask(suit uint8) uint16 {
	return uint16(h>>(suit*NumRanks)) & 0x1FFF
}
