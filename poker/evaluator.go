package poker

import (
	"math/bits"
)

// HandRank represents the strength of a 7-card hand. Lower values are stronger.
//
// The top bits hold the HandType counted from the strongest category
// (straight flush = 0), the low 20 bits hold up to five kicker ranks packed as
// nibbles and inverted so that better kickers sort lower.
type HandRank uint32

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const (
	typeShift   = 20
	kickerMask  = 1<<typeShift - 1
	wheelMask   = 0x100F // A-2-3-4-5
	rankBitMask = 0x1FFF
)

func makeRank(t HandType, kickers uint32) HandRank {
	return HandRank(uint32(StraightFlush-t)<<typeShift | (kickerMask - kickers))
}

// Type returns the category of the hand (pair, flush, etc.).
func (hr HandRank) Type() HandType {
	return StraightFlush - HandType(hr>>typeShift)
}

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	return hr.Type().String()
}

func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Evaluate7 ranks the best 5-card hand contained in seven cards.
// Duplicate cards collapse into one bit, so callers must pass distinct cards.
func Evaluate7(cards [7]Card) HandRank {
	return EvaluateHand(NewHand(cards[:]...))
}

// EvaluateHand ranks a hand of five to seven cards.
func EvaluateHand(hand Hand) HandRank {
	var suits [NumSuits]uint16
	var all uint16
	for s := range uint8(NumSuits) {
		suits[s] = hand.SuitMask(s)
		all |= suits[s]
	}

	// Seven cards cannot hold a flush together with quads or a full house,
	// so a flush suit decides the hand on its own.
	for _, m := range suits {
		if bits.OnesCount16(m) < 5 {
			continue
		}
		if high, ok := straightHigh(m); ok {
			return makeRank(StraightFlush, packRanks(uint16(1)<<high, 1))
		}
		return makeRank(Flush, packRanks(m, 5))
	}

	s0, s1, s2, s3 := suits[0], suits[1], suits[2], suits[3]
	quads := s0 & s1 & s2 & s3
	threes := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	trips := threes &^ quads
	pairs := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ threes

	if quads != 0 {
		q := topBit(quads)
		return makeRank(FourOfAKind, packRanks(q, 1)<<4|packRanks(all&^q, 1))
	}

	if trips != 0 {
		t := topBit(trips)
		if rest := pairs | (trips &^ t); rest != 0 {
			return makeRank(FullHouse, packRanks(t, 1)<<4|packRanks(topBit(rest), 1))
		}
	}

	if high, ok := straightHigh(all); ok {
		return makeRank(Straight, packRanks(uint16(1)<<high, 1))
	}

	if trips != 0 {
		t := topBit(trips)
		return makeRank(ThreeOfAKind, packRanks(t, 1)<<8|packRanks(all&^t, 2))
	}

	if bits.OnesCount16(pairs) >= 2 {
		hi := topBit(pairs)
		lo := topBit(pairs &^ hi)
		return makeRank(TwoPair, packRanks(hi|lo, 2)<<4|packRanks(all&^(hi|lo), 1))
	}

	if pairs != 0 {
		p := topBit(pairs)
		return makeRank(Pair, packRanks(p, 1)<<12|packRanks(all&^p, 3))
	}

	return makeRank(HighCard, packRanks(all, 5))
}

// topBit isolates the highest set bit of mask.
func topBit(mask uint16) uint16 {
	if mask == 0 {
		return 0
	}
	return 1 << (bits.Len16(mask) - 1)
}

// packRanks packs the n highest ranks of mask as nibbles, highest first.
// Each rank is stored as rank+1 so that a packed deuce differs from padding.
func packRanks(mask uint16, n int) uint32 {
	var out uint32
	for range n {
		out <<= 4
		if mask == 0 {
			continue
		}
		top := bits.Len16(mask) - 1
		out |= uint32(top + 1)
		mask &^= 1 << top
	}
	return out
}

// straightHigh returns the high rank of the best straight in the mask.
func straightHigh(mask uint16) (uint8, bool) {
	mask &= rankBitMask
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return uint8(bits.Len16(seq)-1) + 4, true
	}
	if mask&wheelMask == wheelMask {
		return Five, true
	}
	return 0, false
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}
