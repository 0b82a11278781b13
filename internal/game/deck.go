package game

import (
	"fmt"
	"math/rand"
	"sync/atomic"
)

type Suit string

const (
	SuitSpade   Suit = "spade"
	SuitHeart   Suit = "heart"
	SuitDiamond Suit = "diamond"
	SuitClub    Suit = "club"
	SuitNone    Suit = "" // jokers
)

var suits = []Suit{SuitSpade, SuitHeart, SuitDiamond, SuitClub}

// Ranks run 2..14 (ace high). 15 and 16 are the low and high jokers.
const (
	RankLowJoker  = 15
	RankHighJoker = 16
)

type Card struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit,omitempty"`
	Rank int    `json:"rank"`
}

// cardSeq makes card identities unique for the life of the process, so
// decks built for separate rounds never share IDs.
var cardSeq atomic.Uint64

// BuildShuffledDeck returns the full 108-card double deck in uniformly
// random order: two copies of the 52-card cross product plus a low and a
// high joker per copy.
func BuildShuffledDeck() []Card {
	deck := make([]Card, 0, 108)
	newCard := func(suit Suit, rank int) Card {
		n := cardSeq.Add(1)
		return Card{ID: fmt.Sprintf("c%d-%s%d", n, suit, rank), Suit: suit, Rank: rank}
	}

	for copyNum := 0; copyNum < 2; copyNum++ {
		for _, s := range suits {
			for rank := 2; rank <= 14; rank++ {
				deck = append(deck, newCard(s, rank))
			}
		}
		deck = append(deck, newCard(SuitNone, RankLowJoker))
		deck = append(deck, newCard(SuitNone, RankHighJoker))
	}

	// Fisher-Yates
	for i := len(deck) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// CardPoints is the counting value used for reshuffle eligibility:
// fives are worth 5, tens and kings 10, everything else nothing.
func CardPoints(c Card) int {
	switch c.Rank {
	case 5:
		return 5
	case 10, 13:
		return 10
	default:
		return 0
	}
}

func HandPoints(hand []Card) int {
	total := 0
	for _, c := range hand {
		total += CardPoints(c)
	}
	return total
}
