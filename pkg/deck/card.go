package deck

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidCardFormat is an error when a card string cannot be parsed
var ErrInvalidCardFormat = errors.New("invalid card format")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists the four suits in a stable order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// face cards
const (
	Ten     = 10
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// Card is an individual playing card. Cards are immutable values; only 52
// distinct ones exist.
type Card struct {
	Rank int
	Suit Suit
}

var rankLetters = map[int]byte{
	Ten:   'T',
	Jack:  'J',
	Queen: 'Q',
	King:  'K',
	Ace:   'A',
}

var suitLetters = map[Suit]byte{
	Hearts:   'h',
	Diamonds: 'd',
	Clubs:    'c',
	Spades:   's',
}

// String returns the canonical form of the card: rank then lowercase suit
// letter, i.e., "Ah" or "Td"
func (c Card) String() string {
	rank, ok := rankLetters[c.Rank]
	if !ok {
		rank = byte('0' + c.Rank)
	}

	suit, ok := suitLetters[c.Suit]
	if !ok {
		panic(fmt.Sprintf("unknown suit: %s", c.Suit))
	}

	return string([]byte{rank, suit})
}

// Equal returns true if the cards match in suit and rank
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank returns the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// CardFromString parses a card from its canonical form.
// The string must be exactly <rank><suit> with rank in 2-9TJQKA and suit in hdcs.
func CardFromString(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, ErrInvalidCardFormat
	}

	var rank int
	switch r := s[0]; {
	case r >= '2' && r <= '9':
		rank = int(r - '0')
	case r == 'T':
		rank = Ten
	case r == 'J':
		rank = Jack
	case r == 'Q':
		rank = Queen
	case r == 'K':
		rank = King
	case r == 'A':
		rank = Ace
	default:
		return Card{}, ErrInvalidCardFormat
	}

	var suit Suit
	switch s[1] {
	case 'h':
		suit = Hearts
	case 'd':
		suit = Diamonds
	case 'c':
		suit = Clubs
	case 's':
		suit = Spades
	default:
		return Card{}, ErrInvalidCardFormat
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MarshalJSON encodes the card as its canonical string
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card from its canonical string
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	card, err := CardFromString(s)
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// MustCards parses a comma-separated list of cards and panics if the string
// is malformed. Useful for fixtures.
func MustCards(s string) []Card {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// CardsFromString parses a comma-separated list of cards, i.e., "Ah,Td,2c"
func CardsFromString(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	cards := make([]Card, 0, 7)
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			card, err := CardFromString(s[start:i])
			if err != nil {
				return nil, fmt.Errorf("could not parse %q: %w", s[start:i], err)
			}

			cards = append(cards, card)
			start = i + 1
		}
	}

	return cards, nil
}
