package hand

import (
	"errors"
	"fmt"

	"github.com/lox/pokerhands/internal/deck"
)

// Size is the number of cards in a hand
const Size = 5

// ErrInvalidHandSize is matched by every *InvalidHandSizeError via errors.Is
var ErrInvalidHandSize = errors.New("invalid hand size")

// InvalidHandSizeError is returned when a hand is built from the wrong number of cards
type InvalidHandSizeError struct {
	Size int
}

func (e *InvalidHandSizeError) Error() string {
	return fmt.Sprintf("hand must have exactly %d cards instead of %d", Size, e.Size)
}

func (e *InvalidHandSizeError) Is(target error) bool {
	return target == ErrInvalidHandSize
}

// Hand is an immutable five-card hand with its category computed at construction.
type Hand struct {
	cards [Size]deck.Card
	name  HandName
}

// New builds a hand from exactly five cards. Duplicate cards are accepted.
func New(cards []deck.Card) (Hand, error) {
	if len(cards) != Size {
		return Hand{}, &InvalidHandSizeError{Size: len(cards)}
	}

	var h Hand
	copy(h.cards[:], cards)
	h.name = classify(h.cards)
	return h, nil
}

// MustNew builds a hand and panics on error (for tests and fixed samples)
func MustNew(cards []deck.Card) Hand {
	h, err := New(cards)
	if err != nil {
		panic(err)
	}
	return h
}

// Cards returns the cards in the order they were supplied
func (h Hand) Cards() []deck.Card {
	cards := make([]deck.Card, Size)
	copy(cards, h.cards[:])
	return cards
}

// Name returns the hand's category
func (h Hand) Name() HandName {
	return h.name
}

// String returns a string representation of the hand
func (h Hand) String() string {
	return fmt.Sprintf("Hand{name=%s, cards=%s}", h.name, deck.FormatCards(h.cards[:]))
}
