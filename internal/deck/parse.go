package deck

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseCard parses a single card in [Rank][Suit] notation.
// Ranks: A, K, Q, J, T, 9, 8, 7, 6, 5, 4, 3, 2
// Suits: c (clubs), d (diamonds), h (hearts), s (spades) or ♣ ♦ ♥ ♠
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want rank and suit", s)
	}

	rank, err := parseRank(runes[0])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	suit, err := parseSuit(runes[1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}

	return NewCard(suit, rank), nil
}

// ParseCards parses a list of cards. Cards may be separated by spaces or
// commas, or written as one run ("AsKsQsJsTs"). Error positions are
// character offsets into s.
func ParseCards(s string) ([]Card, error) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s))
	pos := 0
	for _, r := range s {
		if !unicode.IsSpace(r) && r != ',' {
			runes = append(runes, r)
			offsets = append(offsets, pos)
		}
		pos++
	}

	if len(runes)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(runes))
	}

	cards := make([]Card, 0, len(runes)/2)
	for i := 0; i < len(runes); i += 2 {
		rank, err := parseRank(runes[i])
		if err != nil {
			return nil, fmt.Errorf("invalid rank '%c' at position %d: %w", runes[i], offsets[i], err)
		}

		suit, err := parseSuit(runes[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid suit '%c' at position %d: %w", runes[i+1], offsets[i+1], err)
		}

		cards = append(cards, NewCard(suit, rank))
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards renders cards separated by spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(c rune) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
}

func parseSuit(c rune) (Suit, error) {
	switch c {
	case 'c', 'C', '♣':
		return Clubs, nil
	case 'd', 'D', '♦':
		return Diamonds, nil
	case 'h', 'H', '♥':
		return Hearts, nil
	case 's', 'S', '♠':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
