package hand

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhands/internal/deck"
)

// Compare compares two hands by category only. It returns -1 if a is weaker,
// 0 if both share a category and 1 if a is stronger. Kickers are not
// considered.
func Compare(a, b Hand) int {
	switch {
	case a.name < b.name:
		return -1
	case a.name > b.name:
		return 1
	default:
		return 0
	}
}

// Strongest returns the hand with the highest category. When several hands
// share the top category the earliest one wins. It returns false for an
// empty list.
func Strongest(hands []Hand) (Hand, bool) {
	i := StrongestIndex(hands)
	if i < 0 {
		return Hand{}, false
	}
	return hands[i], true
}

// StrongestIndex is like Strongest but returns the winner's position, or -1.
func StrongestIndex(hands []Hand) int {
	if len(hands) == 0 {
		return -1
	}

	best := 0
	for i, h := range hands[1:] {
		if Compare(h, hands[best]) > 0 {
			best = i + 1
		}
	}
	return best
}

// ClassifyAll builds a hand from each card list, in parallel, preserving
// input order. If any list has the wrong size the error names that list
// (1-based) and wraps the *InvalidHandSizeError.
func ClassifyAll(ctx context.Context, cardLists [][]deck.Card) ([]Hand, error) {
	hands := make([]Hand, len(cardLists))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, cards := range cardLists {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := New(cards)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}
			hands[i] = h
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hands, nil
}
