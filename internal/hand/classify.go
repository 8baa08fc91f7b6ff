package hand

import (
	"slices"

	"github.com/lox/pokerhands/internal/deck"
)

// rank frequency signatures, sorted ascending
var (
	fourKindCounts  = []int{1, 4}
	fullHouseCounts = []int{2, 3}
	threeKindCounts = []int{1, 1, 3}
	twoPairCounts   = []int{1, 2, 2}
	onePairCounts   = []int{1, 1, 1, 2}
)

// classify determines the category of five cards. Checks run from strongest
// to weakest and the first match wins.
func classify(cards [Size]deck.Card) HandName {
	straight := isStraight(cards)
	flush := isFlush(cards)
	counts := rankCounts(cards)

	switch {
	case straight && flush:
		return StraightFlush
	case slices.Equal(counts, fourKindCounts):
		return FourKind
	case slices.Equal(counts, fullHouseCounts):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case slices.Equal(counts, threeKindCounts):
		return ThreeKind
	case slices.Equal(counts, twoPairCounts):
		return TwoPair
	case slices.Equal(counts, onePairCounts):
		return OnePair
	default:
		return Nothing
	}
}

// isFlush reports whether every card shares one suit.
func isFlush(cards [Size]deck.Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// isStraight reports whether the five ranks are distinct and span exactly
// four values. Aces only count high, so A-2-3-4-5 is not a straight.
func isStraight(cards [Size]deck.Card) bool {
	seen := make(map[deck.Rank]bool, Size)
	lo, hi := cards[0].Rank, cards[0].Rank
	for _, c := range cards {
		if seen[c.Rank] {
			return false
		}
		seen[c.Rank] = true
		lo = min(lo, c.Rank)
		hi = max(hi, c.Rank)
	}
	return hi.Value()-lo.Value() == Size-1
}

// rankCounts returns how many cards share each rank, sorted ascending.
func rankCounts(cards [Size]deck.Card) []int {
	byRank := make(map[deck.Rank]int, Size)
	for _, c := range cards {
		byRank[c.Rank]++
	}

	counts := make([]int, 0, Size)
	for _, n := range byRank {
		counts = append(counts, n)
	}
	slices.Sort(counts)
	return counts
}
