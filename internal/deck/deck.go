package deck

// Size is the number of cards in a standard deck
const Size = 52

// Standard returns the 52 distinct cards of a standard deck, ordered by suit
// then rank.
func Standard() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Combinations calls fn with every k-card combination of cards, in
// lexicographic index order. The slice passed to fn is reused between calls.
// Iteration stops early if fn returns false.
func Combinations(cards []Card, k int, fn func([]Card) bool) {
	if k <= 0 || k > len(cards) {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	combo := make([]Card, k)

	for {
		for i, j := range idx {
			combo[i] = cards[j]
		}
		if !fn(combo) {
			return
		}

		// Advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == len(cards)-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
