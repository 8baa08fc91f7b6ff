package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Two.Value())
	assert.Equal(t, 10, Ten.Value())
	assert.Equal(t, 11, Jack.Value())
	assert.Equal(t, 12, Queen.Value())
	assert.Equal(t, 13, King.Value())
	assert.Equal(t, 14, Ace.Value())

	for i, rank := range Ranks {
		assert.Equal(t, i+2, rank.Value())
		assert.True(t, rank.Valid())
	}
	assert.False(t, Rank(1).Valid())
	assert.False(t, Rank(15).Valid())
}

func TestSuitIsRed(t *testing.T) {
	t.Parallel()

	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Clubs.IsRed())
	assert.False(t, Spades.IsRed())
}

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "2♣", NewCard(Clubs, Two).String())
	assert.Equal(t, "T♦", NewCard(Diamonds, Ten).String())
	assert.Equal(t, "Q♥", NewCard(Hearts, Queen).String())
	assert.Equal(t, "??", Card{Suit: Suit(9), Rank: Rank(0)}.String())
}

func TestCardEquality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewCard(Diamonds, Seven), NewCard(Diamonds, Seven))
	assert.NotEqual(t, NewCard(Diamonds, Seven), NewCard(Hearts, Seven))

	seen := map[Card]int{}
	seen[NewCard(Diamonds, Seven)]++
	seen[NewCard(Diamonds, Seven)]++
	assert.Equal(t, 2, seen[NewCard(Diamonds, Seven)])
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of spades", input: "As", want: NewCard(Spades, Ace)},
		{name: "two of hearts", input: "2h", want: NewCard(Hearts, Two)},
		{name: "ten with T notation", input: "Tc", want: NewCard(Clubs, Ten)},
		{name: "lower case", input: "kd", want: NewCard(Diamonds, King)},
		{name: "suit symbol", input: "7♦", want: NewCard(Diamonds, Seven)},
		{name: "surrounding space", input: " Qs ", want: NewCard(Spades, Queen)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush run",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "space separated",
			input: "4d 5d 6d 7d 8d",
			expected: []Card{
				{Suit: Diamonds, Rank: Four},
				{Suit: Diamonds, Rank: Five},
				{Suit: Diamonds, Rank: Six},
				{Suit: Diamonds, Rank: Seven},
				{Suit: Diamonds, Rank: Eight},
			},
		},
		{
			name:  "comma separated symbols",
			input: "7♣, 8♠, 6♦",
			expected: []Card{
				{Suit: Clubs, Rank: Seven},
				{Suit: Spades, Rank: Eight},
				{Suit: Diamonds, Rank: Six},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AsKx", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCardsErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := ParseCards("As Kx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid suit 'x' at position 4")

	// Offsets count the separators the caller typed
	_, err = ParseCards("As, Kd, Qx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid suit 'x' at position 9")

	_, err = ParseCards("7♣ 8♠ Z♦")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rank 'Z' at position 6")
}

func TestMustParseCards(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("AsKs")
	assert.Equal(t, []Card{{Suit: Spades, Rank: Ace}, {Suit: Spades, Rank: King}}, cards)

	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestFormatCards(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4♦ 5♦ 6♦", FormatCards(MustParseCards("4d5d6d")))
	assert.Equal(t, "", FormatCards(nil))
}
