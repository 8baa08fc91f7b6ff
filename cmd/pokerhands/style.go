package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/hand"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	redCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	blackCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	strongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	weakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	winnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))
)

// renderName colours made hands (straight and above) differently from the rest
func renderName(name hand.HandName) string {
	if name >= hand.Straight {
		return strongStyle.Render(name.String())
	}
	return weakStyle.Render(name.String())
}

// cardStyle picks the colour for a card from its suit
func cardStyle(c deck.Card) lipgloss.Style {
	if c.Suit.IsRed() {
		return redCardStyle
	}
	return blackCardStyle
}

// renderCards styles each card by suit colour, separated by spaces
func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = cardStyle(c).Render(c.String())
	}
	return strings.Join(parts, " ")
}
