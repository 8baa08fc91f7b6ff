package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/hand"
)

// ClassifyCmd prints the category of a single hand
type ClassifyCmd struct {
	Cards []string `arg:"" name:"cards" help:"Five cards, e.g. '4d 5d 6d 7d 8d' or 4d5d6d7d8d"`
}

func (c *ClassifyCmd) Run(e *env) error {
	logger, err := e.logger("info")
	if err != nil {
		return err
	}

	cards, err := deck.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return fmt.Errorf("parsing cards: %w", err)
	}

	h, err := hand.New(cards)
	if err != nil {
		return err
	}
	logger.Debug("Classified hand", "cards", deck.FormatCards(cards), "name", h.Name())

	fmt.Fprintf(e.stdout, "%s  %s\n", renderCards(h.Cards()), renderName(h.Name()))
	return nil
}
