package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/lox/pokerhands/internal/config"
	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/hand"
)

// ShowdownCmd classifies every configured hand and reports the strongest.
// Ties on category go to the hand listed first.
type ShowdownCmd struct {
	Config string `short:"c" type:"path" help:"HCL file of hands; the built-in sample is used when missing" placeholder:"FILE"`
}

func (c *ShowdownCmd) Run(e *env) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	logger, err := e.logger(cfg.LogLevel)
	if err != nil {
		return err
	}

	lists, err := cfg.Cards()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(context.Background(), logger)
	defer cancel()

	hands, err := hand.ClassifyAll(ctx, lists)
	if err != nil {
		return err
	}

	labels := cfg.Labels()
	for i, h := range hands {
		logger.Debug("Classified hand", "hand", labels[i], "cards", deck.FormatCards(h.Cards()), "name", h.Name())
	}

	w := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("cards"),
		headerStyle.Render("name"))
	for i, h := range hands {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			labelStyle.Render(labels[i]),
			renderCards(h.Cards()),
			renderName(h.Name()))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best := hand.StrongestIndex(hands)
	logger.Info("Showdown complete", "hands", len(hands), "winner", labels[best], "name", hands[best].Name())
	fmt.Fprintf(e.stdout, "\n%s %s %s\n", winnerStyle.Render("winner"), labelStyle.Render(labels[best]), hands[best])
	return nil
}
