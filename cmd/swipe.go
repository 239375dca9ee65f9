/*
Copyright © 2025 Zachary Landes
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zacharylandes/fizzbit-sub000/internal/deck"
	"github.com/zacharylandes/fizzbit-sub000/internal/ui"
	"github.com/zacharylandes/fizzbit-sub000/models"
)

// swipeCmd represents the swipe command
var swipeCmd = &cobra.Command{
	Use:   "swipe <subject>",
	Short: "Swipe through idea cards in an interactive deck",
	Long: `Open the interactive deck for a subject. Cards arrive in batches and
the queue refills in the background as you get near the end.

Drag cards with the mouse or use the keyboard: left/h dismisses, right/l
saves, up/k branches follow-on ideas, down/j snoozes the card to the back.
Keys 1, 2, 3 snap the blend to wild, actionable, or deep.`,
	Args: cobra.ExactArgs(1),
	RunE: runSwipe,
}

func init() {
	rootCmd.AddCommand(swipeCmd)
}

func runSwipe(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("swipe needs an interactive terminal; use 'fizzbit spark' for scripted output")
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width < 60 {
		fmt.Fprintln(os.Stderr, "warning: terminal narrower than 60 columns, cards may wrap")
	}

	provider, err := getProvider()
	if err != nil {
		return err
	}

	ideaStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = ideaStore.Close() }()

	cfg := GetConfig()
	gen := deck.NewLLMGenerator(provider, modelParams(false), templatesDir())
	gen.Source = models.SourceText
	session := deck.NewSession(args[0], gen, ideaStore, cfg.Deck.BatchCount, cfg.Deck.LowWater)

	tel := getTelemetry()
	defer func() { _ = tel.Close() }()

	return ui.RunDeck(session, tel)
}
