/*
Copyright © 2025 Zachary Landes
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/zacharylandes/fizzbit-sub000/internal/deck"
	"github.com/zacharylandes/fizzbit-sub000/internal/telemetry"
	"github.com/zacharylandes/fizzbit-sub000/internal/ui"
	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/store"
)

var exploreCount int

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore [idea_id]",
	Short: "Branch follow-on ideas off a saved card",
	Long: `Generate follow-on ideas branching off an existing card. If no ID is
provided, an interactive picker over your ideas is shown. The new ideas
are persisted with a link back to their parent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	exploreCmd.Flags().IntVar(&exploreCount, "count", 0, "how many branches to generate (default from config)")
}

func runExplore(cmd *cobra.Command, args []string) error {
	ideaStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = ideaStore.Close() }()

	if len(args) > 0 {
		idea, err := ideaStore.GetIdea(args[0])
		if err != nil {
			return fmt.Errorf("failed to retrieve idea %s: %w", args[0], err)
		}
		return exploreIdea(cmd.Context(), ideaStore, idea)
	}

	selected, err := selectIdeaInteractive(ideaStore, nil, "Select an idea to explore")
	if err != nil {
		if err == promptui.ErrInterrupt {
			fmt.Println("Explore cancelled.")
			return nil
		}
		if err == ErrNoIdeasFound {
			fmt.Println("No ideas available to explore. Try 'fizzbit spark' first.")
			return nil
		}
		return fmt.Errorf("idea selection failed: %w", err)
	}
	return exploreIdea(cmd.Context(), ideaStore, selected)
}

func exploreIdea(ctx context.Context, ideaStore store.IdeaStore, parent models.Idea) error {
	provider, err := getProvider()
	if err != nil {
		return err
	}

	count := exploreCount
	if count <= 0 {
		count = GetConfig().Deck.BatchCount
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout())
	defer cancel()

	gen := deck.NewLLMGenerator(provider, modelParams(false), templatesDir())
	sp := ui.NewSpinner(fmt.Sprintf("branching off %q...", parent.Title))
	sp.Start()
	cards, err := gen.Explore(ctx, parent, count)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("explore failed: %w", err)
	}

	for i := range cards {
		cards[i].WithParent(parent.ID)
		if cards[i], err = ideaStore.CreateIdea(cards[i]); err != nil {
			return fmt.Errorf("persist branch: %w", err)
		}
	}

	tel := getTelemetry()
	defer func() { _ = tel.Close() }()
	tel.Capture(telemetry.EventIdeaExplored, map[string]interface{}{"count": len(cards)})

	fmt.Print(ui.RenderIdeaList(cards))
	return nil
}
