/*
Copyright © 2025 Zachary Landes
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zacharylandes/fizzbit-sub000/internal/ui"
	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/store"
)

var (
	listAll  bool
	listJSON bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved ideas",
	Long: `List your saved ideas. With --all, every generated idea is shown
including dismissed-but-persisted ones (explore parents, API batches).

Examples:
  fizzbit list
  fizzbit list --all --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listAll, "all", false, "include ideas that are not saved")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	ideaStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = ideaStore.Close() }()

	var filter func(models.Idea) bool
	if !listAll {
		filter = store.FilterSaved
	}

	ideas, err := ideaStore.ListIdeas(filter, nil)
	if err != nil {
		return fmt.Errorf("list ideas: %w", err)
	}

	if listJSON {
		return json.NewEncoder(os.Stdout).Encode(models.IdeaList{Ideas: ideas, TotalCount: len(ideas)})
	}
	fmt.Print(ui.RenderIdeaList(ideas))
	return nil
}
