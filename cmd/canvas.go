/*
Copyright © 2025 Zachary Landes
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zacharylandes/fizzbit-sub000/internal/ui"
	"github.com/zacharylandes/fizzbit-sub000/models"
)

var canvasJSON bool

// canvasCmd represents the canvas command
var canvasCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Show the saved-ideas canvas",
	Long: `Show the freeform canvas of saved ideas: each placement with its
position, z-order, and note.

Subcommands move ideas around and annotate them:
  fizzbit canvas place <idea_id> <x> <y>
  fizzbit canvas note <idea_id> <text>
  fizzbit canvas remove <idea_id>`,
	Args: cobra.NoArgs,
	RunE: runCanvasShow,
}

var canvasPlaceCmd = &cobra.Command{
	Use:   "place <idea_id> <x> <y>",
	Short: "Place or move an idea on the canvas",
	Long:  `Place an idea at the given coordinates. Placing an already-placed idea moves it and raises it to the top of the stack.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runCanvasPlace,
}

var canvasNoteCmd = &cobra.Command{
	Use:   "note <idea_id> <text>",
	Short: "Attach a note to a placed idea",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCanvasNote,
}

var canvasRemoveCmd = &cobra.Command{
	Use:   "remove <idea_id>",
	Short: "Take an idea off the canvas",
	Long:  `Remove an idea's placement. The idea itself stays saved; only its spot on the canvas goes away.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCanvasRemove,
}

func init() {
	rootCmd.AddCommand(canvasCmd)
	canvasCmd.AddCommand(canvasPlaceCmd)
	canvasCmd.AddCommand(canvasNoteCmd)
	canvasCmd.AddCommand(canvasRemoveCmd)
	canvasCmd.Flags().BoolVar(&canvasJSON, "json", false, "print the canvas as JSON")
}

func runCanvasShow(cmd *cobra.Command, args []string) error {
	ideaStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = ideaStore.Close() }()

	canvas, err := ideaStore.GetCanvas()
	if err != nil {
		return fmt.Errorf("load canvas: %w", err)
	}

	if canvasJSON {
		return json.NewEncoder(os.Stdout).Encode(canvas)
	}

	ideas, err := ideaStore.ListIdeas(nil, nil)
	if err != nil {
		return fmt.Errorf("list ideas: %w", err)
	}
	byID := make(map[string]models.Idea, len(ideas))
	for _, idea := range ideas {
		byID[idea.ID] = idea
	}

	fmt.Print(ui.RenderCanvas(canvas, byID))
	return nil
}

func runCanvasPlace(cmd *cobra.Command, args []string) error {
	x, errX := strconv.ParseFloat(args[1], 64)
	y, errY := strconv.ParseFloat(args[2], 64)
	if errX != nil || errY != nil {
		return fmt.Errorf("coordinates must be numeric (got %q, %q)", args[1], args[2])
	}

	ideaStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = ideaStore.Close() }()

	idea, err := ideaStore.GetIdea(args[0])
	if err != nil {
		return fmt.Errorf("failed to retrieve idea %s: %w", args[0], err)
	}

	canvas, err := ideaStore.GetCanvas()
	if err != nil {
		return fmt.Errorf("load canvas: %w", err)
	}
	canvas.Place(idea.ID, x, y)
	if err := ideaStore.SaveCanvas(canvas); err != nil {
		return fmt.Errorf("save canvas: %w", err)
	}

	fmt.Printf("Placed '%s' at (%g, %g).\n", idea.Title, x, y)
	return nil
}

func runCanvasNote(cmd *cobra.Command, args []string) error {
	note := strings.Join(args[1:], " ")

	ideaStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = ideaStore.Close() }()

	canvas, err := ideaStore.GetCanvas()
	if err != nil {
		return fmt.Errorf("load canvas: %w", err)
	}
	if !canvas.Annotate(args[0], note) {
		return fmt.Errorf("idea %s is not on the canvas; place it first", args[0])
	}
	if err := ideaStore.SaveCanvas(canvas); err != nil {
		return fmt.Errorf("save canvas: %w", err)
	}

	fmt.Println("Note saved.")
	return nil
}

func runCanvasRemove(cmd *cobra.Command, args []string) error {
	ideaStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = ideaStore.Close() }()

	canvas, err := ideaStore.GetCanvas()
	if err != nil {
		return fmt.Errorf("load canvas: %w", err)
	}
	if !canvas.Remove(args[0]) {
		return fmt.Errorf("idea %s is not on the canvas", args[0])
	}
	if err := ideaStore.SaveCanvas(canvas); err != nil {
		return fmt.Errorf("save canvas: %w", err)
	}

	fmt.Println("Removed from canvas.")
	return nil
}
