package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zacharylandes/fizzbit-sub000/models"
)

// RenderCanvas draws the saved-ideas canvas as a positioned list: items come
// out in z-order (bottom first) with their coordinates and notes, so the
// terminal view mirrors what a graphical client would layer.
func RenderCanvas(canvas models.Canvas, ideas map[string]models.Idea) string {
	if len(canvas.Items) == 0 {
		return StyleSubtle.Render("The canvas is empty. Swipe right on some ideas first.") + "\n"
	}

	items := make([]models.CanvasItem, len(canvas.Items))
	copy(items, canvas.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].Z < items[j].Z })

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Canvas — %d ideas", len(items))))
	b.WriteString("\n\n")
	for _, item := range items {
		title := item.IdeaID
		if idea, ok := ideas[item.IdeaID]; ok {
			title = idea.Title
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleSubtle.Render(fmt.Sprintf("(%4.0f,%4.0f)", item.X, item.Y)),
			StyleCardTitle.Render(title)))
		if item.Note != "" {
			b.WriteString("             " + StyleNote.Render(item.Note) + "\n")
		}
	}
	return b.String()
}
