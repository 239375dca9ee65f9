package ui

import (
	"fmt"
	"strings"

	"github.com/zacharylandes/fizzbit-sub000/models"
)

// RenderIdeaList formats ideas for the list command. Saved ideas get a heart,
// branched ideas show their lineage.
func RenderIdeaList(ideas []models.Idea) string {
	if len(ideas) == 0 {
		return StyleSubtle.Render("No ideas yet. Try: fizzbit spark \"something you love\"") + "\n"
	}

	var b strings.Builder
	for _, idea := range ideas {
		marker := StyleSubtle.Render("·")
		if idea.Saved {
			marker = StyleSuccess.Render("♥")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", marker,
			StyleCardTitle.Render(idea.Title),
			StyleSubtle.Render("["+shortID(idea.ID)+"]")))
		if idea.Description != "" {
			b.WriteString("  " + idea.Description + "\n")
		}
		if idea.Hook != "" {
			b.WriteString("  " + StyleCardHook.Render(idea.Hook) + "\n")
		}
		if idea.ParentID != nil {
			b.WriteString("  " + StyleSubtle.Render("↳ branched from "+shortID(*idea.ParentID)) + "\n")
		}
	}
	b.WriteString(StyleSubtle.Render(fmt.Sprintf("\n%d ideas", len(ideas))) + "\n")
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
