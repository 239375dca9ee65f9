package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zacharylandes/fizzbit-sub000/internal/blend"
	"github.com/zacharylandes/fizzbit-sub000/models"
)

func TestRenderTriangleShowsAllAxes(t *testing.T) {
	v := blend.DefaultVertices
	pos := blend.Point{X: 50, Y: 55}
	out := RenderTriangle(pos, blend.Compute(pos, v))

	for _, label := range []string{"wild", "actionable", "deep", "W", "A", "D"} {
		assert.Contains(t, out, label)
	}
}

func TestRenderTriangleVertexPercentages(t *testing.T) {
	v := blend.DefaultVertices
	out := RenderTriangle(v.Wild, blend.Compute(v.Wild, v))
	assert.Contains(t, out, "wild 100%")
}

func TestRenderIdeaList(t *testing.T) {
	parent := models.NewIdea("Parent idea", "The root.", models.SourceText)
	parent.Saved = true
	child := models.NewIdea("Child idea", "A branch.", models.SourceText).WithParent(parent.ID)
	child.Hook = "Worth a look."

	out := RenderIdeaList([]models.Idea{*parent, *child})
	assert.Contains(t, out, "Parent idea")
	assert.Contains(t, out, "Child idea")
	assert.Contains(t, out, "branched from")
	assert.Contains(t, out, "2 ideas")
}

func TestRenderIdeaListEmpty(t *testing.T) {
	out := RenderIdeaList(nil)
	assert.Contains(t, out, "No ideas yet")
}

func TestRenderCanvas(t *testing.T) {
	idea := models.NewIdea("Pinned idea", "d", models.SourceText)
	var canvas models.Canvas
	canvas.Place(idea.ID, 40, 60)
	canvas.Annotate(idea.ID, "start with this")

	out := RenderCanvas(canvas, map[string]models.Idea{idea.ID: *idea})
	assert.Contains(t, out, "Pinned idea")
	assert.Contains(t, out, "start with this")
	assert.Contains(t, out, "1 ideas")
}

func TestRenderCanvasOrdersByZ(t *testing.T) {
	a := models.NewIdea("Bottom", "d", models.SourceText)
	b := models.NewIdea("Top", "d", models.SourceText)
	var canvas models.Canvas
	canvas.Place(a.ID, 0, 0)
	canvas.Place(b.ID, 10, 10)

	out := RenderCanvas(canvas, map[string]models.Idea{a.ID: *a, b.ID: *b})
	assert.Less(t, strings.Index(out, "Bottom"), strings.Index(out, "Top"))
}

func TestRenderCanvasEmpty(t *testing.T) {
	out := RenderCanvas(models.Canvas{}, nil)
	assert.Contains(t, out, "empty")
}
