package ui

import (
	"fmt"
	"strings"

	"github.com/zacharylandes/fizzbit-sub000/internal/blend"
)

// Triangle raster size in terminal cells.
const (
	triCols = 25
	triRows = 9
)

// RenderTriangle draws the blend triangle with the marker and the current
// weights. Logical blend space (0..100 on both axes) is scaled onto a small
// character grid; precision loss there is fine because the weights shown come
// from the logical position, not the raster.
func RenderTriangle(pos blend.Point, w blend.Weights) string {
	v := blend.DefaultVertices

	grid := make([][]rune, triRows)
	for r := range grid {
		grid[r] = make([]rune, triCols)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	plot := func(p blend.Point, ch rune) {
		col := int(p.X / 100 * float64(triCols-1))
		row := int(p.Y / 100 * float64(triRows-1))
		if col < 0 {
			col = 0
		}
		if col >= triCols {
			col = triCols - 1
		}
		if row < 0 {
			row = 0
		}
		if row >= triRows {
			row = triRows - 1
		}
		grid[row][col] = ch
	}

	plot(v.Wild, 'W')
	plot(v.Actionable, 'A')
	plot(v.Deep, 'D')
	plot(pos, '●')

	var b strings.Builder
	for _, row := range grid {
		line := strings.TrimRight(string(row), " ")
		b.WriteString("  ")
		for _, ch := range line {
			switch ch {
			case 'W':
				b.WriteString(StyleWild.Render("W"))
			case 'A':
				b.WriteString(StyleAction.Render("A"))
			case 'D':
				b.WriteString(StyleDeep.Render("D"))
			case '●':
				b.WriteString(StylePrimary.Render("●"))
			default:
				b.WriteRune(ch)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("  ")
	b.WriteString(StyleWild.Render(fmt.Sprintf("wild %d%%", pct(w.Wild))))
	b.WriteString(StyleSubtle.Render(" · "))
	b.WriteString(StyleAction.Render(fmt.Sprintf("actionable %d%%", pct(w.Actionable))))
	b.WriteString(StyleSubtle.Render(" · "))
	b.WriteString(StyleDeep.Render(fmt.Sprintf("deep %d%%", pct(w.Deep))))
	b.WriteString("\n")
	return b.String()
}

func pct(f float64) int {
	return int(f*100 + 0.5)
}
