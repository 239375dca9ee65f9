package models

import "time"

// CanvasItem is one saved idea placed on the freeform canvas.
type CanvasItem struct {
	IdeaID string  `json:"ideaId" validate:"required,uuid4"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	// Note is a freeform annotation attached to the placement.
	Note  string `json:"note,omitempty"`
	Color string `json:"color,omitempty"`
	Z     int    `json:"z"`
}

// Canvas holds every placement for a user's saved ideas.
type Canvas struct {
	Items     []CanvasItem `json:"items" validate:"dive"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// Place adds or moves an item. Placing an already-placed idea updates its
// position and bumps it to the top of the z-order.
func (c *Canvas) Place(ideaID string, x, y float64) {
	maxZ := 0
	for i := range c.Items {
		if c.Items[i].Z > maxZ {
			maxZ = c.Items[i].Z
		}
	}
	for i := range c.Items {
		if c.Items[i].IdeaID == ideaID {
			c.Items[i].X = x
			c.Items[i].Y = y
			c.Items[i].Z = maxZ + 1
			c.UpdatedAt = time.Now()
			return
		}
	}
	c.Items = append(c.Items, CanvasItem{IdeaID: ideaID, X: x, Y: y, Z: maxZ + 1})
	c.UpdatedAt = time.Now()
}

// Annotate sets the note on a placed idea. Returns false if the idea is not on
// the canvas.
func (c *Canvas) Annotate(ideaID, note string) bool {
	for i := range c.Items {
		if c.Items[i].IdeaID == ideaID {
			c.Items[i].Note = note
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Remove drops an idea from the canvas. Returns false if it was not placed.
func (c *Canvas) Remove(ideaID string) bool {
	for i := range c.Items {
		if c.Items[i].IdeaID == ideaID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Find returns the placement for an idea, if any.
func (c *Canvas) Find(ideaID string) (CanvasItem, bool) {
	for _, it := range c.Items {
		if it.IdeaID == ideaID {
			return it, true
		}
	}
	return CanvasItem{}, false
}
