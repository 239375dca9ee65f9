package models

import (
	"testing"
	"time"
)

func TestNewIdea(t *testing.T) {
	idea := NewIdea("Glaze swap", "Trade glazes with another potter for one firing.", SourceText)

	if idea.ID == "" {
		t.Error("NewIdea should assign an ID")
	}
	if idea.Saved {
		t.Error("new ideas start unsaved")
	}
	if idea.Source != SourceText {
		t.Errorf("Source = %v, want %v", idea.Source, SourceText)
	}
	if err := ValidateStruct(idea); err != nil {
		t.Errorf("new idea should validate: %v", err)
	}
}

func TestWithParent(t *testing.T) {
	parent := NewIdea("Parent", "", SourceText)
	child := NewIdea("Child", "", SourceText).WithParent(parent.ID)

	if child.Source != SourceExploration {
		t.Errorf("explore children take source exploration, got %v", child.Source)
	}
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Error("ParentID should point at the originating card")
	}
	if err := ValidateStruct(child); err != nil {
		t.Errorf("child idea should validate: %v", err)
	}
}

func TestValidateStructRejectsBadIdea(t *testing.T) {
	bad := &Idea{
		ID:        "not-a-uuid",
		Title:     "x",
		Source:    "carrier-pigeon",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := ValidateStruct(bad); err == nil {
		t.Error("expected validation error for bad ID and source")
	}
}
