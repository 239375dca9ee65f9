package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// IdeaSource identifies what kind of user input produced an idea.
type IdeaSource string

const (
	SourceText        IdeaSource = "text"
	SourceImage       IdeaSource = "image"
	SourceAudio       IdeaSource = "audio"
	SourceDrawing     IdeaSource = "drawing"
	SourceExploration IdeaSource = "exploration"
)

// Idea represents a single idea card.
type Idea struct {
	ID          string     `json:"id" validate:"required,uuid4"`
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description,omitempty"`
	Hook        string     `json:"hook,omitempty"`
	Source      IdeaSource `json:"source" validate:"required,oneof=text image audio drawing exploration"`
	// SourceContent holds the originating input (subject text, image description,
	// voice-note transcript). Nil when the input was not retained.
	SourceContent *string `json:"sourceContent,omitempty"`
	// ParentID links an idea produced via explore back to its originating card.
	// Explore always points at an already-persisted card, so the links form a forest.
	ParentID  *string           `json:"parentIdeaId,omitempty" validate:"omitempty,uuid4"`
	Saved     bool              `json:"isSaved"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt" validate:"required"`
	UpdatedAt time.Time         `json:"updatedAt" validate:"required"`
}

// IdeaList represents a collection of ideas.
type IdeaList struct {
	Ideas      []Idea `json:"ideas" validate:"dive"`
	TotalCount int    `json:"totalCount"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}

// NewIdea creates an idea with a fresh ID and timestamps.
func NewIdea(title, description string, source IdeaSource) *Idea {
	now := time.Now()
	return &Idea{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Source:      source,
		Saved:       false,
		Metadata:    map[string]string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WithParent marks the idea as an exploration child of parentID.
func (i *Idea) WithParent(parentID string) *Idea {
	i.Source = SourceExploration
	i.ParentID = &parentID
	return i
}
