package store

import "github.com/zacharylandes/fizzbit-sub000/models"

// IdeaStore defines the interface for idea persistence: CRUD on idea cards,
// the saved-idea canvas, and backup/restore of the whole collection.
type IdeaStore interface {
	// Initialize configures the store with backend-specific settings (file
	// path, data format). It must be called before any other operation.
	Initialize(config map[string]string) error

	// CreateIdea adds a new idea to the store and returns it.
	CreateIdea(idea models.Idea) (models.Idea, error)

	// GetIdea retrieves an idea by ID. Returns types.ErrIdeaNotFound when the
	// idea does not exist.
	GetIdea(id string) (models.Idea, error)

	// UpdateIdea applies the given field updates to an existing idea. The
	// updates map uses the JSON field names (title, description, hook,
	// isSaved).
	UpdateIdea(id string, updates map[string]interface{}) (models.Idea, error)

	// DeleteIdea removes an idea (and its canvas placement, if any).
	DeleteIdea(id string) error

	// DeleteAllIdeas removes every idea. Destructive.
	DeleteAllIdeas() error

	// MarkSaved flips an idea to saved and returns it.
	MarkSaved(id string) (models.Idea, error)

	// ListIdeas retrieves ideas, optionally filtered and sorted. A nil
	// filterFn keeps everything; a nil sortFn returns natural order.
	ListIdeas(filterFn func(models.Idea) bool, sortFn func([]models.Idea) []models.Idea) ([]models.Idea, error)

	// ListChildren returns the exploration children of an idea.
	ListChildren(parentID string) ([]models.Idea, error)

	// GetCanvas returns the freeform canvas of saved-idea placements.
	GetCanvas() (models.Canvas, error)

	// SaveCanvas replaces the canvas.
	SaveCanvas(canvas models.Canvas) error

	// Backup writes a copy of the current data to destinationPath.
	Backup(destinationPath string) error

	// Restore replaces current data with data from sourcePath. Destructive.
	Restore(sourcePath string) error

	// Close releases file locks or database handles.
	Close() error
}

// FilterSaved keeps only saved ideas; pass it to ListIdeas.
func FilterSaved(idea models.Idea) bool { return idea.Saved }

// NewStore returns the backend for a data format: sqlite gets the database
// store, everything else the flat-file store.
func NewStore(format string) IdeaStore {
	if format == "sqlite" {
		return NewSQLiteIdeaStore()
	}
	return NewFileIdeaStore()
}
