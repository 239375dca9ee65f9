package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/types"
)

func newTestSQLiteStore(t *testing.T) *SQLiteIdeaStore {
	t.Helper()
	s := NewSQLiteIdeaStore()
	require.NoError(t, s.Initialize(map[string]string{
		dataFileKey: filepath.Join(t.TempDir(), "ideas.db"),
	}))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	idea := models.NewIdea("Slipcast chorus", "Cast the same form in ten clays.", models.SourceImage)
	content := "a photo of stacked molds"
	idea.SourceContent = &content
	idea.Hook = "Repetition reveals the material."
	idea.Metadata["camera"] = "phone"

	_, err := s.CreateIdea(*idea)
	require.NoError(t, err)

	got, err := s.GetIdea(idea.ID)
	require.NoError(t, err)
	assert.Equal(t, idea.Title, got.Title)
	assert.Equal(t, models.SourceImage, got.Source)
	require.NotNil(t, got.SourceContent)
	assert.Equal(t, content, *got.SourceContent)
	assert.Equal(t, "phone", got.Metadata["camera"])
	assert.Nil(t, got.ParentID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSQLiteStoreNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)

	_, err := s.GetIdea("2f0a97f7-47f3-4b7a-9b21-333333333333")
	assert.True(t, errors.Is(err, types.ErrIdeaNotFound))

	_, err = s.UpdateIdea("2f0a97f7-47f3-4b7a-9b21-333333333333", map[string]interface{}{"title": "x"})
	assert.True(t, errors.Is(err, types.ErrIdeaNotFound))

	err = s.DeleteIdea("2f0a97f7-47f3-4b7a-9b21-333333333333")
	assert.True(t, errors.Is(err, types.ErrIdeaNotFound))
}

func TestSQLiteStoreUpdateAndMarkSaved(t *testing.T) {
	s := newTestSQLiteStore(t)
	idea := models.NewIdea("Pinch pots", "d", models.SourceText)
	_, err := s.CreateIdea(*idea)
	require.NoError(t, err)

	updated, err := s.UpdateIdea(idea.ID, map[string]interface{}{"description": "One per day for a month."})
	require.NoError(t, err)
	assert.Equal(t, "One per day for a month.", updated.Description)
	assert.True(t, updated.UpdatedAt.After(idea.UpdatedAt) || updated.UpdatedAt.Equal(idea.UpdatedAt))

	saved, err := s.MarkSaved(idea.ID)
	require.NoError(t, err)
	assert.True(t, saved.Saved)
}

func TestSQLiteStoreChildrenAndFilter(t *testing.T) {
	s := newTestSQLiteStore(t)

	parent := models.NewIdea("Parent", "d", models.SourceText)
	_, err := s.CreateIdea(*parent)
	require.NoError(t, err)
	_, err = s.MarkSaved(parent.ID)
	require.NoError(t, err)

	child := models.NewIdea("Child", "d", models.SourceText).WithParent(parent.ID)
	_, err = s.CreateIdea(*child)
	require.NoError(t, err)

	children, err := s.ListChildren(parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	require.NotNil(t, children[0].ParentID)
	assert.Equal(t, parent.ID, *children[0].ParentID)

	saved, err := s.ListIdeas(FilterSaved, nil)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, parent.ID, saved[0].ID)
}

func TestSQLiteStoreCanvas(t *testing.T) {
	s := newTestSQLiteStore(t)

	a := models.NewIdea("A", "d", models.SourceText)
	b := models.NewIdea("B", "d", models.SourceText)
	_, err := s.CreateIdea(*a)
	require.NoError(t, err)
	_, err = s.CreateIdea(*b)
	require.NoError(t, err)

	var canvas models.Canvas
	canvas.Place(a.ID, 100, 50)
	canvas.Place(b.ID, 200, 75)
	require.True(t, canvas.Annotate(a.ID, "start here"))
	require.NoError(t, s.SaveCanvas(canvas))

	got, err := s.GetCanvas()
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	first, ok := got.Find(a.ID)
	require.True(t, ok)
	assert.Equal(t, 100.0, first.X)
	assert.Equal(t, "start here", first.Note)
	assert.False(t, got.UpdatedAt.IsZero())

	// Deleting an idea cascades its placement away.
	require.NoError(t, s.DeleteIdea(b.ID))
	got, err = s.GetCanvas()
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, a.ID, got.Items[0].IdeaID)
}

func TestSQLiteStoreCanvasRejectsUnknownIdea(t *testing.T) {
	s := newTestSQLiteStore(t)
	var canvas models.Canvas
	canvas.Place("2f0a97f7-47f3-4b7a-9b21-444444444444", 0, 0)
	assert.Error(t, s.SaveCanvas(canvas))
}

func TestSQLiteStoreBackupAndRestore(t *testing.T) {
	dir := t.TempDir()
	s := NewSQLiteIdeaStore()
	require.NoError(t, s.Initialize(map[string]string{dataFileKey: filepath.Join(dir, "ideas.db")}))
	defer s.Close()

	idea := models.NewIdea("Snapshot", "d", models.SourceText)
	_, err := s.CreateIdea(*idea)
	require.NoError(t, err)

	backupPath := filepath.Join(dir, "backups", "ideas.bak.db")
	require.NoError(t, s.Backup(backupPath))

	require.NoError(t, s.DeleteAllIdeas())
	require.NoError(t, s.Restore(backupPath))

	got, err := s.GetIdea(idea.ID)
	require.NoError(t, err)
	assert.Equal(t, "Snapshot", got.Title)
}

func TestNewStoreFactory(t *testing.T) {
	if _, ok := NewStore("sqlite").(*SQLiteIdeaStore); !ok {
		t.Error("sqlite format should return SQLiteIdeaStore")
	}
	if _, ok := NewStore("json").(*FileIdeaStore); !ok {
		t.Error("json format should return FileIdeaStore")
	}
	if _, ok := NewStore("yaml").(*FileIdeaStore); !ok {
		t.Error("yaml format should return FileIdeaStore")
	}
}
