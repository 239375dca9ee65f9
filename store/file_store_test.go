package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/types"
)

func newTestFileStore(t *testing.T, format string) *FileIdeaStore {
	t.Helper()
	s := NewFileIdeaStore()
	cfg := map[string]string{
		dataFileKey:       filepath.Join(t.TempDir(), "ideas."+format),
		dataFileFormatKey: format,
	}
	require.NoError(t, s.Initialize(cfg))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFileStoreCreateAndGet(t *testing.T) {
	s := newTestFileStore(t, "json")

	idea := models.NewIdea("Wheel-thrown lanterns", "Throw hollow forms and pierce them.", models.SourceText)
	created, err := s.CreateIdea(*idea)
	require.NoError(t, err)
	assert.Equal(t, idea.ID, created.ID)

	got, err := s.GetIdea(idea.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wheel-thrown lanterns", got.Title)
	assert.False(t, got.Saved)
}

func TestFileStoreGetMissing(t *testing.T) {
	s := newTestFileStore(t, "json")
	_, err := s.GetIdea("2f0a97f7-47f3-4b7a-9b21-111111111111")
	assert.True(t, errors.Is(err, types.ErrIdeaNotFound))
}

func TestFileStoreDuplicateID(t *testing.T) {
	s := newTestFileStore(t, "json")
	idea := models.NewIdea("Dup", "d", models.SourceText)
	_, err := s.CreateIdea(*idea)
	require.NoError(t, err)
	_, err = s.CreateIdea(*idea)
	assert.Error(t, err)
}

func TestFileStoreValidation(t *testing.T) {
	s := newTestFileStore(t, "json")
	bad := models.NewIdea("", "no title", models.SourceText)
	_, err := s.CreateIdea(*bad)
	assert.Error(t, err)
}

func TestFileStoreUpdateAndMarkSaved(t *testing.T) {
	s := newTestFileStore(t, "json")
	idea := models.NewIdea("Raku", "Outdoor firing.", models.SourceText)
	_, err := s.CreateIdea(*idea)
	require.NoError(t, err)

	updated, err := s.UpdateIdea(idea.ID, map[string]interface{}{"title": "Raku night", "hook": "The glow does half the work."})
	require.NoError(t, err)
	assert.Equal(t, "Raku night", updated.Title)
	assert.Equal(t, "The glow does half the work.", updated.Hook)

	saved, err := s.MarkSaved(idea.ID)
	require.NoError(t, err)
	assert.True(t, saved.Saved)

	_, err = s.UpdateIdea(idea.ID, map[string]interface{}{"bogus": 1})
	assert.Error(t, err)
}

func TestFileStoreDeleteRemovesCanvasPlacement(t *testing.T) {
	s := newTestFileStore(t, "json")
	idea := models.NewIdea("Placed", "d", models.SourceText)
	_, err := s.CreateIdea(*idea)
	require.NoError(t, err)

	var canvas models.Canvas
	canvas.Place(idea.ID, 10, 20)
	require.NoError(t, s.SaveCanvas(canvas))

	require.NoError(t, s.DeleteIdea(idea.ID))

	got, err := s.GetCanvas()
	require.NoError(t, err)
	assert.Empty(t, got.Items)

	err = s.DeleteIdea(idea.ID)
	assert.True(t, errors.Is(err, types.ErrIdeaNotFound))
}

func TestFileStoreListAndChildren(t *testing.T) {
	s := newTestFileStore(t, "json")

	parent := models.NewIdea("Parent", "d", models.SourceText)
	_, err := s.CreateIdea(*parent)
	require.NoError(t, err)
	_, err = s.MarkSaved(parent.ID)
	require.NoError(t, err)

	child := models.NewIdea("Child", "d", models.SourceText).WithParent(parent.ID)
	_, err = s.CreateIdea(*child)
	require.NoError(t, err)

	all, err := s.ListIdeas(nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	saved, err := s.ListIdeas(FilterSaved, nil)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, parent.ID, saved[0].ID)

	children, err := s.ListChildren(parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)
	assert.Equal(t, models.SourceExploration, children[0].Source)
}

func TestFileStoreSaveCanvasRejectsUnknownIdea(t *testing.T) {
	s := newTestFileStore(t, "json")
	var canvas models.Canvas
	canvas.Place("2f0a97f7-47f3-4b7a-9b21-222222222222", 0, 0)
	err := s.SaveCanvas(canvas)
	assert.True(t, errors.Is(err, types.ErrIdeaNotFound))
}

func TestFileStorePersistenceAcrossInstances(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ideas."+format)
			cfg := map[string]string{dataFileKey: path, dataFileFormatKey: format}

			s1 := NewFileIdeaStore()
			require.NoError(t, s1.Initialize(cfg))
			idea := models.NewIdea("Persisted", "Survives restarts.", models.SourceText)
			_, err := s1.CreateIdea(*idea)
			require.NoError(t, err)
			var canvas models.Canvas
			canvas.Place(idea.ID, 5, 7)
			require.NoError(t, s1.SaveCanvas(canvas))
			require.NoError(t, s1.Close())

			s2 := NewFileIdeaStore()
			require.NoError(t, s2.Initialize(cfg))
			defer s2.Close()
			got, err := s2.GetIdea(idea.ID)
			require.NoError(t, err)
			assert.Equal(t, "Persisted", got.Title)
			c, err := s2.GetCanvas()
			require.NoError(t, err)
			require.Len(t, c.Items, 1)
			assert.Equal(t, 5.0, c.Items[0].X)
		})
	}
}

func TestFileStoreChecksumMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideas.json")
	cfg := map[string]string{dataFileKey: path}

	s1 := NewFileIdeaStore()
	require.NoError(t, s1.Initialize(cfg))
	idea := models.NewIdea("Tamper target", "d", models.SourceText)
	_, err := s1.CreateIdea(*idea)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Corrupt the data file without touching the checksum sidecar.
	require.NoError(t, os.WriteFile(path, []byte(`{"ideas":{}}`), 0o644))

	s2 := NewFileIdeaStore()
	err = s2.Initialize(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestFileStoreBackupAndRestore(t *testing.T) {
	dir := t.TempDir()
	cfg := map[string]string{dataFileKey: filepath.Join(dir, "ideas.json")}

	s := NewFileIdeaStore()
	require.NoError(t, s.Initialize(cfg))
	defer s.Close()

	idea := models.NewIdea("Backed up", "d", models.SourceText)
	_, err := s.CreateIdea(*idea)
	require.NoError(t, err)

	backupPath := filepath.Join(dir, "backups", "ideas.bak")
	require.NoError(t, s.Backup(backupPath))

	require.NoError(t, s.DeleteAllIdeas())
	all, err := s.ListIdeas(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, s.Restore(backupPath))
	got, err := s.GetIdea(idea.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backed up", got.Title)
}

func TestFileStoreUnsupportedFormat(t *testing.T) {
	s := NewFileIdeaStore()
	err := s.Initialize(map[string]string{
		dataFileKey:       filepath.Join(t.TempDir(), "ideas.xml"),
		dataFileFormatKey: "xml",
	})
	assert.Error(t, err)
}

// The serve watcher reloads the store from its own goroutine while HTTP
// handlers keep reading; both must be safe to run at once.
func TestFileStoreConcurrentReloadAndReads(t *testing.T) {
	s := newTestFileStore(t, "json")

	idea, err := s.CreateIdea(*models.NewIdea("Stable card", "d", models.SourceText))
	require.NoError(t, err)

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			if err := s.Reload(); err != nil {
				t.Errorf("Reload() error = %v", err)
				break
			}
		}
		close(done)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if _, err := s.GetIdea(idea.ID); err != nil {
				t.Errorf("GetIdea during reload: %v", err)
				return
			}
			if _, err := s.ListIdeas(nil, nil); err != nil {
				t.Errorf("ListIdeas during reload: %v", err)
				return
			}
			if _, err := s.GetCanvas(); err != nil {
				t.Errorf("GetCanvas during reload: %v", err)
				return
			}
		}
	}()

	wg.Wait()
}
