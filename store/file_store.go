package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/types"
	yaml "gopkg.in/yaml.v3"
)

const (
	defaultDataFile   = "ideas.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	formatTOML        = "toml"
	checksumSuffix    = ".checksum"
)

// fileDocument is the on-disk shape: the idea map plus the canvas.
type fileDocument struct {
	Ideas  map[string]models.Idea `json:"ideas" yaml:"ideas" toml:"ideas"`
	Canvas models.Canvas          `json:"canvas" yaml:"canvas" toml:"canvas"`
}

// FileIdeaStore implements IdeaStore using a flat file backend. It supports
// JSON, YAML, and TOML formats and uses file-level locking so a running
// `serve` and a CLI invocation cannot corrupt each other's writes. The mutex
// guards the in-memory maps against the serve watcher's Reload running
// concurrently with handler reads; flock only serializes across processes.
type FileIdeaStore struct {
	filePath string
	format   string
	flk      *flock.Flock
	mu       sync.RWMutex
	ideas    map[string]models.Idea
	canvas   models.Canvas
}

// NewFileIdeaStore creates a new instance; Initialize must be called before use.
func NewFileIdeaStore() *FileIdeaStore {
	return &FileIdeaStore{ideas: make(map[string]models.Idea)}
}

// Initialize configures the store. It expects a 'dataFile' path and an
// optional 'dataFileFormat' (json, yaml, toml), loads existing data if the
// file exists, and establishes the file lock.
func (s *FileIdeaStore) Initialize(config map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json, yaml, toml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)
	locked, err := s.flk.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire initial lock for %s: %w", s.filePath, err)
	}
	if !locked {
		if err := s.flk.Lock(); err != nil {
			return fmt.Errorf("failed to acquire blocking initial lock for %s: %w", s.filePath, err)
		}
	}
	defer func() { _ = s.flk.Unlock() }()

	s.ideas = make(map[string]models.Idea)
	s.canvas = models.Canvas{}
	return s.loadInternal()
}

// Reload re-reads the data file, discarding in-memory state. Used by the
// serve watcher when the file changes on disk.
func (s *FileIdeaStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("lock for reload: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()
	s.ideas = make(map[string]models.Idea)
	s.canvas = models.Canvas{}
	return s.loadInternal()
}

// Path returns the backing data file path.
func (s *FileIdeaStore) Path() string { return s.filePath }

func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// loadInternal reads the data file; callers hold the lock. A missing file is
// an empty store, not an error. A checksum mismatch is reported rather than
// silently loading corrupt data.
func (s *FileIdeaStore) loadInternal() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read data file %s: %w", s.filePath, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	checksumPath := s.filePath + checksumSuffix
	if stored, err := os.ReadFile(checksumPath); err == nil {
		if calculateChecksum(data) != strings.TrimSpace(string(stored)) {
			return fmt.Errorf("checksum mismatch for %s: data file may be corrupt", s.filePath)
		}
	}

	var doc fileDocument
	switch s.format {
	case formatJSON:
		err = json.Unmarshal(data, &doc)
	case formatYAML:
		err = yaml.Unmarshal(data, &doc)
	case formatTOML:
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s data from %s: %w", s.format, s.filePath, err)
	}

	if doc.Ideas != nil {
		s.ideas = doc.Ideas
	}
	s.canvas = doc.Canvas
	return nil
}

// saveInternal writes the current state and its checksum sidecar; callers
// hold the lock.
func (s *FileIdeaStore) saveInternal() error {
	doc := fileDocument{Ideas: s.ideas, Canvas: s.canvas}

	var data []byte
	var err error
	switch s.format {
	case formatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case formatYAML:
		data, err = yaml.Marshal(doc)
	case formatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(doc)
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s data: %w", s.format, err)
	}

	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", s.filePath, err)
	}
	checksumPath := s.filePath + checksumSuffix
	if err := os.WriteFile(checksumPath, []byte(calculateChecksum(data)), 0o644); err != nil {
		return fmt.Errorf("failed to write checksum file %s: %w", checksumPath, err)
	}
	return nil
}

// mutate runs fn under both locks and persists the result.
func (s *FileIdeaStore) mutate(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()
	if err := fn(); err != nil {
		return err
	}
	return s.saveInternal()
}

// CreateIdea adds a new idea after validating it.
func (s *FileIdeaStore) CreateIdea(idea models.Idea) (models.Idea, error) {
	if err := models.ValidateStruct(&idea); err != nil {
		return models.Idea{}, fmt.Errorf("idea validation failed: %w", err)
	}
	err := s.mutate(func() error {
		if _, exists := s.ideas[idea.ID]; exists {
			return fmt.Errorf("idea with ID %s already exists", idea.ID)
		}
		s.ideas[idea.ID] = idea
		return nil
	})
	if err != nil {
		return models.Idea{}, err
	}
	return idea, nil
}

// GetIdea retrieves an idea by its ID.
func (s *FileIdeaStore) GetIdea(id string) (models.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idea, ok := s.ideas[id]
	if !ok {
		return models.Idea{}, fmt.Errorf("%w: %s", types.ErrIdeaNotFound, id)
	}
	return idea, nil
}

// UpdateIdea applies field updates to an existing idea.
func (s *FileIdeaStore) UpdateIdea(id string, updates map[string]interface{}) (models.Idea, error) {
	var updated models.Idea
	err := s.mutate(func() error {
		idea, ok := s.ideas[id]
		if !ok {
			return fmt.Errorf("%w: %s", types.ErrIdeaNotFound, id)
		}
		for field, value := range updates {
			switch field {
			case "title":
				if v, ok := value.(string); ok {
					idea.Title = v
				}
			case "description":
				if v, ok := value.(string); ok {
					idea.Description = v
				}
			case "hook":
				if v, ok := value.(string); ok {
					idea.Hook = v
				}
			case "isSaved":
				if v, ok := value.(bool); ok {
					idea.Saved = v
				}
			default:
				return fmt.Errorf("unknown update field: %s", field)
			}
		}
		idea.UpdatedAt = time.Now()
		if err := models.ValidateStruct(&idea); err != nil {
			return fmt.Errorf("updated idea failed validation: %w", err)
		}
		s.ideas[id] = idea
		updated = idea
		return nil
	})
	if err != nil {
		return models.Idea{}, err
	}
	return updated, nil
}

// DeleteIdea removes an idea and its canvas placement.
func (s *FileIdeaStore) DeleteIdea(id string) error {
	return s.mutate(func() error {
		if _, ok := s.ideas[id]; !ok {
			return fmt.Errorf("%w: %s", types.ErrIdeaNotFound, id)
		}
		delete(s.ideas, id)
		s.canvas.Remove(id)
		return nil
	})
}

// DeleteAllIdeas removes every idea and clears the canvas.
func (s *FileIdeaStore) DeleteAllIdeas() error {
	return s.mutate(func() error {
		s.ideas = make(map[string]models.Idea)
		s.canvas = models.Canvas{UpdatedAt: time.Now()}
		return nil
	})
}

// MarkSaved flips an idea to saved.
func (s *FileIdeaStore) MarkSaved(id string) (models.Idea, error) {
	return s.UpdateIdea(id, map[string]interface{}{"isSaved": true})
}

// ListIdeas retrieves ideas with optional filter and sort. With a nil sortFn,
// ideas come back ordered by creation time so the listing is stable across
// runs despite the map backing.
func (s *FileIdeaStore) ListIdeas(filterFn func(models.Idea) bool, sortFn func([]models.Idea) []models.Idea) ([]models.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ideas := make([]models.Idea, 0, len(s.ideas))
	for _, idea := range s.ideas {
		if filterFn == nil || filterFn(idea) {
			ideas = append(ideas, idea)
		}
	}
	if sortFn != nil {
		return sortFn(ideas), nil
	}
	sort.Slice(ideas, func(i, j int) bool {
		if ideas[i].CreatedAt.Equal(ideas[j].CreatedAt) {
			return ideas[i].ID < ideas[j].ID
		}
		return ideas[i].CreatedAt.Before(ideas[j].CreatedAt)
	})
	return ideas, nil
}

// ListChildren returns the exploration children of an idea.
func (s *FileIdeaStore) ListChildren(parentID string) ([]models.Idea, error) {
	return s.ListIdeas(func(i models.Idea) bool {
		return i.ParentID != nil && *i.ParentID == parentID
	}, nil)
}

// GetCanvas returns the current canvas.
func (s *FileIdeaStore) GetCanvas() (models.Canvas, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canvas, nil
}

// SaveCanvas replaces the canvas. Placements referencing unknown ideas are
// rejected so the canvas cannot drift from the idea collection.
func (s *FileIdeaStore) SaveCanvas(canvas models.Canvas) error {
	return s.mutate(func() error {
		for _, item := range canvas.Items {
			if _, ok := s.ideas[item.IdeaID]; !ok {
				return fmt.Errorf("canvas references %w: %s", types.ErrIdeaNotFound, item.IdeaID)
			}
		}
		s.canvas = canvas
		return nil
	})
}

// Backup copies the data file to destinationPath.
func (s *FileIdeaStore) Backup(destinationPath string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for backup: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read data file for backup: %w", err)
	}
	if dir := filepath.Dir(destinationPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
	}
	return os.WriteFile(destinationPath, data, 0o644)
}

// Restore replaces current data with the contents of sourcePath.
func (s *FileIdeaStore) Restore(sourcePath string) error {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read restore source: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for restore: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write restored data: %w", err)
	}
	checksumPath := s.filePath + checksumSuffix
	if err := os.WriteFile(checksumPath, []byte(calculateChecksum(data)), 0o644); err != nil {
		return fmt.Errorf("failed to write restored checksum: %w", err)
	}
	s.ideas = make(map[string]models.Idea)
	s.canvas = models.Canvas{}
	return s.loadInternal()
}

// Close releases the file lock.
func (s *FileIdeaStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
