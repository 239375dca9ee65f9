package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS ideas (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	hook TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL,
	source_content TEXT,
	parent_id TEXT REFERENCES ideas(id) ON DELETE SET NULL,
	is_saved INTEGER NOT NULL DEFAULT 0,
	metadata TEXT NOT NULL DEFAULT '{}',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ideas_parent ON ideas(parent_id);
CREATE INDEX IF NOT EXISTS idx_ideas_saved ON ideas(is_saved);

CREATE TABLE IF NOT EXISTS canvas_items (
	idea_id TEXT PRIMARY KEY REFERENCES ideas(id) ON DELETE CASCADE,
	x REAL NOT NULL,
	y REAL NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	z INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS canvas_meta (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	updated_at TEXT NOT NULL
);
`

// SQLiteIdeaStore implements IdeaStore on a SQLite database. It is the
// backend for larger collections where rewriting a flat file on every swipe
// gets expensive.
type SQLiteIdeaStore struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteIdeaStore creates a new instance; Initialize must be called before use.
func NewSQLiteIdeaStore() *SQLiteIdeaStore {
	return &SQLiteIdeaStore{}
}

// Initialize opens (creating if needed) the database at the configured
// 'dataFile' path and applies the schema.
func (s *SQLiteIdeaStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = "ideas.db"
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", s.filePath)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", s.filePath, err)
	}
	// modernc.org/sqlite serializes access itself but a single connection
	// avoids SQLITE_BUSY between the server and the watcher.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	s.db = db
	return nil
}

// Path returns the backing database file path.
func (s *SQLiteIdeaStore) Path() string { return s.filePath }

func (s *SQLiteIdeaStore) scanIdea(row interface{ Scan(...interface{}) error }) (models.Idea, error) {
	var idea models.Idea
	var sourceContent, parentID sql.NullString
	var saved int
	var metadataJSON, createdAt, updatedAt string

	err := row.Scan(&idea.ID, &idea.Title, &idea.Description, &idea.Hook, &idea.Source,
		&sourceContent, &parentID, &saved, &metadataJSON, &createdAt, &updatedAt)
	if err != nil {
		return models.Idea{}, err
	}
	if sourceContent.Valid {
		idea.SourceContent = &sourceContent.String
	}
	if parentID.Valid {
		idea.ParentID = &parentID.String
	}
	idea.Saved = saved != 0
	if metadataJSON != "" {
		if err := json.Unmarshal([]byte(metadataJSON), &idea.Metadata); err != nil {
			return models.Idea{}, fmt.Errorf("failed to parse idea metadata: %w", err)
		}
	}
	if idea.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return models.Idea{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if idea.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return models.Idea{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return idea, nil
}

const ideaColumns = "id, title, description, hook, source, source_content, parent_id, is_saved, metadata, created_at, updated_at"

// CreateIdea adds a new idea after validating it.
func (s *SQLiteIdeaStore) CreateIdea(idea models.Idea) (models.Idea, error) {
	if err := models.ValidateStruct(&idea); err != nil {
		return models.Idea{}, fmt.Errorf("idea validation failed: %w", err)
	}

	metadataJSON, err := json.Marshal(idea.Metadata)
	if err != nil {
		return models.Idea{}, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	saved := 0
	if idea.Saved {
		saved = 1
	}
	_, err = s.db.Exec(
		"INSERT INTO ideas ("+ideaColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		idea.ID, idea.Title, idea.Description, idea.Hook, string(idea.Source),
		nullable(idea.SourceContent), nullable(idea.ParentID), saved, string(metadataJSON),
		idea.CreatedAt.Format(time.RFC3339Nano), idea.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return models.Idea{}, fmt.Errorf("failed to insert idea: %w", err)
	}
	return idea, nil
}

func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// GetIdea retrieves an idea by its ID.
func (s *SQLiteIdeaStore) GetIdea(id string) (models.Idea, error) {
	row := s.db.QueryRow("SELECT "+ideaColumns+" FROM ideas WHERE id = ?", id)
	idea, err := s.scanIdea(row)
	if err == sql.ErrNoRows {
		return models.Idea{}, fmt.Errorf("%w: %s", types.ErrIdeaNotFound, id)
	}
	if err != nil {
		return models.Idea{}, fmt.Errorf("failed to query idea: %w", err)
	}
	return idea, nil
}

// UpdateIdea applies field updates to an existing idea.
func (s *SQLiteIdeaStore) UpdateIdea(id string, updates map[string]interface{}) (models.Idea, error) {
	var sets []string
	var args []interface{}
	for field, value := range updates {
		switch field {
		case "title":
			sets = append(sets, "title = ?")
			args = append(args, value)
		case "description":
			sets = append(sets, "description = ?")
			args = append(args, value)
		case "hook":
			sets = append(sets, "hook = ?")
			args = append(args, value)
		case "isSaved":
			saved := 0
			if v, ok := value.(bool); ok && v {
				saved = 1
			}
			sets = append(sets, "is_saved = ?")
			args = append(args, saved)
		default:
			return models.Idea{}, fmt.Errorf("unknown update field: %s", field)
		}
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().Format(time.RFC3339Nano), id)

	res, err := s.db.Exec("UPDATE ideas SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.Idea{}, fmt.Errorf("failed to update idea: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return models.Idea{}, fmt.Errorf("%w: %s", types.ErrIdeaNotFound, id)
	}
	return s.GetIdea(id)
}

// DeleteIdea removes an idea; its canvas placement cascades away.
func (s *SQLiteIdeaStore) DeleteIdea(id string) error {
	res, err := s.db.Exec("DELETE FROM ideas WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", types.ErrIdeaNotFound, id)
	}
	return nil
}

// DeleteAllIdeas removes every idea and clears the canvas.
func (s *SQLiteIdeaStore) DeleteAllIdeas() error {
	if _, err := s.db.Exec("DELETE FROM ideas"); err != nil {
		return fmt.Errorf("failed to delete ideas: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM canvas_meta"); err != nil {
		return fmt.Errorf("failed to clear canvas metadata: %w", err)
	}
	return nil
}

// MarkSaved flips an idea to saved.
func (s *SQLiteIdeaStore) MarkSaved(id string) (models.Idea, error) {
	return s.UpdateIdea(id, map[string]interface{}{"isSaved": true})
}

// ListIdeas retrieves ideas with optional filter and sort. Natural order is
// creation time; the filter runs in Go so callers can reuse the same
// predicates across both backends.
func (s *SQLiteIdeaStore) ListIdeas(filterFn func(models.Idea) bool, sortFn func([]models.Idea) []models.Idea) ([]models.Idea, error) {
	rows, err := s.db.Query("SELECT " + ideaColumns + " FROM ideas ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query ideas: %w", err)
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		idea, err := s.scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		if filterFn == nil || filterFn(idea) {
			ideas = append(ideas, idea)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if sortFn != nil {
		return sortFn(ideas), nil
	}
	return ideas, nil
}

// ListChildren returns the exploration children of an idea.
func (s *SQLiteIdeaStore) ListChildren(parentID string) ([]models.Idea, error) {
	return s.ListIdeas(func(i models.Idea) bool {
		return i.ParentID != nil && *i.ParentID == parentID
	}, nil)
}

// GetCanvas returns the current canvas.
func (s *SQLiteIdeaStore) GetCanvas() (models.Canvas, error) {
	var canvas models.Canvas

	var updatedAt string
	err := s.db.QueryRow("SELECT updated_at FROM canvas_meta WHERE id = 1").Scan(&updatedAt)
	if err == nil {
		canvas.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	} else if err != sql.ErrNoRows {
		return models.Canvas{}, fmt.Errorf("failed to query canvas metadata: %w", err)
	}

	rows, err := s.db.Query("SELECT idea_id, x, y, note, color, z FROM canvas_items ORDER BY z, idea_id")
	if err != nil {
		return models.Canvas{}, fmt.Errorf("failed to query canvas items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.CanvasItem
		if err := rows.Scan(&item.IdeaID, &item.X, &item.Y, &item.Note, &item.Color, &item.Z); err != nil {
			return models.Canvas{}, fmt.Errorf("failed to scan canvas item: %w", err)
		}
		canvas.Items = append(canvas.Items, item)
	}
	return canvas, rows.Err()
}

// SaveCanvas replaces the canvas. Placements referencing unknown ideas fail
// the foreign-key check and roll the whole write back.
func (s *SQLiteIdeaStore) SaveCanvas(canvas models.Canvas) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin canvas transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM canvas_items"); err != nil {
		return fmt.Errorf("failed to clear canvas: %w", err)
	}
	for _, item := range canvas.Items {
		_, err := tx.Exec(
			"INSERT INTO canvas_items (idea_id, x, y, note, color, z) VALUES (?, ?, ?, ?, ?, ?)",
			item.IdeaID, item.X, item.Y, item.Note, item.Color, item.Z,
		)
		if err != nil {
			return fmt.Errorf("failed to place idea %s on canvas: %w", item.IdeaID, err)
		}
	}
	updatedAt := canvas.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	_, err = tx.Exec(
		"INSERT INTO canvas_meta (id, updated_at) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at",
		updatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to update canvas metadata: %w", err)
	}
	return tx.Commit()
}

// Backup writes a consistent snapshot of the database to destinationPath
// using VACUUM INTO.
func (s *SQLiteIdeaStore) Backup(destinationPath string) error {
	if dir := filepath.Dir(destinationPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
	}
	// VACUUM INTO refuses to overwrite an existing file.
	if _, err := os.Stat(destinationPath); err == nil {
		if err := os.Remove(destinationPath); err != nil {
			return fmt.Errorf("failed to replace existing backup: %w", err)
		}
	}
	if _, err := s.db.Exec("VACUUM INTO ?", destinationPath); err != nil {
		return fmt.Errorf("failed to back up database: %w", err)
	}
	return nil
}

// Restore replaces the database with the file at sourcePath.
func (s *SQLiteIdeaStore) Restore(sourcePath string) error {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read restore source: %w", err)
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database for restore: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write restored database: %w", err)
	}
	return s.Initialize(map[string]string{dataFileKey: s.filePath})
}

// Close releases the database handle.
func (s *SQLiteIdeaStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
