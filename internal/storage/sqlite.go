// Package storage provides SQLite-based persistence for voyage results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for voyage persistence.
type Store struct {
	db *sql.DB
}

// VoyageEntry represents one completed voyage.
type VoyageEntry struct {
	ID           int64
	SceneID      string
	Distance     int
	DurationSecs int
	ModulesBuilt int
	CreatedAt    time.Time
}

// VoyageStats aggregates a scene's recorded voyages.
type VoyageStats struct {
	Voyages      int
	BestDistance int
	TotalSecs    int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS voyages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			distance INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			modules_built INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_voyages_scene_id ON voyages(scene_id);
		CREATE INDEX IF NOT EXISTS idx_voyages_top ON voyages(scene_id, distance DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveVoyage records a finished voyage.
// Returns the ID of the inserted record.
func (s *Store) SaveVoyage(sceneID string, distance, durationSecs, modulesBuilt int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO voyages (scene_id, distance, duration_secs, modules_built) VALUES (?, ?, ?, ?)",
		sceneID, distance, durationSecs, modulesBuilt,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save voyage: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopVoyages retrieves the top N voyages for a scene by distance.
func (s *Store) TopVoyages(sceneID string, limit int) ([]VoyageEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, distance, duration_secs, modules_built, created_at
		 FROM voyages
		 WHERE scene_id = ?
		 ORDER BY distance DESC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query voyages: %w", err)
	}
	defer rows.Close()

	var entries []VoyageEntry
	for rows.Next() {
		e, err := scanVoyage(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats aggregates all recorded voyages for a scene.
func (s *Store) Stats(sceneID string) (VoyageStats, error) {
	var st VoyageStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(distance), 0), COALESCE(SUM(duration_secs), 0)
		 FROM voyages WHERE scene_id = ?`,
		sceneID,
	).Scan(&st.Voyages, &st.BestDistance, &st.TotalSecs)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

func scanVoyage(rows *sql.Rows) (VoyageEntry, error) {
	var e VoyageEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.SceneID, &e.Distance, &e.DurationSecs, &e.ModulesBuilt, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// SQLite hands back either time.Time or a string depending on how
	// the value was written.
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
