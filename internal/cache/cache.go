package cache

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache is a sqlite-backed prediction store.
type Cache struct {
	db *sql.DB
}

// Key identifies one cached prediction. Predictions are keyed on the
// full generation context: a different model or language pair never
// reuses a stored prediction.
type Key struct {
	Provider   string
	Model      string
	SourceCode string
	TargetCode string
	SourceText string
}

// Open opens the cache database at path, creating the schema if needed.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS predictions (
			provider    TEXT NOT NULL,
			model       TEXT NOT NULL,
			source_code TEXT NOT NULL,
			target_code TEXT NOT NULL,
			source_text TEXT NOT NULL,
			prediction  TEXT NOT NULL,
			created_at  INTEGER NOT NULL,
			PRIMARY KEY (provider, model, source_code, target_code, source_text)
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Get returns the cached prediction for key, if present.
func (c *Cache) Get(key Key) (string, bool, error) {
	var prediction string
	err := c.db.QueryRow(
		`SELECT prediction FROM predictions
		 WHERE provider = ? AND model = ? AND source_code = ? AND target_code = ? AND source_text = ?`,
		key.Provider, key.Model, key.SourceCode, key.TargetCode, key.SourceText,
	).Scan(&prediction)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query cache: %w", err)
	}
	return prediction, true, nil
}

// Put stores a prediction for key, replacing any previous value.
func (c *Cache) Put(key Key, prediction string) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO predictions
		 (provider, model, source_code, target_code, source_text, prediction, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		key.Provider, key.Model, key.SourceCode, key.TargetCode, key.SourceText,
		prediction, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store prediction: %w", err)
	}
	return nil
}

// Size returns the number of cached predictions.
func (c *Cache) Size() (int, error) {
	var n int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM predictions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
