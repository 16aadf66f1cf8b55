package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	format     TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

// SQLite stores documents in a single table.
type SQLite struct {
	db *sql.DB
}

var _ ports.DocumentStore = (*SQLite)(nil)

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLite) Save(ctx context.Context, doc model.Document) error {
	const query = `INSERT INTO documents (id, format, content, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET format = excluded.format, content = excluded.content, created_at = excluded.created_at`
	if _, err := s.db.ExecContext(ctx, query, doc.ID, doc.Format, doc.Content, formatTime(doc.CreatedAt)); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (model.Document, error) {
	const query = `SELECT id, format, content, created_at FROM documents WHERE id = ?`

	var (
		doc     model.Document
		created string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&doc.ID, &doc.Format, &doc.Content, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Document{}, ports.ErrDocumentNotFound
	}
	if err != nil {
		return model.Document{}, fmt.Errorf("select document: %w", err)
	}

	doc.CreatedAt, err = parseTime(created)
	if err != nil {
		return model.Document{}, fmt.Errorf("decode document %s: %w", id, err)
	}
	return doc, nil
}

// Count returns the number of stored documents.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
