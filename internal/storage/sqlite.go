// Package storage provides the SQLite store for flattened clauses and
// conversation history. Clauses are mirrored here from the flattener so the
// corpus can be inspected and rebuilt without re-reading the law JSON files.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lawkit/fatiao/internal/models"
)

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates a SQLite database at dbPath and initializes the
// schema. Parent directories are created if they do not exist.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS clauses (
		vector_idx INTEGER PRIMARY KEY,
		law_title TEXT NOT NULL,
		part_title TEXT NOT NULL,
		subpart_title TEXT,
		chapter_title TEXT NOT NULL,
		article_no TEXT NOT NULL,
		content TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_clauses_law_title ON clauses(law_title);
	CREATE INDEX IF NOT EXISTS idx_clauses_article_no ON clauses(article_no);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		strategy TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_history_session_id ON history(session_id, id);
	`
	_, err := db.Exec(schema)
	return err
}

// ReplaceClauses replaces the whole clause table with the given corpus in one
// transaction. Rebuilds call this after the index swap, so the table always
// mirrors the published snapshot.
func (s *Store) ReplaceClauses(ctx context.Context, clauses []*models.Clause) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM clauses`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO clauses (vector_idx, law_title, part_title, subpart_title, chapter_title, article_no, content)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range clauses {
		if _, err := stmt.ExecContext(ctx,
			c.VectorIndex, c.LawTitle, c.PartTitle, c.SubpartTitle, c.ChapterTitle, c.ArticleNo, c.ArticleContent,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetClause returns the clause at a vector index position.
func (s *Store) GetClause(ctx context.Context, vectorIndex int) (*models.Clause, error) {
	var c models.Clause
	err := s.db.QueryRowContext(ctx,
		`SELECT vector_idx, law_title, part_title, subpart_title, chapter_title, article_no, content
		 FROM clauses WHERE vector_idx = ?`, vectorIndex,
	).Scan(&c.VectorIndex, &c.LawTitle, &c.PartTitle, &c.SubpartTitle, &c.ChapterTitle, &c.ArticleNo, &c.ArticleContent)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("clause not found: %d", vectorIndex)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListClauses returns clauses ordered by vector index with offset and limit.
func (s *Store) ListClauses(ctx context.Context, offset, limit int) ([]*models.Clause, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT vector_idx, law_title, part_title, subpart_title, chapter_title, article_no, content
		 FROM clauses ORDER BY vector_idx LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clauses []*models.Clause
	for rows.Next() {
		var c models.Clause
		if err := rows.Scan(&c.VectorIndex, &c.LawTitle, &c.PartTitle, &c.SubpartTitle, &c.ChapterTitle, &c.ArticleNo, &c.ArticleContent); err != nil {
			return nil, err
		}
		clauses = append(clauses, &c)
	}
	return clauses, rows.Err()
}

// CountClauses returns the number of stored clauses.
func (s *Store) CountClauses(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clauses`).Scan(&count)
	return count, err
}

// CreateSession creates a new conversation session and returns its id.
func (s *Store) CreateSession(ctx context.Context) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at) VALUES (?, ?)`, id, time.Now(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// SessionExists reports whether a session id is known.
func (s *Store) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM sessions WHERE id = ?`, sessionID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// AppendHistory records one question/answer exchange for a session.
func (s *Store) AppendHistory(ctx context.Context, entry *models.HistoryEntry) error {
	entry.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (session_id, question, answer, strategy, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.SessionID, entry.Question, entry.Answer, string(entry.Strategy), entry.CreatedAt,
	)
	return err
}

// RecentHistory returns the most recent limit exchanges for a session in
// chronological order. The bound keeps prompt context from growing without
// limit on long conversations.
func (s *Store) RecentHistory(ctx context.Context, sessionID string, limit int) ([]*models.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, question, answer, strategy, created_at FROM (
			SELECT id, session_id, question, answer, strategy, created_at
			FROM history WHERE session_id = ? ORDER BY id DESC LIMIT ?
		 ) ORDER BY id`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		var strategy string
		if err := rows.Scan(&e.SessionID, &e.Question, &e.Answer, &strategy, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Strategy = models.Strategy(strategy)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// DeleteSession removes a session and its history.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM history WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
