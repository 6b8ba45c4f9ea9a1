package internal

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const recordsSchema = `
CREATE TABLE IF NOT EXISTS records (
	position  INTEGER PRIMARY KEY,
	dedup_key TEXT NOT NULL,
	kind      TEXT NOT NULL,
	title     TEXT,
	payload   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS records_dedup_key ON records (dedup_key);`

// DatasetStore is a queryable SQLite snapshot of a merged dataset
type DatasetStore struct {
	db *sql.DB
}

// OpenDatasetStore opens or creates a snapshot database at path
func OpenDatasetStore(path string) (*DatasetStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(recordsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DatasetStore{db: db}, nil
}

// Close closes the underlying database
func (s *DatasetStore) Close() error {
	return s.db.Close()
}

// ReplaceAll replaces the stored snapshot with records, in order
func (s *DatasetStore) ReplaceAll(ctx context.Context, records []Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin failed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO records (position, dedup_key, kind, title, payload) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare failed: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		payload, err := marshalUnescaped(r)
		if err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
		var title sql.NullString
		if content, ok := r.AssistantContent(); ok {
			if plan, err := DecodePlanResponse(content); err == nil {
				title = sql.NullString{String: plan.ResearchPlan.Title, Valid: true}
			}
		}
		if _, err := stmt.ExecContext(ctx, i, DedupKey(r), string(r.Kind()), title, string(payload)); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored records
func (s *DatasetStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("query failed: %w", err)
	}
	return n, nil
}

// CountByKind returns stored record counts grouped by kind
func (s *DatasetStore) CountByKind(ctx context.Context) (map[Kind]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT kind, COUNT(*) FROM records GROUP BY kind")
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	counts := make(map[Kind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		counts[Kind(kind)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}

// LoadAll returns stored records ordered by position
func (s *DatasetStore) LoadAll(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT payload FROM records ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		var r Record
		if err := r.UnmarshalJSON([]byte(payload)); err != nil {
			return nil, &ParseError{Source: "sqlite", Key: "records", Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}
