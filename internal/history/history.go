// Package history persists which labels the user picked, so callers can
// float recently and frequently picked items to the earliest (shortest to
// type) rows on later runs.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS picks (
    label        TEXT PRIMARY KEY,
    pick_count   INTEGER NOT NULL DEFAULT 0,
    last_picked  TEXT NOT NULL
);
`

// Store is a sqlite-backed selection history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir history dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Touch records one pick of label.
func (s *Store) Touch(label string) error {
	_, err := s.db.Exec(`
INSERT INTO picks (label, pick_count, last_picked) VALUES (?, 1, ?)
ON CONFLICT(label) DO UPDATE SET
    pick_count = pick_count + 1,
    last_picked = excluded.last_picked`,
		label, now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record pick: %w", err)
	}
	return nil
}

type rank struct {
	count      int
	lastPicked string
}

// Sort orders labels by recency, then pick count, then original position.
// Labels never picked keep their relative input order after all picked
// ones. The input slice is not modified.
func (s *Store) Sort(labels []string) ([]string, error) {
	rows, err := s.db.Query(`SELECT label, pick_count, last_picked FROM picks`)
	if err != nil {
		return nil, fmt.Errorf("load picks: %w", err)
	}
	defer rows.Close()

	ranks := make(map[string]rank)
	for rows.Next() {
		var label string
		var r rank
		if err := rows.Scan(&label, &r.count, &r.lastPicked); err != nil {
			return nil, fmt.Errorf("scan pick: %w", err)
		}
		ranks[label] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate picks: %w", err)
	}

	out := append([]string(nil), labels...)
	position := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, dup := position[label]; !dup {
			position[label] = i
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, iPicked := ranks[out[i]]
		rj, jPicked := ranks[out[j]]
		if iPicked != jPicked {
			return iPicked
		}
		if !iPicked {
			return position[out[i]] < position[out[j]]
		}
		if ri.lastPicked != rj.lastPicked {
			return ri.lastPicked > rj.lastPicked
		}
		if ri.count != rj.count {
			return ri.count > rj.count
		}
		return position[out[i]] < position[out[j]]
	})
	return out, nil
}

// now returns UTC time truncated to seconds (consistent with SQLite default).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
