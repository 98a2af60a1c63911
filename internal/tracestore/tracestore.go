// Package tracestore archives an event trace and its computed audit
// verdicts into a SQLite file for later querying, supplementing the
// distilled spec's in-memory-only trace with an optional durable sink
// (SPEC_FULL.md's Domain Stack: "SQLite gives that a structured query
// surface"). Nothing in internal/runtime or internal/audit depends on this
// package; it is wired from cmd/justact as an external collaborator.
package tracestore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"justact/internal/audit"
	"justact/internal/trace"
)

// Store archives trace events and audit verdicts into a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite trace database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open trace store: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS events (
	seq INTEGER PRIMARY KEY,
	kind TEXT NOT NULL,
	payload TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS permissions (
	seq INTEGER PRIMARY KEY,
	stated INTEGER NOT NULL,
	based INTEGER NOT NULL,
	valid INTEGER NOT NULL,
	current INTEGER NOT NULL,
	permitted INTEGER NOT NULL,
	syntax_error TEXT
);
`
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("migrate trace store: %w", err)
	}
	return nil
}

// AppendEvent records one trace event at the given sequence number.
func (s *Store) AppendEvent(seq int, event trace.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO events (seq, kind, payload) VALUES (?, ?, ?)`,
		seq, string(event.EventKind()), string(payload),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// AppendPermission records the Result computed for the EnactAction event at
// seq.
func (s *Store) AppendPermission(seq int, result audit.Result) error {
	if result.Err != nil {
		_, err := s.db.Exec(
			`INSERT INTO permissions (seq, stated, based, valid, current, permitted, syntax_error) VALUES (?, 0, 0, 0, 0, 0, ?)`,
			seq, result.Err.Error(),
		)
		return err
	}
	p := result.Permission
	_, err := s.db.Exec(
		`INSERT INTO permissions (seq, stated, based, valid, current, permitted, syntax_error) VALUES (?, ?, ?, ?, ?, ?, NULL)`,
		seq, boolToInt(p.Stated), boolToInt(p.Based), boolToInt(p.Valid), boolToInt(p.Current), boolToInt(result.IsPermitted()),
	)
	return err
}

// PermissionRow is one archived verdict row.
type PermissionRow struct {
	Seq         int
	Stated      bool
	Based       bool
	Valid       bool
	Current     bool
	Permitted   bool
	SyntaxError string
}

// Permissions returns every archived permission verdict, ordered by seq.
func (s *Store) Permissions() ([]PermissionRow, error) {
	rows, err := s.db.Query(`SELECT seq, stated, based, valid, current, permitted, syntax_error FROM permissions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query permissions: %w", err)
	}
	defer rows.Close()

	var out []PermissionRow
	for rows.Next() {
		var r PermissionRow
		var stated, based, valid, current, permitted int
		var syntaxErr sql.NullString
		if err := rows.Scan(&r.Seq, &stated, &based, &valid, &current, &permitted, &syntaxErr); err != nil {
			return nil, fmt.Errorf("scan permission row: %w", err)
		}
		r.Stated, r.Based, r.Valid, r.Current, r.Permitted = stated != 0, based != 0, valid != 0, current != 0, permitted != 0
		r.SyntaxError = syntaxErr.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
