package store

import (
	"database/sql"
	"strings"

	"go.uber.org/zap"

	"github.com/developer-hhiotsystems/terminology-extraction/errors"
)

// Term is a vocabulary entry as persisted.
type Term struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalized_name"`
}

// TermStore provides access to the term vocabulary.
type TermStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewTermStore creates a term store over an open database.
func NewTermStore(db *sql.DB, logger *zap.SugaredLogger) *TermStore {
	return &TermStore{db: db, logger: logger}
}

// NormalizeTermName lowercases and trims a term for case-insensitive lookup.
func NormalizeTermName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Create inserts a term and returns its id. Creating an already-known term
// returns the existing id.
func (s *TermStore) Create(name string) (int64, error) {
	normalized := NormalizeTermName(name)
	if normalized == "" {
		return 0, errors.New("empty term name")
	}

	res, err := s.db.Exec(
		"INSERT OR IGNORE INTO terms (name, normalized_name) VALUES (?, ?)",
		name, normalized,
	)
	if err != nil {
		return 0, errors.Wrapf(err, "insert term %q", name)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, errors.Wrap(err, "last insert id")
		}
		return id, nil
	}

	id, ok, err := s.LookupByName(name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.Newf("term %q neither inserted nor found", name)
	}
	return id, nil
}

// LookupByName resolves a term name to its persisted id, case-insensitively.
// A missing term is not an error: ok is false.
func (s *TermStore) LookupByName(name string) (id int64, ok bool, err error) {
	err = s.db.QueryRow(
		"SELECT id FROM terms WHERE normalized_name = ?",
		NormalizeTermName(name),
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrapf(err, "lookup term %q", name)
	}
	return id, true, nil
}

// List returns all terms ordered by name.
func (s *TermStore) List() ([]Term, error) {
	rows, err := s.db.Query("SELECT id, name, normalized_name FROM terms ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "list terms")
	}
	defer rows.Close()

	var terms []Term
	for rows.Next() {
		var t Term
		if err := rows.Scan(&t.ID, &t.Name, &t.NormalizedName); err != nil {
			return nil, errors.Wrap(err, "scan term")
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// Count returns the number of persisted terms.
func (s *TermStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM terms").Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count terms")
	}
	return n, nil
}
