package store

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/developer-hhiotsystems/terminology-extraction/errors"
	"github.com/developer-hhiotsystems/terminology-extraction/relation"
)

// Validation status values for persisted relationships. New rows default to
// pending; downstream validation moves them to approved or rejected.
const (
	ValidationPending  = "pending"
	ValidationApproved = "approved"
	ValidationRejected = "rejected"
)

// RelationshipRecord is a relationship as persisted, keyed by term ids.
type RelationshipRecord struct {
	ID               int64                 `json:"id"`
	SourceTermID     int64                 `json:"source_term_id"`
	TargetTermID     int64                 `json:"target_term_id"`
	Kind             relation.RelationKind `json:"relation_kind"`
	Confidence       float64               `json:"confidence"`
	Evidence         string                `json:"evidence"`
	Context          string                `json:"context"`
	ExtractionMethod string                `json:"extraction_method"`
	ValidationStatus string                `json:"validation_status"`
}

// RelationshipStore persists extracted relationships.
type RelationshipStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewRelationshipStore creates a relationship store over an open database.
func NewRelationshipStore(db *sql.DB, logger *zap.SugaredLogger) *RelationshipStore {
	return &RelationshipStore{db: db, logger: logger}
}

// Create inserts a relationship. Inserts are idempotent on the composite
// (source_term_id, target_term_id, relation_kind) key: a duplicate is
// skipped and reported via created=false, never as an error.
func (s *RelationshipStore) Create(rec RelationshipRecord) (created bool, err error) {
	if !rec.Kind.Valid() {
		return false, errors.Newf("invalid relation kind %q", rec.Kind)
	}
	if rec.SourceTermID == rec.TargetTermID {
		return false, errors.New("relationship source and target are the same term")
	}
	if rec.Confidence < 0 || rec.Confidence > 1 {
		return false, errors.Newf("confidence %v outside [0, 1]", rec.Confidence)
	}
	if rec.ValidationStatus == "" {
		rec.ValidationStatus = ValidationPending
	}

	res, err := s.db.Exec(`
		INSERT OR IGNORE INTO term_relationships
			(source_term_id, target_term_id, relation_kind, confidence,
			 evidence, context, extraction_method, validation_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SourceTermID, rec.TargetTermID, string(rec.Kind), rec.Confidence,
		rec.Evidence, rec.Context, rec.ExtractionMethod, rec.ValidationStatus,
	)
	if err != nil {
		return false, errors.Wrap(err, "insert relationship")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		s.logger.Debugw("Skipping duplicate relationship",
			"source_term", rec.SourceTermID,
			"target_term", rec.TargetTermID,
			"relation_kind", string(rec.Kind),
		)
		return false, nil
	}
	return true, nil
}

// List returns all relationships ordered by id.
func (s *RelationshipStore) List() ([]RelationshipRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, source_term_id, target_term_id, relation_kind, confidence,
		       evidence, context, extraction_method, validation_status
		FROM term_relationships ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list relationships")
	}
	defer rows.Close()

	var recs []RelationshipRecord
	for rows.Next() {
		var rec RelationshipRecord
		var kind string
		if err := rows.Scan(&rec.ID, &rec.SourceTermID, &rec.TargetTermID, &kind,
			&rec.Confidence, &rec.Evidence, &rec.Context,
			&rec.ExtractionMethod, &rec.ValidationStatus); err != nil {
			return nil, errors.Wrap(err, "scan relationship")
		}
		rec.Kind = relation.RelationKind(kind)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// ListResolved returns all relationships with term ids resolved back to
// names, in the core's value shape. Used by graph export.
func (s *RelationshipStore) ListResolved() ([]relation.Relationship, error) {
	rows, err := s.db.Query(`
		SELECT src.name, dst.name, r.relation_kind, r.confidence,
		       r.evidence, r.context, r.extraction_method
		FROM term_relationships r
		JOIN terms src ON src.id = r.source_term_id
		JOIN terms dst ON dst.id = r.target_term_id
		ORDER BY r.id`)
	if err != nil {
		return nil, errors.Wrap(err, "list resolved relationships")
	}
	defer rows.Close()

	var rels []relation.Relationship
	for rows.Next() {
		var r relation.Relationship
		var kind, method string
		if err := rows.Scan(&r.SourceTerm, &r.TargetTerm, &kind,
			&r.Confidence, &r.Evidence, &r.Context, &method); err != nil {
			return nil, errors.Wrap(err, "scan resolved relationship")
		}
		r.Kind = relation.RelationKind(kind)
		r.Method = relation.Method(method)
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

// CountByKind returns relationship counts grouped by relation kind.
func (s *RelationshipStore) CountByKind() (map[relation.RelationKind]int, error) {
	rows, err := s.db.Query(
		"SELECT relation_kind, COUNT(*) FROM term_relationships GROUP BY relation_kind")
	if err != nil {
		return nil, errors.Wrap(err, "count relationships")
	}
	defer rows.Close()

	counts := make(map[relation.RelationKind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, errors.Wrap(err, "scan count")
		}
		counts[relation.RelationKind(kind)] = n
	}
	return counts, rows.Err()
}
