package logger

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Extraction
	FieldTerm         = "term"
	FieldRelationKind = "relation_kind"
	FieldSourceTerm   = "source_term"
	FieldTargetTerm   = "target_term"
	FieldConfidence   = "confidence"
	FieldEvidence     = "evidence"
	FieldMethod       = "extraction_method"

	// Counts and sizes
	FieldCount     = "count"
	FieldSentences = "sentences"
	FieldTermCount = "term_count"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)
