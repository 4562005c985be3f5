package relation

// Method tags how a relationship was derived.
type Method string

const (
	// MethodStructural marks relationships derived from the sentence's
	// syntactic dependency structure.
	MethodStructural Method = "structural"
	// MethodPositional marks relationships derived from term proximity
	// around the matched evidence phrase.
	MethodPositional Method = "positional"
)

// Relationship is the core output value: a directed, typed, scored link
// between two known terms.
//
// Invariants: SourceTerm != TargetTerm, 0.0 <= Confidence <= 1.0, and Kind
// is one of the defined relation kinds. Instances are never mutated after
// creation; deduplication replaces whole values.
type Relationship struct {
	SourceTerm string       `json:"source_term"`
	TargetTerm string       `json:"target_term"`
	Kind       RelationKind `json:"relation_kind"`
	Confidence float64      `json:"confidence"`
	Evidence   string       `json:"evidence"` // exact matched phrase that proposed the kind
	Context    string       `json:"context"`  // full sentence the relationship was derived from
	Method     Method       `json:"extraction_method"`
}
