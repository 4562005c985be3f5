package relation

// dedupeKey is the identity of a relationship for deduplication.
type dedupeKey struct {
	source string
	target string
	kind   RelationKind
}

// Deduplicate collapses relationships sharing (source, target, kind) to the
// single highest-confidence instance. Ties keep the first encountered, and
// first-encounter order is preserved in the output, so results are stable
// within a run.
func Deduplicate(rels []Relationship) []Relationship {
	if len(rels) <= 1 {
		return rels
	}

	index := make(map[dedupeKey]int, len(rels))
	out := make([]Relationship, 0, len(rels))
	for _, r := range rels {
		key := dedupeKey{source: r.SourceTerm, target: r.TargetTerm, kind: r.Kind}
		if i, ok := index[key]; ok {
			if r.Confidence > out[i].Confidence {
				out[i] = r
			}
			continue
		}
		index[key] = len(out)
		out = append(out, r)
	}
	return out
}
