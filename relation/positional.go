package relation

import "sort"

// extractPositional is the fallback when structural extraction yields
// nothing for a matched pattern: the closest mentioned term before the
// evidence becomes the source, the closest after becomes the target. Emits
// at most one relationship.
func extractPositional(sentence string, kind RelationKind, evidence string, evidStart, evidEnd int, mentions []Mention) []Relationship {
	var before, after []Mention
	for _, m := range mentions {
		switch {
		case m.Offset < evidStart:
			before = append(before, m)
		case m.Offset >= evidEnd:
			after = append(after, m)
		}
	}
	if len(before) == 0 || len(after) == 0 {
		return nil
	}

	// Closest to the evidence first. The sorts are stable so equal
	// distances resolve by registration order, keeping output
	// deterministic.
	sort.SliceStable(before, func(i, j int) bool {
		return evidStart-(before[i].Offset+before[i].Length) < evidStart-(before[j].Offset+before[j].Length)
	})
	sort.SliceStable(after, func(i, j int) bool {
		return after[i].Offset-evidEnd < after[j].Offset-evidEnd
	})

	source := before[0].Term
	target := after[0].Term
	if source == target {
		return nil
	}

	return []Relationship{{
		SourceTerm: source,
		TargetTerm: target,
		Kind:       kind,
		Evidence:   evidence,
		Context:    sentence,
		Method:     MethodPositional,
	}}
}
