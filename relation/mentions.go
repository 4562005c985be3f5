package relation

import "strings"

// Mention records where a known term occurs in a sentence.
type Mention struct {
	Term   string // term as supplied by the caller (original casing)
	Offset int    // byte offset of the matched variant in the lowercased sentence
	Length int    // length of the matched variant
}

// MentionIndex locates known-term occurrences inside sentences. Each term is
// registered under its lowercase form plus a naive plural/singular variant
// (trailing "s" appended or stripped).
//
// Matching is raw substring containment, not word-boundary matching: a short
// term can be found inside a longer word ("art" inside "smart"). That risk
// is accepted; see TestMentionsSubstringFalsePositive.
type MentionIndex struct {
	terms    []string            // registration order, original casing
	variants map[string][]string // term -> lowercase variants
}

// NewMentionIndex builds an index over the candidate terms. Duplicate terms
// are registered once; registration order is preserved.
func NewMentionIndex(terms []string) *MentionIndex {
	ix := &MentionIndex{
		variants: make(map[string][]string, len(terms)),
	}
	for _, term := range terms {
		if _, dup := ix.variants[term]; dup {
			continue
		}
		ix.terms = append(ix.terms, term)
		ix.variants[term] = expandVariants(term)
	}
	return ix
}

// expandVariants returns the lowercase form plus the s-plural or s-stripped
// singular of a term.
func expandVariants(term string) []string {
	lower := strings.ToLower(strings.TrimSpace(term))
	variants := []string{lower}
	if strings.HasSuffix(lower, "s") {
		variants = append(variants, strings.TrimSuffix(lower, "s"))
	} else {
		variants = append(variants, lower+"s")
	}
	return variants
}

// Mentions returns one Mention per term found in the sentence, in term
// registration order. When several variants of a term occur, the earliest
// offset wins; on equal offsets the longer variant wins.
func (ix *MentionIndex) Mentions(sentence string) []Mention {
	lower := strings.ToLower(sentence)

	var out []Mention
	for _, term := range ix.terms {
		best := Mention{Term: term, Offset: -1}
		for _, variant := range ix.variants[term] {
			idx := strings.Index(lower, variant)
			if idx < 0 {
				continue
			}
			if best.Offset < 0 || idx < best.Offset ||
				(idx == best.Offset && len(variant) > best.Length) {
				best.Offset = idx
				best.Length = len(variant)
			}
		}
		if best.Offset >= 0 {
			out = append(out, best)
		}
	}
	return out
}

// mentionOffset returns the recorded offset for a term, or -1.
func mentionOffset(mentions []Mention, term string) int {
	for _, m := range mentions {
		if m.Term == term {
			return m.Offset
		}
	}
	return -1
}
