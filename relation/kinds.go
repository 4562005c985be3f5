// Package relation infers directed, typed, confidence-scored semantic
// relationships between known terms mentioned in free text. Extraction is
// pattern-driven: each relation kind owns a set of regular expressions; a
// match triggers dependency-based extraction over the parsed sentence, with
// a proximity fallback when the parse yields nothing usable.
package relation

import "regexp"

// RelationKind is the closed set of semantic link categories. The set is
// fixed at compile time and never extended at runtime.
type RelationKind string

const (
	KindUses      RelationKind = "USES"
	KindMeasures  RelationKind = "MEASURES"
	KindPartOf    RelationKind = "PART_OF"
	KindProduces  RelationKind = "PRODUCES"
	KindAffects   RelationKind = "AFFECTS"
	KindRequires  RelationKind = "REQUIRES"
	KindControls  RelationKind = "CONTROLS"
	KindDefines   RelationKind = "DEFINES"
	KindRelatedTo RelationKind = "RELATED_TO" // generic fallback
)

// Kinds returns all relation kinds in their canonical order. Extraction
// iterates this slice (never a map) so output order is deterministic.
func Kinds() []RelationKind {
	return []RelationKind{
		KindUses,
		KindMeasures,
		KindPartOf,
		KindProduces,
		KindAffects,
		KindRequires,
		KindControls,
		KindDefines,
		KindRelatedTo,
	}
}

// Valid reports whether k is one of the defined kinds.
func (k RelationKind) Valid() bool {
	switch k {
	case KindUses, KindMeasures, KindPartOf, KindProduces, KindAffects,
		KindRequires, KindControls, KindDefines, KindRelatedTo:
		return true
	}
	return false
}

// patternSources maps each kind to its evidence patterns. Patterns are
// case-insensitive with word boundaries around verb forms, and each kind's
// list is ordered: the first match wins for that kind.
var patternSources = map[RelationKind][]string{
	KindUses: {
		`\buses?\b`,
		`\butilizes?\b`,
		`\bemploys?\b`,
		`\bused\s+(?:by|for|in|to)\b`,
	},
	KindMeasures: {
		`\bmeasures?\b`,
		`\bsenses?\b`,
		`\bdetects?\b`,
		`\bmonitors?\b`,
		`\bmeasured\s+(?:by|in|with)\b`,
	},
	KindPartOf: {
		`\bpart\s+of\b`,
		`\bcomponent\s+of\b`,
		`\bconsists?\s+of\b`,
		`\bcomprises?\b`,
		`\bcontains?\b`,
		`\bincludes?\b`,
		`\bbelongs?\s+to\b`,
	},
	KindProduces: {
		`\bproduces?\b`,
		`\bgenerates?\b`,
		`\bcreates?\b`,
		`\boutputs?\b`,
		`\byields?\b`,
	},
	KindAffects: {
		`\baffects?\b`,
		`\binfluences?\b`,
		`\bimpacts?\b`,
		`\bmodifies?\b`,
		`\bchanges?\b`,
	},
	KindRequires: {
		`\brequires?\b`,
		`\bneeds?\b`,
		`\bdepends?\s+(?:on|upon)\b`,
		`\brelies?\s+on\b`,
	},
	KindControls: {
		`\bcontrols?\b`,
		`\bregulates?\b`,
		`\badjusts?\b`,
		`\bmanages?\b`,
		`\boperates?\b`,
	},
	KindDefines: {
		`\bdefines?\b`,
		`\bspecif(?:y|ies)\b`,
		`\bdescribes?\b`,
		`\bcharacterizes?\b`,
	},
	KindRelatedTo: {
		`\brelated\s+to\b`,
		`\bassociated\s+with\b`,
		`\bconnected\s+(?:to|with)\b`,
		`\blinked\s+to\b`,
	},
}

// patternTable holds each extractor's compiled patterns. Built once at
// construction and read-only afterwards; there is no shared global registry.
type patternTable map[RelationKind][]*regexp.Regexp

func compilePatternTable() patternTable {
	table := make(patternTable, len(patternSources))
	for kind, sources := range patternSources {
		compiled := make([]*regexp.Regexp, 0, len(sources))
		for _, src := range sources {
			compiled = append(compiled, regexp.MustCompile(`(?i)`+src))
		}
		table[kind] = compiled
	}
	return table
}
