package relation

import (
	"strings"

	"go.uber.org/zap"

	"github.com/developer-hhiotsystems/terminology-extraction/errors"
	"github.com/developer-hhiotsystems/terminology-extraction/nlp"
)

// DefaultMinConfidence is the threshold applied when the caller passes a
// negative value to Extract.
const DefaultMinConfidence = 0.5

// Extractor drives relation extraction: pattern matching per sentence,
// structural extraction with positional fallback, confidence scoring,
// deduplication, and the final confidence filter.
//
// An Extractor holds no mutable state across calls — the compiled pattern
// table and the injected analyzer are read-only — so a single instance is
// safe for concurrent use.
type Extractor struct {
	analyzer nlp.Analyzer
	patterns patternTable
	logger   *zap.SugaredLogger
}

// NewExtractor constructs an extractor around the given parsing engine.
// Pass nlp.NewNullAnalyzer() for degraded mode: every extraction call then
// returns an empty result, matching the behavior when no engine can be
// loaded (sentence segmentation and dependency parsing come from the same
// collaborator).
func NewExtractor(analyzer nlp.Analyzer, logger *zap.SugaredLogger) (*Extractor, error) {
	if analyzer == nil {
		return nil, errors.New("nil analyzer")
	}
	if logger == nil {
		return nil, errors.New("nil logger")
	}
	return &Extractor{
		analyzer: analyzer,
		patterns: compilePatternTable(),
		logger:   logger.Named("relation.extractor"),
	}, nil
}

// Extract infers relationships between the known terms mentioned in text.
// minConfidence must be within [0, 1]; pass a negative value for the
// default. The result is deduplicated and filtered; identical inputs yield
// identical outputs.
func (e *Extractor) Extract(text string, knownTerms []string, minConfidence float64) ([]Relationship, error) {
	if minConfidence < 0 {
		minConfidence = DefaultMinConfidence
	}
	if minConfidence > 1 {
		return nil, errors.Newf("min confidence %v out of range [0, 1]", minConfidence)
	}
	if len(knownTerms) == 0 || strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := e.analyzer.Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse text")
	}

	index := NewMentionIndex(knownTerms)

	var all []Relationship
	for i := range doc.Sentences {
		all = append(all, e.extractSentence(&doc.Sentences[i], index)...)
	}

	all = Deduplicate(all)

	filtered := all[:0]
	for _, r := range all {
		if r.Confidence >= minConfidence {
			filtered = append(filtered, r)
		}
	}

	e.logger.Debugw("Extraction complete",
		"sentences", len(doc.Sentences),
		"term_count", len(knownTerms),
		"count", len(filtered),
	)
	return filtered, nil
}

// extractSentence runs pattern matching and extraction for one sentence.
// A sentence may yield relationships for several kinds; within a kind the
// first matching pattern wins.
func (e *Extractor) extractSentence(sent *nlp.Sentence, index *MentionIndex) []Relationship {
	mentions := index.Mentions(sent.Text)
	if len(mentions) < 2 {
		// Not an error: the sentence simply contributes nothing.
		return nil
	}

	sentenceTokens := len(strings.Fields(sent.Text))

	var out []Relationship
	for _, kind := range Kinds() {
		for _, re := range e.patterns[kind] {
			loc := re.FindStringIndex(sent.Text)
			if loc == nil {
				continue
			}
			evidence := sent.Text[loc[0]:loc[1]]

			rels := extractStructural(sent, kind, evidence, mentions)
			if len(rels) == 0 {
				rels = extractPositional(sent.Text, kind, evidence, loc[0], loc[1], mentions)
			}

			for _, r := range rels {
				r.Confidence = Score(r.Method, termDistance(mentions, r), sentenceTokens)
				out = append(out, r)
			}

			e.logger.Debugw("Pattern matched",
				"relation_kind", string(kind),
				"evidence", evidence,
				"count", len(rels),
			)
			break
		}
	}
	return out
}

// termDistance returns the character distance between the source and target
// mentions, or -1 when either is unknown.
func termDistance(mentions []Mention, r Relationship) int {
	src := mentionOffset(mentions, r.SourceTerm)
	dst := mentionOffset(mentions, r.TargetTerm)
	if src < 0 || dst < 0 {
		return -1
	}
	if src > dst {
		return src - dst
	}
	return dst - src
}
