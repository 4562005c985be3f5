package glossary

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/developer-hhiotsystems/terminology-extraction/errors"
	"github.com/developer-hhiotsystems/terminology-extraction/relation"
	"github.com/developer-hhiotsystems/terminology-extraction/store"
)

// Options configures a batch Processor.
type Options struct {
	// MinConfidence is the extraction threshold; a negative value selects
	// the core's default.
	MinConfidence float64

	// MaxDefinitions caps how many definitions a single run processes
	// across all entries. Zero means no cap.
	MaxDefinitions int
}

// Processor runs relation extraction over glossary entries and persists
// the results. Each entry's definitions are extracted against the full
// vocabulary minus the entry's own term. Entry terms are created in the
// term store up front, so every relationship between entry terms resolves;
// relationships involving auxiliary vocabulary that is not stored are
// counted as skips.
type Processor struct {
	extractor      *relation.Extractor
	terms          *store.TermStore
	rels           *store.RelationshipStore
	minConfidence  float64
	maxDefinitions int
	logger         *zap.SugaredLogger
}

// NewProcessor creates a batch processor.
func NewProcessor(extractor *relation.Extractor, terms *store.TermStore, rels *store.RelationshipStore, opts Options, logger *zap.SugaredLogger) (*Processor, error) {
	if extractor == nil {
		return nil, errors.New("nil extractor")
	}
	if terms == nil || rels == nil {
		return nil, errors.New("nil store")
	}
	if logger == nil {
		return nil, errors.New("nil logger")
	}
	return &Processor{
		extractor:      extractor,
		terms:          terms,
		rels:           rels,
		minConfidence:  opts.MinConfidence,
		maxDefinitions: opts.MaxDefinitions,
		logger:         logger.Named("glossary.processor"),
	}, nil
}

// Run processes all entries and returns batch statistics. auxTerms extends
// the extraction vocabulary beyond the entry terms (for example a terms
// file supplied on the command line); auxiliary terms are matched during
// extraction but not created in the store, so relationships that land on
// one are counted under skipped_unknown_target.
//
// Extraction and persistence failures for individual definitions or
// relationships are logged and counted; they never abort the run.
func (p *Processor) Run(entries []Entry, auxTerms []string) (*BatchResult, error) {
	result := &BatchResult{StartTime: time.Now()}

	vocabulary := buildVocabulary(entries, auxTerms)

	for _, entry := range entries {
		if _, err := p.terms.Create(entry.Term); err != nil {
			return nil, errors.Wrapf(err, "create term %q", entry.Term)
		}
	}

	for _, entry := range entries {
		if p.capReached(result) {
			break
		}
		result.Entries++
		p.processEntry(entry, vocabulary, result)
	}

	result.EndTime = time.Now()
	p.logger.Infow("Batch complete",
		"entries", result.Entries,
		"definitions", result.Definitions,
		"extracted", result.Extracted,
		"created", result.Created,
		"skipped_unknown_target", result.SkippedUnknownTarget,
		"skipped_duplicate", result.SkippedDuplicate,
		"failures", result.Failures,
		"elapsed", result.Elapsed(),
	)
	return result, nil
}

func (p *Processor) capReached(result *BatchResult) bool {
	return p.maxDefinitions > 0 && result.Definitions >= p.maxDefinitions
}

func (p *Processor) processEntry(entry Entry, vocabulary []string, result *BatchResult) {
	vocab := entryVocabulary(vocabulary, entry.Term)

	for _, def := range entry.Definitions {
		if p.capReached(result) {
			return
		}
		result.Definitions++

		blob := strings.TrimSpace(def.Text + " " + def.Context)
		rels, err := p.extractor.Extract(blob, vocab, p.minConfidence)
		if err != nil {
			result.Failures++
			p.logger.Warnw("Extraction failed",
				"term", entry.Term,
				"error", err,
			)
			continue
		}
		result.Extracted += len(rels)

		for _, r := range rels {
			p.persist(r, result)
		}
	}
}

// persist resolves both endpoints and writes one relationship, updating
// the batch counters.
func (p *Processor) persist(r relation.Relationship, result *BatchResult) {
	sourceID, ok, err := p.terms.LookupByName(r.SourceTerm)
	if err != nil {
		result.Failures++
		p.logger.Warnw("Term lookup failed", "term", r.SourceTerm, "error", err)
		return
	}
	if !ok {
		result.SkippedUnknownTarget++
		p.logger.Debugw("Skipping relationship with unstored term",
			"term", r.SourceTerm,
			"relation_kind", string(r.Kind),
		)
		return
	}

	targetID, ok, err := p.terms.LookupByName(r.TargetTerm)
	if err != nil {
		result.Failures++
		p.logger.Warnw("Term lookup failed", "term", r.TargetTerm, "error", err)
		return
	}
	if !ok {
		result.SkippedUnknownTarget++
		p.logger.Debugw("Skipping relationship with unstored term",
			"term", r.TargetTerm,
			"relation_kind", string(r.Kind),
		)
		return
	}

	created, err := p.rels.Create(store.RelationshipRecord{
		SourceTermID:     sourceID,
		TargetTermID:     targetID,
		Kind:             r.Kind,
		Confidence:       r.Confidence,
		Evidence:         r.Evidence,
		Context:          r.Context,
		ExtractionMethod: string(r.Method),
	})
	if err != nil {
		result.Failures++
		p.logger.Warnw("Relationship create failed",
			"source_term", r.SourceTerm,
			"target_term", r.TargetTerm,
			"error", err,
		)
		return
	}
	if created {
		result.Created++
	} else {
		result.SkippedDuplicate++
	}
}

// entryVocabulary returns the vocabulary with the entry's own term removed:
// an entry's definitions propose relationships between the other terms they
// mention, never involving the term being defined.
func entryVocabulary(vocabulary []string, term string) []string {
	key := store.NormalizeTermName(term)
	out := make([]string, 0, len(vocabulary))
	for _, t := range vocabulary {
		if store.NormalizeTermName(t) == key {
			continue
		}
		out = append(out, t)
	}
	return out
}

// buildVocabulary merges entry terms and auxiliary terms, dropping
// case-insensitive duplicates while preserving first-seen order.
func buildVocabulary(entries []Entry, auxTerms []string) []string {
	seen := make(map[string]bool)
	var vocabulary []string

	add := func(term string) {
		key := store.NormalizeTermName(term)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		vocabulary = append(vocabulary, term)
	}

	for _, e := range entries {
		add(e.Term)
	}
	for _, t := range auxTerms {
		add(t)
	}
	return vocabulary
}
