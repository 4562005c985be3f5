package relation

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/developer-hhiotsystems/terminology-extraction/nlp"
)

// fakeAnalyzer serves pre-built parse trees, letting tests pin down exact
// dependency structures independently of the real parsing engine.
type fakeAnalyzer struct {
	docs map[string]*nlp.Doc
}

func (f *fakeAnalyzer) Parse(text string) (*nlp.Doc, error) {
	if doc, ok := f.docs[text]; ok {
		return doc, nil
	}
	return &nlp.Doc{Text: text}, nil
}

// splitterAnalyzer segments sentences but produces no tokens: the
// configuration where sentence splitting works without dependency parsing,
// leaving only pattern matching plus positional fallback.
type splitterAnalyzer struct{}

func (s *splitterAnalyzer) Parse(text string) (*nlp.Doc, error) {
	doc := &nlp.Doc{Text: text}
	start := 0
	for _, part := range strings.SplitAfter(text, ". ") {
		if strings.TrimSpace(part) != "" {
			doc.Sentences = append(doc.Sentences, nlp.Sentence{
				Text:  strings.TrimRight(part, " "),
				Start: start,
			})
		}
		start += len(part)
	}
	return doc, nil
}

type dep struct {
	label string
	head  int
}

// tokens builds a token slice from "word/TAG" fields with explicit
// dependency attachments.
func tokens(t *testing.T, spec string, deps map[int]dep) []nlp.Token {
	t.Helper()
	var out []nlp.Token
	for i, field := range strings.Fields(spec) {
		parts := strings.SplitN(field, "/", 2)
		if len(parts) != 2 {
			t.Fatalf("bad token spec %q", field)
		}
		pos := nlp.POSOther
		switch parts[1][0] {
		case 'V':
			pos = nlp.POSVerb
		case 'N':
			pos = nlp.POSNoun
		case 'D':
			pos = nlp.POSDeterminer
		case 'C':
			pos = nlp.POSConjunction
		case 'T', 'I':
			pos = nlp.POSAdposition
		}
		tok := nlp.Token{
			Text:  parts[0],
			Lemma: nlp.Lemmatize(parts[0], pos),
			Tag:   parts[1],
			POS:   pos,
			Head:  -1,
		}
		if d, ok := deps[i]; ok {
			tok.Dep = d.label
			tok.Head = d.head
		}
		out = append(out, tok)
	}
	return out
}

func newTestExtractor(t *testing.T, analyzer nlp.Analyzer) *Extractor {
	t.Helper()
	e, err := NewExtractor(analyzer, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return e
}

// scenarioADoc builds the parse tree for
// "A temperature sensor measures temperature and sends data to the control system."
func scenarioADoc(t *testing.T, text string) *nlp.Doc {
	t.Helper()
	toks := tokens(t,
		"A/DT temperature/NN sensor/NN measures/VBZ temperature/NN and/CC sends/VBZ data/NNS to/TO the/DT control/NN system/NN ./.",
		map[int]dep{
			1:  {nlp.DepCompound, 2},
			2:  {nlp.DepSubject, 3},
			4:  {nlp.DepObject, 3},
			7:  {nlp.DepObject, 6},
			10: {nlp.DepCompound, 11},
			11: {nlp.DepPrepObject, 6},
		})
	return &nlp.Doc{Text: text, Sentences: []nlp.Sentence{{Text: text, Tokens: toks}}}
}

func TestExtractEmptyVocabulary(t *testing.T) {
	text := "A temperature sensor measures temperature."
	e := newTestExtractor(t, &fakeAnalyzer{docs: map[string]*nlp.Doc{text: scenarioADoc(t, text)}})

	out, err := e.Extract(text, nil, 0.5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("empty vocabulary produced %d relationships, want 0", len(out))
	}
}

func TestExtractDegradedMode(t *testing.T) {
	e := newTestExtractor(t, nlp.NewNullAnalyzer())

	out, err := e.Extract(
		"A temperature sensor measures temperature.",
		[]string{"temperature sensor", "temperature"},
		0.5,
	)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("degraded mode produced %d relationships, want 0", len(out))
	}
}

func TestExtractScenarioAStructural(t *testing.T) {
	text := "A temperature sensor measures temperature and sends data to the control system."
	e := newTestExtractor(t, &fakeAnalyzer{docs: map[string]*nlp.Doc{text: scenarioADoc(t, text)}})
	terms := []string{"temperature sensor", "temperature", "control system"}

	out, err := e.Extract(text, terms, 0.5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("no relationships extracted")
	}

	found := false
	for _, r := range out {
		if r.Kind == KindMeasures && r.SourceTerm == "temperature sensor" && r.TargetTerm == "temperature" {
			found = true
			if r.Confidence < 0.5 {
				t.Errorf("confidence = %v, want >= 0.5", r.Confidence)
			}
			if r.Method != MethodStructural {
				t.Errorf("method = %v, want structural", r.Method)
			}
			if r.Context != text {
				t.Errorf("context = %q, want the full sentence", r.Context)
			}
		}
	}
	if !found {
		t.Errorf("missing MEASURES(temperature sensor -> temperature); got %+v", out)
	}
}

func TestExtractScenarioBCaseInsensitive(t *testing.T) {
	text := "A bioreactor uses a reactor vessel."
	doc := &nlp.Doc{Text: text, Sentences: []nlp.Sentence{{
		Text: text,
		Tokens: tokens(t, "A/DT bioreactor/NN uses/VBZ a/DT reactor/NN vessel/NN ./.",
			map[int]dep{
				1: {nlp.DepSubject, 2},
				4: {nlp.DepCompound, 5},
				5: {nlp.DepObject, 2},
			}),
	}}}
	e := newTestExtractor(t, &fakeAnalyzer{docs: map[string]*nlp.Doc{text: doc}})

	out, err := e.Extract(text, []string{"Bioreactor", "reactor"}, 0.5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	found := false
	for _, r := range out {
		if r.Kind == KindUses && r.SourceTerm == "Bioreactor" && r.TargetTerm == "reactor" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing USES(Bioreactor -> reactor); got %+v", out)
	}
}

func TestExtractScenarioCPositionalFallback(t *testing.T) {
	// "xval" 10 chars before the evidence, "yval" ~76 chars after: the
	// distance tier gives +0.1, the sentence is too long for the token
	// bonus, so the single fallback relationship scores exactly 0.6.
	text := "xval stuff measures " + strings.Repeat("pad ", 19) + "yval now."
	spec := "xval/NN stuff/NN measures/VBZ " + strings.Repeat("pad/NN ", 19) + "yval/NN now/RB ./."
	doc := &nlp.Doc{Text: text, Sentences: []nlp.Sentence{{
		Text: text,
		// Verb present but without subject/object children: structural
		// extraction finds nothing and positional fallback takes over.
		Tokens: tokens(t, spec, nil),
	}}}
	e := newTestExtractor(t, &fakeAnalyzer{docs: map[string]*nlp.Doc{text: doc}})

	out, err := e.Extract(text, []string{"xval", "yval"}, 0.5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	var measures []Relationship
	for _, r := range out {
		if r.Kind == KindMeasures {
			measures = append(measures, r)
		}
	}
	if len(measures) != 1 {
		t.Fatalf("got %d MEASURES relationships, want exactly 1: %+v", len(measures), measures)
	}

	r := measures[0]
	if r.SourceTerm != "xval" || r.TargetTerm != "yval" {
		t.Errorf("got %s -> %s, want xval -> yval", r.SourceTerm, r.TargetTerm)
	}
	if r.Method != MethodPositional {
		t.Errorf("method = %v, want positional", r.Method)
	}
	if r.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", r.Confidence)
	}
}

func TestExtractSplitterOnlyAnalyzer(t *testing.T) {
	// With sentence splitting but no parse tokens, pattern matching plus
	// positional fallback still produce relationships.
	e := newTestExtractor(t, &splitterAnalyzer{})

	out, err := e.Extract("The pump uses oil.", []string{"pump", "oil"}, 0.5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d relationships, want 1: %+v", len(out), out)
	}
	if out[0].SourceTerm != "pump" || out[0].TargetTerm != "oil" || out[0].Kind != KindUses {
		t.Errorf("got %+v, want USES(pump -> oil)", out[0])
	}
	if out[0].Method != MethodPositional {
		t.Errorf("method = %v, want positional", out[0].Method)
	}
}

func TestExtractTwoSentences(t *testing.T) {
	// Segmentation feeds per-sentence extraction: each sentence contributes
	// its own relationship.
	e := newTestExtractor(t, &splitterAnalyzer{})
	text := "The pump uses oil. The sensor measures temperature."
	terms := []string{"pump", "oil", "sensor", "temperature"}

	out, err := e.Extract(text, terms, 0.5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d relationships, want 2: %+v", len(out), out)
	}
	if out[0].Kind != KindUses || out[0].SourceTerm != "pump" || out[0].TargetTerm != "oil" {
		t.Errorf("first sentence: got %+v, want USES(pump -> oil)", out[0])
	}
	if out[1].Kind != KindMeasures || out[1].SourceTerm != "sensor" || out[1].TargetTerm != "temperature" {
		t.Errorf("second sentence: got %+v, want MEASURES(sensor -> temperature)", out[1])
	}
}

func TestExtractInvariants(t *testing.T) {
	text := "A temperature sensor measures temperature and sends data to the control system."
	e := newTestExtractor(t, &fakeAnalyzer{docs: map[string]*nlp.Doc{text: scenarioADoc(t, text)}})
	terms := []string{"temperature sensor", "temperature", "control system"}

	out, err := e.Extract(text, terms, 0)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	table := compilePatternTable()
	for _, r := range out {
		if r.SourceTerm == r.TargetTerm {
			t.Errorf("self-relationship emitted: %+v", r)
		}
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("confidence %v outside [0, 1]: %+v", r.Confidence, r)
		}
		if !r.Kind.Valid() {
			t.Errorf("invalid kind %q: %+v", r.Kind, r)
		}
		matched := false
		for _, re := range table[r.Kind] {
			if re.MatchString(r.Evidence) {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("evidence %q matches no %s pattern", r.Evidence, r.Kind)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "A temperature sensor measures temperature and sends data to the control system."
	e := newTestExtractor(t, &fakeAnalyzer{docs: map[string]*nlp.Doc{text: scenarioADoc(t, text)}})
	terms := []string{"temperature sensor", "temperature", "control system"}

	first, err := e.Extract(text, terms, 0.5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := e.Extract(text, terms, 0.5)
		if err != nil {
			t.Fatalf("Extract (run %d): %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}

func TestExtractMinConfidenceFilter(t *testing.T) {
	// Positional fallback over a long sentence with distant terms scores
	// exactly 0.5; a 0.9 threshold must filter it out silently.
	text := "xval stuff measures " + strings.Repeat("pad ", 30) + "yval now."
	spec := "xval/NN stuff/NN measures/VBZ " + strings.Repeat("pad/NN ", 30) + "yval/NN now/RB ./."
	doc := &nlp.Doc{Text: text, Sentences: []nlp.Sentence{{Text: text, Tokens: tokens(t, spec, nil)}}}
	e := newTestExtractor(t, &fakeAnalyzer{docs: map[string]*nlp.Doc{text: doc}})

	low, err := e.Extract(text, []string{"xval", "yval"}, 0.5)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(low) != 1 {
		t.Fatalf("threshold 0.5: got %d relationships, want 1", len(low))
	}

	high, err := e.Extract(text, []string{"xval", "yval"}, 0.9)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(high) != 0 {
		t.Errorf("threshold 0.9: got %d relationships, want 0", len(high))
	}
}

func TestExtractDefaultMinConfidence(t *testing.T) {
	text := "The pump uses oil."
	e := newTestExtractor(t, &splitterAnalyzer{})

	out, err := e.Extract(text, []string{"pump", "oil"}, -1)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("default threshold: got %d relationships, want 1", len(out))
	}
}

func TestExtractRejectsOutOfRangeThreshold(t *testing.T) {
	e := newTestExtractor(t, nlp.NewNullAnalyzer())
	if _, err := e.Extract("text", []string{"a", "b"}, 1.5); err == nil {
		t.Error("Extract with threshold 1.5 should error")
	}
}

func TestNewExtractorValidation(t *testing.T) {
	if _, err := NewExtractor(nil, zap.NewNop().Sugar()); err == nil {
		t.Error("NewExtractor(nil analyzer) should error")
	}
	if _, err := NewExtractor(nlp.NewNullAnalyzer(), nil); err == nil {
		t.Error("NewExtractor(nil logger) should error")
	}
}
