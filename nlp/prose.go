package nlp

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/developer-hhiotsystems/terminology-extraction/errors"
)

// ProseAnalyzer is the real parsing engine, backed by prose for sentence
// segmentation, tokenization, and Penn Treebank POS tagging. Dependency
// labels are assigned by a shallow head-attachment pass (see depends.go):
// noun-phrase heads before a verb become its subject, heads after become
// objects (prepositional when a preposition intervenes), and noun-noun
// sequences become compounds.
type ProseAnalyzer struct {
	logger *zap.SugaredLogger
}

// NewProseAnalyzer constructs the prose-backed analyzer.
func NewProseAnalyzer(logger *zap.SugaredLogger) (*ProseAnalyzer, error) {
	if logger == nil {
		return nil, errors.New("nil logger")
	}
	return &ProseAnalyzer{logger: logger.Named("nlp.prose")}, nil
}

// Parse segments text into sentences and parses each one.
func (a *ProseAnalyzer) Parse(text string) (*Doc, error) {
	doc := &Doc{Text: text}
	if strings.TrimSpace(text) == "" {
		return doc, nil
	}

	segmented, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, errors.Wrap(err, "segment text")
	}

	// Track a cursor so repeated sentence strings map to distinct offsets.
	cursor := 0
	for _, sent := range segmented.Sentences() {
		start := strings.Index(text[cursor:], sent.Text)
		if start < 0 {
			start = 0
		} else {
			start += cursor
			cursor = start + len(sent.Text)
		}

		parsed, err := a.parseSentence(sent.Text)
		if err != nil {
			return nil, err
		}
		parsed.Start = start
		doc.Sentences = append(doc.Sentences, *parsed)
	}

	a.logger.Debugw("Parsed text",
		"sentences", len(doc.Sentences),
		"bytes", len(text),
	)
	return doc, nil
}

// parseSentence tokenizes and tags a single sentence, then runs the shallow
// dependency pass.
func (a *ProseAnalyzer) parseSentence(sentence string) (*Sentence, error) {
	tagged, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, errors.Wrap(err, "tag sentence")
	}

	out := &Sentence{Text: sentence}
	for _, tok := range tagged.Tokens() {
		pos := coarsePOS(tok.Tag)
		out.Tokens = append(out.Tokens, Token{
			Text:  tok.Text,
			Lemma: Lemmatize(tok.Text, pos),
			Tag:   tok.Tag,
			POS:   pos,
			Head:  -1,
		})
	}

	assignDependencies(out.Tokens)
	return out, nil
}
