package relation

import (
	"strings"

	"github.com/developer-hhiotsystems/terminology-extraction/nlp"
)

// extractStructural derives relationships from a sentence's dependency
// structure: find the verb inside the evidence phrase, collect its subject
// and object children (with compound-noun concatenation), and map each
// phrase onto known terms by substring containment. Every (subject, object)
// term pair with distinct terms yields one relationship.
//
// Returns nil when the sentence mentions fewer than two distinct terms, when
// no verb token sits inside the evidence, or when no subject/object phrase
// resolves to a known term — the caller then falls back to positional
// extraction.
func extractStructural(sent *nlp.Sentence, kind RelationKind, evidence string, mentions []Mention) []Relationship {
	if len(mentions) < 2 || len(sent.Tokens) == 0 {
		return nil
	}

	verb := evidenceVerb(sent, evidence)
	if verb < 0 {
		return nil
	}

	subjects := nounPhrases(sent, sent.Children(verb, nlp.DepSubject))
	objects := nounPhrases(sent, sent.Children(verb,
		nlp.DepObject, nlp.DepPrepObject, nlp.DepAttribute))
	if len(subjects) == 0 || len(objects) == 0 {
		return nil
	}

	var out []Relationship
	for _, subjPhrase := range subjects {
		for _, objPhrase := range objects {
			for _, source := range phraseTerms(subjPhrase, mentions) {
				for _, target := range phraseTerms(objPhrase, mentions) {
					if source == target {
						continue
					}
					out = append(out, Relationship{
						SourceTerm: source,
						TargetTerm: target,
						Kind:       kind,
						Evidence:   evidence,
						Context:    sent.Text,
						Method:     MethodStructural,
					})
				}
			}
		}
	}
	return out
}

// evidenceVerb locates the verb token appearing inside the evidence phrase,
// matching on token text or lemma. Returns -1 when absent.
func evidenceVerb(sent *nlp.Sentence, evidence string) int {
	evidLower := strings.ToLower(evidence)
	for i, tok := range sent.Tokens {
		if tok.POS != nlp.POSVerb {
			continue
		}
		if strings.Contains(evidLower, strings.ToLower(tok.Text)) ||
			(tok.Lemma != "" && strings.Contains(evidLower, tok.Lemma)) {
			return i
		}
	}
	return -1
}

// nounPhrases expands each head index into its phrase: compound children
// concatenated in token order, then the head itself ("temperature" +
// "sensor" -> "temperature sensor").
func nounPhrases(sent *nlp.Sentence, heads []int) []string {
	var phrases []string
	for _, head := range heads {
		parts := make([]string, 0, 2)
		for _, c := range sent.Children(head, nlp.DepCompound) {
			parts = append(parts, sent.Tokens[c].Text)
		}
		parts = append(parts, sent.Tokens[head].Text)
		phrases = append(phrases, strings.Join(parts, " "))
	}
	return phrases
}

// phraseTerms maps a subject/object phrase onto mentioned terms by substring
// containment in either direction: the term inside the phrase ("reactor" in
// "reactor vessel") or the phrase inside the term ("bioreactor" phrase for
// term "Bioreactor" is the equal case).
func phraseTerms(phrase string, mentions []Mention) []string {
	phraseLower := strings.ToLower(phrase)
	if phraseLower == "" {
		return nil
	}

	var terms []string
	for _, m := range mentions {
		termLower := strings.ToLower(m.Term)
		if strings.Contains(phraseLower, termLower) || strings.Contains(termLower, phraseLower) {
			terms = append(terms, m.Term)
		}
	}
	return terms
}
