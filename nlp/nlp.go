// Package nlp provides the parsing engine behind relation extraction:
// sentence segmentation, tokenization, part-of-speech tagging, and a shallow
// dependency layer (subject / object / compound links around each verb).
//
// The engine is injected as an Analyzer so degraded operation is an explicit
// configuration: ProseAnalyzer is the real implementation, NullAnalyzer
// stands in when no parsing engine is available and yields empty documents.
package nlp

// Coarse part-of-speech classes derived from Penn Treebank tags.
const (
	POSVerb        = "VERB"
	POSNoun        = "NOUN"
	POSAdjective   = "ADJ"
	POSAdverb      = "ADV"
	POSAdposition  = "ADP" // prepositions (IN) and "to" (TO)
	POSDeterminer  = "DET"
	POSConjunction = "CONJ"
	POSPronoun     = "PRON"
	POSPunct       = "PUNCT"
	POSOther       = "X"
)

// Dependency labels assigned by the shallow parsing pass.
const (
	DepSubject    = "nsubj"
	DepObject     = "dobj"
	DepPrepObject = "pobj"
	DepAttribute  = "attr"
	DepCompound   = "compound"
)

// Token is a single token within a sentence, carrying the lemma,
// part-of-speech information, and its syntactic attachment.
type Token struct {
	Text  string
	Lemma string
	Tag   string // Penn Treebank tag (e.g. "VBZ", "NN")
	POS   string // coarse class (POSVerb, POSNoun, ...)
	Dep   string // dependency label, empty when unattached
	Head  int    // index of the syntactic head within the sentence, -1 for none
}

// Sentence is one segmented sentence with its parsed tokens.
type Sentence struct {
	Text   string
	Start  int // byte offset of the sentence within the parsed text
	Tokens []Token
}

// Children returns the indices of tokens attached to head with any of the
// given dependency labels, in token order.
func (s *Sentence) Children(head int, labels ...string) []int {
	var out []int
	for i, tok := range s.Tokens {
		if tok.Head != head {
			continue
		}
		for _, label := range labels {
			if tok.Dep == label {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// Doc is the parsed representation of a unit of text.
type Doc struct {
	Text      string
	Sentences []Sentence
}

// Analyzer is the parsing-engine collaborator. Implementations must be safe
// for concurrent use; Parse holds no cross-call state.
type Analyzer interface {
	Parse(text string) (*Doc, error)
}

// NullAnalyzer is the degraded-mode engine: it segments nothing and parses
// nothing, so every extraction call over it yields an empty result. Install
// it when the real engine cannot be loaded.
type NullAnalyzer struct{}

// NewNullAnalyzer returns the degraded-mode analyzer.
func NewNullAnalyzer() *NullAnalyzer {
	return &NullAnalyzer{}
}

// Parse always returns an empty document.
func (a *NullAnalyzer) Parse(text string) (*Doc, error) {
	return &Doc{Text: text}, nil
}

// coarsePOS maps a Penn Treebank tag to its coarse class.
func coarsePOS(tag string) string {
	switch {
	case len(tag) >= 2 && tag[:2] == "VB", tag == "MD":
		return POSVerb
	case len(tag) >= 2 && tag[:2] == "NN":
		return POSNoun
	case len(tag) >= 2 && tag[:2] == "JJ":
		return POSAdjective
	case len(tag) >= 2 && tag[:2] == "RB":
		return POSAdverb
	case tag == "IN", tag == "TO":
		return POSAdposition
	case tag == "DT", tag == "PDT", tag == "WDT":
		return POSDeterminer
	case tag == "CC":
		return POSConjunction
	case tag == "PRP", tag == "PRP$", tag == "WP", tag == "WP$":
		return POSPronoun
	case tag == ".", tag == ",", tag == ":", tag == "(", tag == ")",
		tag == "``", tag == "''", tag == "-LRB-", tag == "-RRB-":
		return POSPunct
	default:
		return POSOther
	}
}
