package nlp

import "strings"

// irregularVerbs covers the handful of irregular forms that show up in
// technical definition prose. Everything else goes through suffix rules.
var irregularVerbs = map[string]string{
	"is": "be", "are": "be", "was": "be", "were": "be", "been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do",
	"made": "make", "makes": "make",
	"sent": "send", "sends": "send",
	"held": "hold", "holds": "hold",
	"kept": "keep", "keeps": "keep",
	"built": "build", "builds": "build",
	"gave": "give", "given": "give", "gives": "give",
	"took": "take", "taken": "take", "takes": "take",
}

// Lemmatize reduces an inflected word to a base form. It is intentionally
// shallow: the extractor only compares verb lemmas against matched evidence
// strings, and for nouns it needs the bare singular.
func Lemmatize(word, pos string) string {
	w := strings.ToLower(word)

	if pos == POSVerb {
		if base, ok := irregularVerbs[w]; ok {
			return base
		}
		return stripVerbSuffix(w)
	}

	if pos == POSNoun {
		return stripPlural(w)
	}

	return w
}

func stripVerbSuffix(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"), strings.HasSuffix(w, "shes"),
		strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "xes"),
		strings.HasSuffix(w, "zes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ed") && len(w) > 3:
		stem := w[:len(w)-2]
		// "controlled" -> "control"
		if len(stem) > 2 && stem[len(stem)-1] == stem[len(stem)-2] && !isVowel(stem[len(stem)-1]) {
			return stem[:len(stem)-1]
		}
		// "required" -> "require", "measured" -> "measure"
		if len(stem) > 3 && !isVowel(stem[len(stem)-1]) && isVowel(stem[len(stem)-2]) && !isVowel(stem[len(stem)-3]) {
			return stem + "e"
		}
		return stem
	case strings.HasSuffix(w, "ing") && len(w) > 4:
		stem := w[:len(w)-3]
		if len(stem) > 2 && stem[len(stem)-1] == stem[len(stem)-2] && !isVowel(stem[len(stem)-1]) {
			return stem[:len(stem)-1]
		}
		return stem
	case strings.HasSuffix(w, "s") && len(w) > 2 && !strings.HasSuffix(w, "ss"):
		return w[:len(w)-1]
	default:
		return w
	}
}

func stripPlural(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ses"), strings.HasSuffix(w, "shes"),
		strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "xes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && len(w) > 2 && !strings.HasSuffix(w, "ss"):
		return w[:len(w)-1]
	default:
		return w
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
