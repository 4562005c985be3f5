package nlp

// assignDependencies runs the shallow head-attachment pass over a tagged
// sentence. It is deliberately approximate: the relation extractor only
// needs subject, object, prepositional-object, predicate-complement, and
// compound links around verbs, so a full parser is not required.
//
// Rules, in order:
//  1. A noun immediately followed by another noun is a compound modifier of
//     the following noun ("temperature sensor", "reactor vessel").
//  2. A noun-phrase head (a noun not followed by a noun) attaches to a verb:
//     with no verb before it, it is the subject of the next verb; with no
//     verb after it, it is an object of the previous verb; with verbs on
//     both sides it is an object of the previous verb when a conjunction or
//     another noun head lies between it and the next verb, otherwise the
//     subject of the next verb.
//  3. Object side: prepositional object when a preposition intervenes
//     between verb and head, predicate complement after a copula, plain
//     object otherwise.
func assignDependencies(tokens []Token) {
	n := len(tokens)

	for i := 0; i < n-1; i++ {
		if tokens[i].POS == POSNoun && tokens[i+1].POS == POSNoun {
			tokens[i].Dep = DepCompound
			tokens[i].Head = i + 1
		}
	}

	for i := 0; i < n; i++ {
		if tokens[i].POS != POSNoun || tokens[i].Dep == DepCompound {
			continue
		}

		prev := nearestVerb(tokens, i, -1)
		next := nearestVerb(tokens, i, +1)

		switch {
		case prev < 0 && next < 0:
			// No verb in the sentence; leave unattached.
		case prev < 0:
			attachSubject(tokens, i, next)
		case next < 0:
			attachObject(tokens, i, prev)
		default:
			if objectOfPrevious(tokens, i, next) {
				attachObject(tokens, i, prev)
			} else {
				attachSubject(tokens, i, next)
			}
		}
	}
}

// nearestVerb returns the index of the closest verb from i in the given
// direction, or -1.
func nearestVerb(tokens []Token, i, dir int) int {
	for j := i + dir; j >= 0 && j < len(tokens); j += dir {
		if tokens[j].POS == POSVerb {
			return j
		}
	}
	return -1
}

// objectOfPrevious reports whether a noun head with verbs on both sides
// belongs to the previous verb: true when a conjunction, punctuation, or
// another noun head separates it from the next verb.
func objectOfPrevious(tokens []Token, head, nextVerb int) bool {
	for j := head + 1; j < nextVerb; j++ {
		switch tokens[j].POS {
		case POSConjunction, POSPunct, POSNoun:
			return true
		}
	}
	return false
}

func attachSubject(tokens []Token, head, verb int) {
	tokens[head].Dep = DepSubject
	tokens[head].Head = verb
}

func attachObject(tokens []Token, head, verb int) {
	label := DepObject
	for j := verb + 1; j < head; j++ {
		if tokens[j].POS == POSAdposition {
			label = DepPrepObject
			break
		}
	}
	if label == DepObject && tokens[verb].Lemma == "be" {
		label = DepAttribute
	}
	tokens[head].Dep = label
	tokens[head].Head = verb
}
