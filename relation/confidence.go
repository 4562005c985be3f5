package relation

// Confidence scoring constants. The model is deliberately simple and fully
// deterministic: a base score plus bonuses for extraction method, term
// proximity, and sentence simplicity, capped at 1.0.
const (
	confidenceBase     = 0.5
	bonusStructural    = 0.2
	bonusNearDistance  = 0.2 // source/target closer than nearDistance characters
	bonusMidDistance   = 0.1 // closer than midDistance characters
	bonusShortSentence = 0.1 // fewer than shortSentenceTokens whitespace tokens

	nearDistance        = 50
	midDistance         = 100
	shortSentenceTokens = 15
)

// Score computes the confidence for a relationship. distance is the
// character distance between the source and target mentions; sentenceTokens
// is the whitespace-delimited token count of the sentence. The result is
// always within [confidenceBase, 1.0].
func Score(method Method, distance, sentenceTokens int) float64 {
	score := confidenceBase

	if method == MethodStructural {
		score += bonusStructural
	}

	switch {
	case distance >= 0 && distance < nearDistance:
		score += bonusNearDistance
	case distance >= 0 && distance < midDistance:
		score += bonusMidDistance
	}

	if sentenceTokens < shortSentenceTokens {
		score += bonusShortSentence
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
