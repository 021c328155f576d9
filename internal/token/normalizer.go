package token

// Normalizer produces comparable token sequences under one folding rule.
// In accent-insensitive mode both document and query text are folded before
// tokenization; in strict mode neither is, and accents compare exactly.
type Normalizer struct {
	accentSensitive bool
}

func NewNormalizer(accentSensitive bool) Normalizer {
	return Normalizer{accentSensitive: accentSensitive}
}

func (n Normalizer) Tokens(text string) []string {
	if !n.accentSensitive {
		text = FoldAccents(text)
	}
	return Tokenize(text)
}
