package ai

import (
	"sentiment-lab/errors"
)

// Vocabulary maps every normalized term seen during training to a feature index.
// Indices follow first occurrence across the corpus, so building twice from the
// same corpus gives the same vocabulary.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// BuildVocabulary derives the vocabulary from normalized texts and returns it
// together with the raw term-frequency row of every text.
func BuildVocabulary(normalized []string) (*Vocabulary, [][]float64, error) {
	v := &Vocabulary{index: make(map[string]int)}
	tokenized := make([][]string, len(normalized))
	for i, text := range normalized {
		tokens := Tokenize(text)
		tokenized[i] = tokens
		for _, tok := range tokens {
			if _, ok := v.index[tok]; ok {
				continue
			}
			v.index[tok] = len(v.terms)
			v.terms = append(v.terms, tok)
		}
	}
	if len(v.terms) == 0 {
		return nil, nil, errors.ErrEmptyVocabulary
	}

	rows := make([][]float64, len(tokenized))
	for i, tokens := range tokenized {
		rows[i] = v.count(tokens)
	}
	return v, rows, nil
}

// Len is the number of features.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Index returns the feature index of term.
func (v *Vocabulary) Index(term string) (int, bool) {
	idx, ok := v.index[term]
	return idx, ok
}

// Terms returns a copy of the terms in index order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// count builds a raw term-frequency vector. Unknown tokens are ignored.
func (v *Vocabulary) count(tokens []string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, tok := range tokens {
		if idx, ok := v.index[tok]; ok {
			vec[idx]++
		}
	}
	return vec
}
