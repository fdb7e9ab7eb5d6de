package ai

// Scaling holds the per-feature min and max observed over the raw training matrix.
type Scaling struct {
	Min []float64
	Max []float64
}

// FitScaling computes the column-wise min and max of rows.
// rows must be non-empty and share the same length.
func FitScaling(rows [][]float64) Scaling {
	width := len(rows[0])
	s := Scaling{Min: make([]float64, width), Max: make([]float64, width)}
	copy(s.Min, rows[0])
	copy(s.Max, rows[0])
	for _, row := range rows[1:] {
		for j, x := range row {
			if x < s.Min[j] {
				s.Min[j] = x
			}
			if x > s.Max[j] {
				s.Max[j] = x
			}
		}
	}
	return s
}

// Apply rescales vec in place to [0,1].
// A constant column maps to 0 and values outside the training range are clamped.
func (s Scaling) Apply(vec []float64) {
	for j, x := range vec {
		span := s.Max[j] - s.Min[j]
		if span == 0 {
			vec[j] = 0
			continue
		}
		scaled := (x - s.Min[j]) / span
		switch {
		case scaled < 0:
			scaled = 0
		case scaled > 1:
			scaled = 1
		}
		vec[j] = scaled
	}
}

// Vectorizer turns a normalized text into a scaled feature vector.
type Vectorizer struct {
	vocabulary *Vocabulary
	scaling    Scaling
}

func NewVectorizer(vocabulary *Vocabulary, scaling Scaling) Vectorizer {
	return Vectorizer{vocabulary: vocabulary, scaling: scaling}
}

// Features counts the in-vocabulary tokens of normalized and rescales the counts.
// Out-of-vocabulary tokens contribute nothing.
func (v Vectorizer) Features(normalized string) []float64 {
	vec := v.vocabulary.count(Tokenize(normalized))
	v.scaling.Apply(vec)
	return vec
}

// Size is the length of every produced vector.
func (v Vectorizer) Size() int {
	return v.vocabulary.Len()
}
