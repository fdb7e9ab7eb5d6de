package ai

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Model is the trained classifier. It is built once by Train and only read afterwards,
// so a single *Model can be shared by any number of goroutines.
type Model struct {
	vectorizer Vectorizer
	labels     Labels
	weights    *mat.Dense // classes x features
	bias       []float64
}

func (m *Model) Labels() Labels {
	return m.labels
}

func (m *Model) Vocabulary() *Vocabulary {
	return m.vectorizer.vocabulary
}

func (m *Model) Scaling() Scaling {
	return m.vectorizer.scaling
}

// Weights returns a copy of the weight vector of class key.
func (m *Model) Weights(key int) []float64 {
	row := m.weights.RawRowView(key)
	out := make([]float64, len(row))
	copy(out, row)
	return out
}

func (m *Model) Bias(key int) float64 {
	return m.bias[key]
}

// scores computes w_c·x + b_c for every class.
func (m *Model) scores(x []float64) []float64 {
	classes, features := m.weights.Dims()
	z := mat.NewVecDense(classes, nil)
	z.MulVec(m.weights, mat.NewVecDense(features, x))
	out := make([]float64, classes)
	floats.Add(out, z.RawVector().Data)
	floats.Add(out, m.bias)
	return out
}

// softmax turns raw scores into probabilities. Shifting by the max keeps exp finite.
func softmax(scores []float64) []float64 {
	out := make([]float64, len(scores))
	peak := floats.Max(scores)
	for i, s := range scores {
		out[i] = math.Exp(s - peak)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}
