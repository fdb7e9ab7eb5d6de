package ai

import (
	"strings"

	"sentiment-lab/domain"
	"sentiment-lab/errors"

	"gonum.org/v1/gonum/floats"
)

// Engine scores texts against one trained Model.
// An Engine without a model (the zero value, or NewEngine(nil)) refuses every prediction.
type Engine struct {
	model *Model
}

func NewEngine(model *Model) *Engine {
	return &Engine{model: model}
}

// Ready reports whether the engine holds a model.
func (e *Engine) Ready() bool {
	return e != nil && e.model != nil
}

// Labels returns the known labels in class key order.
func (e *Engine) Labels() []string {
	if !e.Ready() {
		return nil
	}
	return e.model.labels.Names()
}

// Predict classifies text. The returned result always carries a score for every
// known label, and PredictedLabel is the label with the highest score, the
// label seen first during training winning ties.
func (e *Engine) Predict(text string) (domain.PredictionResult, error) {
	if !e.Ready() {
		return domain.PredictionResult{}, errors.ErrNotReady
	}
	if strings.TrimSpace(text) == "" {
		return domain.PredictionResult{}, errors.ErrInvalidInput
	}

	x := e.model.vectorizer.Features(Normalize(text))
	scores := e.model.scores(x)
	probabilities := softmax(scores)

	labels := e.model.labels
	result := domain.PredictionResult{
		PredictedLabel: labels.Name(floats.MaxIdx(scores)),
		Scores:         make(map[string]float64, labels.Len()),
		Probabilities:  make(map[string]float64, labels.Len()),
	}
	for key, score := range scores {
		name := labels.Name(key)
		result.Scores[name] = score
		result.Probabilities[name] = probabilities[key]
	}
	return result, nil
}

// PredictAll classifies texts in order and stops at the first error.
func (e *Engine) PredictAll(texts []string) ([]domain.PredictionResult, error) {
	out := make([]domain.PredictionResult, 0, len(texts))
	for _, text := range texts {
		result, err := e.Predict(text)
		if err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, nil
}
