package ai

import (
	"sync"
	"testing"

	"sentiment-lab/domain"
	"sentiment-lab/errors"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func feedbackExamples() []domain.TrainingExample {
	return []domain.TrainingExample{
		{Text: "ótimo atendimento", Label: "Positivo"},
		{Text: "péssimo serviço", Label: "Negativo"},
		{Text: "muito bom", Label: "Positivo"},
		{Text: "muito ruim", Label: "Negativo"},
	}
}

func trainedEngine(t *testing.T) (*Engine, *Model) {
	t.Helper()
	model, _, err := Train(feedbackExamples(), DefaultTrainerOptions())
	require.NoError(t, err)
	return NewEngine(model), model
}

func TestEngine_Predict_EndToEnd(t *testing.T) {
	req := require.New(t)
	engine, _ := trainedEngine(t)

	// When predicting a noisy variant of a positive training text
	result, err := engine.Predict("Muito Bom!!!")

	// Then the positive label wins
	req.NoError(err)
	req.Equal("Positivo", result.PredictedLabel)
	req.Greater(result.Scores["Positivo"], result.Scores["Negativo"])
	req.InDelta(1.0, result.Probabilities["Positivo"]+result.Probabilities["Negativo"], 1e-9)
}

func TestEngine_Predict_ScoreLabelConsistency(t *testing.T) {
	req := require.New(t)
	engine, _ := trainedEngine(t)

	inputs := []string{"muito bom", "muito ruim", "péssimo", "ótimo serviço", "atendimento", "qualquer coisa"}
	for _, in := range inputs {
		result, err := engine.Predict(in)
		req.NoError(err)

		// Then one score per training label
		req.Len(result.Scores, 2)
		req.Len(result.Probabilities, 2)

		// And the predicted label holds the maximal score
		best := lo.MaxBy(lo.Entries(result.Scores), func(a, b lo.Entry[string, float64]) bool {
			return a.Value > b.Value
		})
		req.Equal(best.Value, result.Score(), "input=%q", in)
	}
}

func TestEngine_Predict_OutOfVocabulary(t *testing.T) {
	req := require.New(t)
	engine, model := trainedEngine(t)

	// Given a text made only of unseen tokens
	result, err := engine.Predict("xyzzy plugh")

	// Then scores are driven by the biases alone
	req.NoError(err)
	for key, name := range model.Labels().Names() {
		req.InDelta(model.Bias(key), result.Scores[name], 1e-12)
	}
}

func TestEngine_Predict_RejectsBlank(t *testing.T) {
	req := require.New(t)
	engine, _ := trainedEngine(t)

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := engine.Predict(in)
		req.ErrorIs(err, errors.ErrInvalidInput, "input=%q", in)
	}
}

func TestEngine_Predict_PunctuationOnlyIsNotBlank(t *testing.T) {
	req := require.New(t)
	engine, _ := trainedEngine(t)

	// "!!!" normalizes to an empty text but is not blank input
	result, err := engine.Predict("!!!")
	req.NoError(err)
	req.Len(result.Scores, 2)
}

func TestEngine_Uninitialized(t *testing.T) {
	req := require.New(t)

	for _, engine := range []*Engine{NewEngine(nil), {}, nil} {
		req.False(engine.Ready())
		req.Nil(engine.Labels())
		_, err := engine.Predict("muito bom")
		req.ErrorIs(err, errors.ErrNotReady)
	}
}

func TestEngine_Predict_TieGoesToFirstLabel(t *testing.T) {
	req := require.New(t)

	// Given a model whose classes all score the same
	vocabulary, rows, err := BuildVocabulary([]string{"a b"})
	req.NoError(err)
	labels, err := NewLabels([]string{"Primeiro", "Segundo", "Terceiro"})
	req.NoError(err)
	model := &Model{
		vectorizer: NewVectorizer(vocabulary, FitScaling(rows)),
		labels:     labels,
		weights:    mat.NewDense(3, vocabulary.Len(), nil),
		bias:       []float64{0.5, 0.5, 0.5},
	}

	// When predicting
	result, err := NewEngine(model).Predict("a b")

	// Then the first seen label wins
	req.NoError(err)
	req.Equal("Primeiro", result.PredictedLabel)
	req.InDelta(1.0/3, result.Probabilities["Segundo"], 1e-12)
}

func TestEngine_PredictAll(t *testing.T) {
	req := require.New(t)
	engine, _ := trainedEngine(t)

	results, err := engine.PredictAll([]string{"muito bom", "muito ruim"})
	req.NoError(err)
	req.Len(results, 2)
	req.Equal("Positivo", results[0].PredictedLabel)
	req.Equal("Negativo", results[1].PredictedLabel)

	_, err = engine.PredictAll([]string{"muito bom", " "})
	req.ErrorIs(err, errors.ErrInvalidInput)
}

func TestEngine_Predict_Concurrent(t *testing.T) {
	req := require.New(t)
	engine, _ := trainedEngine(t)
	expected, err := engine.Predict("muito bom")
	req.NoError(err)

	var wg sync.WaitGroup
	results := make([]domain.PredictionResult, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = engine.Predict("muito bom")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		req.Equal(expected, r)
	}
}

func TestSoftmax(t *testing.T) {
	req := require.New(t)
	p := softmax([]float64{1000, 1000, 999})
	req.InDelta(1.0, floats.Sum(p), 1e-12)
	req.Greater(p[0], p[2])
	req.Equal(p[0], p[1])
}
