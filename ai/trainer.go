package ai

import (
	"math"
	"time"

	"sentiment-lab/domain"
	"sentiment-lab/errors"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TrainerOptions controls the optimizer. Zero fields fall back to DefaultTrainerOptions.
type TrainerOptions struct {
	MaxEpochs    int
	LearningRate float64
	L2           float64
	Tolerance    float64
}

func DefaultTrainerOptions() TrainerOptions {
	return TrainerOptions{
		MaxEpochs:    100,
		LearningRate: 0.1,
		L2:           1e-4,
		Tolerance:    1e-6,
	}
}

func (o TrainerOptions) withDefaults() TrainerOptions {
	d := DefaultTrainerOptions()
	if o.MaxEpochs <= 0 {
		o.MaxEpochs = d.MaxEpochs
	}
	if o.LearningRate <= 0 {
		o.LearningRate = d.LearningRate
	}
	if o.L2 <= 0 {
		o.L2 = d.L2
	}
	if o.Tolerance <= 0 {
		o.Tolerance = d.Tolerance
	}
	return o
}

// TrainingStats summarizes a training run.
type TrainingStats struct {
	Examples  int
	Features  int
	Classes   int
	Epochs    int
	FinalLoss float64
	Accuracy  float64
	Duration  time.Duration
}

// Train fits an L2-regularized multinomial logistic regression over the
// scaled term frequencies of examples.
//
// Optimization is plain stochastic gradient descent: every epoch visits the
// examples in the given order and updates all classes once per example. The
// same examples and options always produce the same model, and training stops
// after opts.MaxEpochs epochs at the latest.
func Train(examples []domain.TrainingExample, opts TrainerOptions) (*Model, TrainingStats, error) {
	start := time.Now()
	opts = opts.withDefaults()
	if len(examples) == 0 {
		return nil, TrainingStats{}, errors.ErrEmptyDataset
	}

	labels, err := NewLabels(lo.Map(examples, func(e domain.TrainingExample, _ int) string {
		return e.Label
	}))
	if err != nil {
		return nil, TrainingStats{}, err
	}
	normalized := lo.Map(examples, func(e domain.TrainingExample, _ int) string {
		return Normalize(e.Text)
	})
	vocabulary, rows, err := BuildVocabulary(normalized)
	if err != nil {
		return nil, TrainingStats{}, err
	}
	scaling := FitScaling(rows)
	for _, row := range rows {
		scaling.Apply(row)
	}
	targets := make([]int, len(examples))
	for i, e := range examples {
		targets[i], _ = labels.Key(e.Label)
	}

	model := &Model{
		vectorizer: NewVectorizer(vocabulary, scaling),
		labels:     labels,
		weights:    mat.NewDense(labels.Len(), vocabulary.Len(), nil),
		bias:       make([]float64, labels.Len()),
	}

	stats := TrainingStats{
		Examples: len(examples),
		Features: vocabulary.Len(),
		Classes:  labels.Len(),
	}
	previous := math.Inf(1)
	for epoch := 0; epoch < opts.MaxEpochs; epoch++ {
		loss := model.epoch(rows, targets, opts)
		stats.Epochs = epoch + 1
		stats.FinalLoss = loss
		if math.Abs(previous-loss) < opts.Tolerance {
			break
		}
		previous = loss
	}

	hits := 0
	for i, row := range rows {
		if floats.MaxIdx(model.scores(row)) == targets[i] {
			hits++
		}
	}
	stats.Accuracy = float64(hits) / float64(len(rows))
	stats.Duration = time.Since(start)
	return model, stats, nil
}

// epoch runs one pass of SGD and returns the regularized mean log-loss
// measured during the pass.
func (m *Model) epoch(rows [][]float64, targets []int, opts TrainerOptions) float64 {
	lr := opts.LearningRate
	decay := 1 - lr*opts.L2
	var loss float64
	for i, x := range rows {
		p := softmax(m.scores(x))
		loss -= math.Log(math.Max(p[targets[i]], 1e-15))
		for c := range p {
			g := p[c]
			if c == targets[i] {
				g--
			}
			w := m.weights.RawRowView(c)
			floats.Scale(decay, w)
			floats.AddScaled(w, -lr*g, x)
			m.bias[c] -= lr * g
		}
	}
	data := m.weights.RawMatrix().Data
	return loss/float64(len(rows)) + 0.5*opts.L2*floats.Dot(data, data)
}
