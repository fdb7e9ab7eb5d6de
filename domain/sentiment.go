package domain

import "time"

// TrainingExample is one row of the training dataset.
type TrainingExample struct {
	Text  string `validate:"required"`
	Label string `validate:"required"`
}

// PredictionResult is produced per request and never stored.
// Scores holds the raw linear score of every known label, Probabilities
// the softmax of those scores.
type PredictionResult struct {
	PredictedLabel string
	Scores         map[string]float64
	Probabilities  map[string]float64
}

// Score returns the raw score of the predicted label.
func (p PredictionResult) Score() float64 {
	return p.Scores[p.PredictedLabel]
}

// Analysis is a prediction enriched by the service layer.
type Analysis struct {
	MessageID      string
	Result         PredictionResult
	Lang           string
	ProcessingTime time.Duration
}

// TrainingRun describes one startup training, kept for auditing.
type TrainingRun struct {
	ID           string
	DatasetPath  string
	Examples     int
	Vocabulary   int
	Labels       []string
	Epochs       int
	FinalLoss    float64
	Accuracy     float64
	TrainingTime time.Duration
	At           time.Time
}
