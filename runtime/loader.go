// Package runtime handles the startup tasks: loading the dataset and training the model.
package runtime

import (
	"fmt"
	"log/slog"
	"time"

	"sentiment-lab/ai"
	"sentiment-lab/dataset"
	"sentiment-lab/domain"
	"sentiment-lab/repositories"

	"github.com/google/uuid"
)

// ModelLoader trains the prediction engine from the dataset file.
type ModelLoader struct {
	log     *slog.Logger
	options ai.TrainerOptions
	runs    repositories.ITrainingRunRepository
}

// NewModelLoader creates a loader. runs may be nil when the training history is not kept.
func NewModelLoader(log *slog.Logger, options ai.TrainerOptions, runs repositories.ITrainingRunRepository) *ModelLoader {
	return &ModelLoader{log: log, options: options, runs: runs}
}

// Load reads the dataset at path and trains a model from it.
// Any dataset problem is returned as errors.ErrDataset and the engine must not be served.
// A failure to record the run in the history is only logged.
func (l *ModelLoader) Load(path string) (*ai.Engine, domain.TrainingRun, error) {
	examples, err := dataset.Load(path)
	if err != nil {
		return nil, domain.TrainingRun{}, err
	}
	l.log.Info("Dataset loaded", "path", path, "examples", len(examples))

	model, stats, err := ai.Train(examples, l.options)
	if err != nil {
		return nil, domain.TrainingRun{}, fmt.Errorf("%s: %w", path, err)
	}

	run := domain.TrainingRun{
		ID:           uuid.NewString(),
		DatasetPath:  path,
		Examples:     stats.Examples,
		Vocabulary:   stats.Features,
		Labels:       model.Labels().Names(),
		Epochs:       stats.Epochs,
		FinalLoss:    stats.FinalLoss,
		Accuracy:     stats.Accuracy,
		TrainingTime: stats.Duration,
		At:           time.Now().UTC(),
	}
	l.log.Info("Model trained",
		"run_id", run.ID,
		"vocabulary", run.Vocabulary,
		"labels", run.Labels,
		"epochs", run.Epochs,
		"loss", run.FinalLoss,
		"accuracy", run.Accuracy,
		"duration", run.TrainingTime)

	if l.runs != nil {
		if err := l.runs.Store(run); err != nil {
			l.log.Warn("Unable to record training run", "run_id", run.ID, "error", err)
		}
	}
	return ai.NewEngine(model), run, nil
}
