package runtime

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"sentiment-lab/ai"
	"sentiment-lab/domain"
	"sentiment-lab/errors"
	"sentiment-lab/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "training_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const feedbackDataset = `text,label
ótimo atendimento,Positivo
péssimo serviço,Negativo
muito bom,Positivo
muito ruim,Negativo
`

func TestModelLoader_Load(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	runs := mocks.NewMockITrainingRunRepository(ctrl)
	path := writeDataset(t, feedbackDataset)

	// Given a repository expecting the run of this dataset
	var stored domain.TrainingRun
	runs.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(run domain.TrainingRun) error {
			stored = run
			return nil
		}).
		Times(1)

	loader := NewModelLoader(logs.GetLoggerFromLevel(slog.LevelDebug), ai.DefaultTrainerOptions(), runs)

	// When loading
	engine, run, err := loader.Load(path)

	// Then the engine is ready and the run is recorded
	req.NoError(err)
	req.True(engine.Ready())
	req.Equal(run, stored)
	req.NotEmpty(run.ID)
	req.Equal(path, run.DatasetPath)
	req.Equal(4, run.Examples)
	req.Equal(7, run.Vocabulary)
	req.Equal([]string{"Positivo", "Negativo"}, run.Labels)
	req.False(run.At.IsZero())

	result, err := engine.Predict("Muito Bom!!!")
	req.NoError(err)
	req.Equal("Positivo", result.PredictedLabel)
}

func TestModelLoader_Load_StoreFailureIsNotFatal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	runs := mocks.NewMockITrainingRunRepository(ctrl)
	runs.EXPECT().Store(gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)

	loader := NewModelLoader(logs.GetLoggerFromLevel(slog.LevelDebug), ai.DefaultTrainerOptions(), runs)

	engine, _, err := loader.Load(writeDataset(t, feedbackDataset))

	req.NoError(err)
	req.True(engine.Ready())
}

func TestModelLoader_Load_WithoutHistory(t *testing.T) {
	req := require.New(t)
	loader := NewModelLoader(logs.GetLoggerFromLevel(slog.LevelDebug), ai.DefaultTrainerOptions(), nil)

	engine, _, err := loader.Load(writeDataset(t, feedbackDataset))

	req.NoError(err)
	req.True(engine.Ready())
}

func TestModelLoader_Load_DatasetErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "header only", content: "text,label\n"},
		{name: "wrong column count", content: "text,label\nmuito bom,Positivo,extra\n"},
		{name: "punctuation only texts", content: "text,label\n!!!,Positivo\n???,Negativo\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// Given a repository that must never be called
			runs := mocks.NewMockITrainingRunRepository(ctrl)
			loader := NewModelLoader(logs.GetLoggerFromLevel(slog.LevelDebug), ai.DefaultTrainerOptions(), runs)

			engine, _, err := loader.Load(writeDataset(t, tc.content))

			req.ErrorIs(err, errors.ErrDataset)
			req.Nil(engine)
		})
	}
}
