package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"sentiment-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTrainingRun(at time.Time) domain.TrainingRun {
	return domain.TrainingRun{
		ID:           uuid.NewString(),
		DatasetPath:  "data/training_data.csv",
		Examples:     25,
		Vocabulary:   42,
		Labels:       []string{"Positivo", "Negativo"},
		Epochs:       17,
		FinalLoss:    0.125,
		Accuracy:     1,
		TrainingTime: 3 * time.Millisecond,
		At:           at,
	}
}

func TestTrainingRunRepository_StoreAndList(t *testing.T) {
	req := require.New(t)
	repo := NewTrainingRunRepository(openTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given a stored run
	run := newTrainingRun(time.Date(2026, 3, 1, 10, 0, 0, 123, time.UTC))
	req.NoError(repo.Store(run))

	// When listing the history
	runs, err := repo.List(10)

	// Then the run is read back unchanged
	req.NoError(err)
	req.Len(runs, 1)
	req.Equal(run.ID, runs[0].ID)
	req.Equal(run.DatasetPath, runs[0].DatasetPath)
	req.Equal(run.Examples, runs[0].Examples)
	req.Equal(run.Vocabulary, runs[0].Vocabulary)
	req.Equal(run.Labels, runs[0].Labels)
	req.Equal(run.Epochs, runs[0].Epochs)
	req.Equal(run.FinalLoss, runs[0].FinalLoss)
	req.Equal(run.Accuracy, runs[0].Accuracy)
	req.Equal(run.TrainingTime, runs[0].TrainingTime)
	req.True(run.At.Equal(runs[0].At))
}

func TestTrainingRunRepository_List_NewestFirst(t *testing.T) {
	req := require.New(t)
	repo := NewTrainingRunRepository(openTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given five runs stored out of order
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, hour := range []int{3, 1, 4, 0, 2} {
		run := newTrainingRun(base.Add(time.Duration(hour) * time.Hour))
		run.DatasetPath = fmt.Sprintf("run-%d.csv", hour)
		req.NoError(repo.Store(run))
	}

	testCases := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "limited", limit: 2, want: []string{"run-4.csv", "run-3.csv"}},
		{name: "unlimited", limit: 0, want: []string{"run-4.csv", "run-3.csv", "run-2.csv", "run-1.csv", "run-0.csv"}},
		{name: "limit above size", limit: 50, want: []string{"run-4.csv", "run-3.csv", "run-2.csv", "run-1.csv", "run-0.csv"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := repo.List(tc.limit)
			require.NoError(t, err)
			paths := make([]string, 0, len(runs))
			for _, r := range runs {
				paths = append(paths, r.DatasetPath)
			}
			require.Equal(t, tc.want, paths)
		})
	}
}

func TestTrainingRunRepository_List_Empty(t *testing.T) {
	req := require.New(t)
	repo := NewTrainingRunRepository(openTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	runs, err := repo.List(10)

	req.NoError(err)
	req.Empty(runs)
}
