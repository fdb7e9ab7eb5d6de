//go:generate go run go.uber.org/mock/mockgen -source=training_run.go -destination=../mocks/mock_training_run_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"sentiment-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const trainingPrefix = "training:"

// ITrainingRunRepository keeps the history of startup trainings.
// Only run metadata is stored, never the model itself.
type ITrainingRunRepository interface {
	Store(run domain.TrainingRun) error
	List(limit int) ([]domain.TrainingRun, error)
}

type TrainingRunRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTrainingRunRepository(db *badger.DB, log *slog.Logger) *TrainingRunRepository {
	return &TrainingRunRepository{db: db, log: log}
}

// Store persists a run under "training:{timestamp_padded}:{id}" so a reverse
// prefix scan returns the most recent runs first.
func (r TrainingRunRepository) Store(run domain.TrainingRun) error {
	key := fmt.Sprintf("%s%019d:%s", trainingPrefix, run.At.UnixNano(), run.ID)
	bytes, err := proto.Marshal(fromTrainingRun(run))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// List returns at most limit runs, newest first. A limit <= 0 returns every run.
func (r TrainingRunRepository) List(limit int) ([]domain.TrainingRun, error) {
	var values [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(trainingPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(values) == limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d training runs reached", limit))
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	runs := make([]domain.TrainingRun, 0, len(values))
	for _, v := range values {
		var s structpb.Struct
		if err := proto.Unmarshal(v, &s); err != nil {
			return nil, err
		}
		run, err := toTrainingRun(&s)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func fromTrainingRun(run domain.TrainingRun) *structpb.Struct {
	labels := lo.Map(run.Labels, func(l string, _ int) *structpb.Value {
		return structpb.NewStringValue(l)
	})
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":            structpb.NewStringValue(run.ID),
		"dataset_path":  structpb.NewStringValue(run.DatasetPath),
		"examples":      structpb.NewNumberValue(float64(run.Examples)),
		"vocabulary":    structpb.NewNumberValue(float64(run.Vocabulary)),
		"labels":        structpb.NewListValue(&structpb.ListValue{Values: labels}),
		"epochs":        structpb.NewNumberValue(float64(run.Epochs)),
		"final_loss":    structpb.NewNumberValue(run.FinalLoss),
		"accuracy":      structpb.NewNumberValue(run.Accuracy),
		"training_time": structpb.NewStringValue(run.TrainingTime.String()),
		"at":            structpb.NewStringValue(run.At.UTC().Format(time.RFC3339Nano)),
	}}
}

func toTrainingRun(s *structpb.Struct) (domain.TrainingRun, error) {
	f := s.GetFields()
	at, err := time.Parse(time.RFC3339Nano, f["at"].GetStringValue())
	if err != nil {
		return domain.TrainingRun{}, err
	}
	trainingTime, err := time.ParseDuration(f["training_time"].GetStringValue())
	if err != nil {
		return domain.TrainingRun{}, err
	}
	labels := lo.Map(f["labels"].GetListValue().GetValues(), func(v *structpb.Value, _ int) string {
		return v.GetStringValue()
	})
	return domain.TrainingRun{
		ID:           f["id"].GetStringValue(),
		DatasetPath:  f["dataset_path"].GetStringValue(),
		Examples:     int(f["examples"].GetNumberValue()),
		Vocabulary:   int(f["vocabulary"].GetNumberValue()),
		Labels:       labels,
		Epochs:       int(f["epochs"].GetNumberValue()),
		FinalLoss:    f["final_loss"].GetNumberValue(),
		Accuracy:     f["accuracy"].GetNumberValue(),
		TrainingTime: trainingTime,
		At:           at,
	}, nil
}
