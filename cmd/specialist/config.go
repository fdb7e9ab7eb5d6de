package main

import (
	"time"

	"sentiment-lab/ai"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	ID                string        `env:"SPECIALIST_ID,default=sentiment-01" validate:"required"`
	DatasetPath       string        `env:"DATASET_PATH,required=true" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=50051" validate:"gt=0,lte=65535"`
	MaxEpochs         int           `env:"MAX_EPOCHS,default=100" validate:"gt=0"`
	LearningRate      float64       `env:"LEARNING_RATE,default=0.1" validate:"gt=0"`
	L2Regularization  float64       `env:"L2_REGULARIZATION,default=0.0001" validate:"gte=0"`
	Tolerance         float64       `env:"TOLERANCE,default=0.000001" validate:"gt=0"`
	MaxTextLength     int           `env:"MAX_TEXT_LENGTH,default=5000" validate:"gte=0"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s" validate:"gt=0"`
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) TrainerOptions() ai.TrainerOptions {
	return ai.TrainerOptions{
		MaxEpochs:    c.MaxEpochs,
		LearningRate: c.LearningRate,
		L2:           c.L2Regularization,
		Tolerance:    c.Tolerance,
	}
}
