//go:generate go run go.uber.org/mock/mockgen -source=sentiment_service.go -destination=../mocks/mock_sentiment_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"sentiment-lab/ai"
	"sentiment-lab/domain"
	"sentiment-lab/errors"
	"sentiment-lab/observability"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

type ISentimentService interface {
	Analyze(ctx context.Context, messageID, text string) (domain.Analysis, error)
	Labels() []string
}

// SentimentService is the entry point used by transports to classify a text.
type SentimentService struct {
	log           *slog.Logger
	engine        *ai.Engine
	monitoring    *observability.MonitoringManager
	maxTextLength int
}

// NewSentimentService wraps a ready engine. monitoring may be nil and a
// maxTextLength <= 0 disables the length guard.
func NewSentimentService(log *slog.Logger, engine *ai.Engine,
	monitoring *observability.MonitoringManager, maxTextLength int) *SentimentService {
	return &SentimentService{
		log:           log,
		engine:        engine,
		monitoring:    monitoring,
		maxTextLength: maxTextLength,
	}
}

func (s *SentimentService) Labels() []string {
	return s.engine.Labels()
}

// Analyze predicts the sentiment of text and tags the result with the detected language.
// An empty messageID is replaced by a fresh UUID.
func (s *SentimentService) Analyze(ctx context.Context, messageID, text string) (domain.Analysis, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Analysis{}, err
	}
	if messageID == "" {
		messageID = uuid.NewString()
	}
	if s.maxTextLength > 0 && utf8.RuneCountInString(text) > s.maxTextLength {
		s.record(errors.ErrTextTooLong)
		return domain.Analysis{}, fmt.Errorf("%w: %d characters, maximum is %d",
			errors.ErrTextTooLong, utf8.RuneCountInString(text), s.maxTextLength)
	}

	result, err := s.engine.Predict(text)
	s.record(err)
	if err != nil {
		s.log.Debug("Prediction refused", "message_id", messageID, "error", err)
		return domain.Analysis{}, err
	}

	lang := whatlanggo.Detect(text).Lang.Iso6391()
	elapsed := time.Since(start)
	s.log.Debug("Sentiment predicted",
		"message_id", messageID,
		"label", result.PredictedLabel,
		"score", result.Score(),
		"lang", lang,
		"latency_us", elapsed.Microseconds())

	return domain.Analysis{
		MessageID:      messageID,
		Result:         result,
		Lang:           lang,
		ProcessingTime: elapsed,
	}, nil
}

func (s *SentimentService) record(err error) {
	if s.monitoring == nil {
		return
	}
	switch {
	case err == nil:
		s.monitoring.IncrPredictions()
	case stderrors.Is(err, errors.ErrInvalidInput), stderrors.Is(err, errors.ErrTextTooLong):
		s.monitoring.IncrRejected()
	default:
		s.monitoring.IncrFailed()
	}
}
