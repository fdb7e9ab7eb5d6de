package server

import (
	"context"
	stderrors "errors"
	"log/slog"

	"sentiment-lab/errors"
	pb "sentiment-lab/proto/sentiment"
	"sentiment-lab/services"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const statusOK = "OK"

type SpecialistServer struct {
	pb.UnimplementedSentimentServiceServer
	Id      string
	service services.ISentimentService
	log     *slog.Logger
}

func NewSpecialistServer(id string, service services.ISentimentService, log *slog.Logger) *SpecialistServer {
	return &SpecialistServer{Id: id, service: service, log: log}
}

// Predict classifies the text of the request.
// Blank or oversized texts are answered with codes.InvalidArgument.
func (s *SpecialistServer) Predict(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	request := pb.PredictRequestFromStruct(req)

	analysis, err := s.service.Analyze(ctx, request.MessageID, request.Text)
	if err != nil {
		return nil, toStatus(err)
	}

	return pb.PredictResponse{
		MessageID:     analysis.MessageID,
		Label:         analysis.Result.PredictedLabel,
		Scores:        analysis.Result.Scores,
		Probabilities: analysis.Result.Probabilities,
		Lang:          analysis.Lang,
		ProcessTimeMs: analysis.ProcessingTime.Milliseconds(),
		Status:        statusOK,
	}.ToStruct(), nil
}

func toStatus(err error) error {
	switch {
	case stderrors.Is(err, errors.ErrInvalidInput), stderrors.Is(err, errors.ErrTextTooLong):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, errors.ErrNotReady):
		return status.Error(codes.Unavailable, err.Error())
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
