package client

import (
	"context"
	"fmt"
	"time"

	"sentiment-lab/domain"
	"sentiment-lab/errors"
	pb "sentiment-lab/proto/sentiment"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

type SpecialistClient struct {
	client pb.SentimentServiceClient
}

func NewSpecialistClient(conn grpc.ClientConnInterface) *SpecialistClient {
	return &SpecialistClient{client: pb.NewSentimentServiceClient(conn)}
}

// Predict sends text to the sentiment specialist and returns its verdict.
func (c *SpecialistClient) Predict(ctx context.Context, messageID, text string) (domain.Analysis, error) {
	out, err := c.client.Predict(ctx, pb.PredictRequest{MessageID: messageID, Text: text}.ToStruct())
	if err != nil {
		return domain.Analysis{}, err
	}
	response := pb.PredictResponseFromStruct(out)
	return domain.Analysis{
		MessageID: response.MessageID,
		Result: domain.PredictionResult{
			PredictedLabel: response.Label,
			Scores:         response.Scores,
			Probabilities:  response.Probabilities,
		},
		Lang:           response.Lang,
		ProcessingTime: time.Duration(response.ProcessTimeMs) * time.Millisecond,
	}, nil
}

// Dial opens a client connection and waits until it is READY, so the first
// request doesn't hit a specialist still training its model.
func Dial(ctx context.Context, address string, timeout time.Duration, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  100 * time.Millisecond,
				Multiplier: 1.6,
				Jitter:     0.2,
				MaxDelay:   3 * time.Second,
			},
		}),
	}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return conn, nil
		}
		if !conn.WaitForStateChange(dialCtx, state) {
			_ = conn.Close()
			return nil, fmt.Errorf("%w on %s", errors.ErrSpecialistUnavailable, address)
		}
	}
}
