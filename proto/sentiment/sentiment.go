// Package sentiment describes the sentiment.v1.SentimentService gRPC API.
//
// Messages are google.protobuf.Struct values so the service runs on the default
// proto codec without generated stubs. PredictRequest and PredictResponse give
// them a typed shape on both ends.
package sentiment

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName       = "sentiment.v1.SentimentService"
	PredictFullMethod = "/" + ServiceName + "/Predict"
)

const (
	fieldMessageID     = "message_id"
	fieldText          = "text"
	fieldLabel         = "label"
	fieldScores        = "scores"
	fieldProbabilities = "probabilities"
	fieldLang          = "lang"
	fieldProcessTimeMs = "process_time_ms"
	fieldStatus        = "status"
)

type PredictRequest struct {
	MessageID string
	Text      string
}

func (r PredictRequest) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldMessageID: structpb.NewStringValue(r.MessageID),
		fieldText:      structpb.NewStringValue(r.Text),
	}}
}

func PredictRequestFromStruct(s *structpb.Struct) PredictRequest {
	return PredictRequest{
		MessageID: s.GetFields()[fieldMessageID].GetStringValue(),
		Text:      s.GetFields()[fieldText].GetStringValue(),
	}
}

type PredictResponse struct {
	MessageID     string
	Label         string
	Scores        map[string]float64
	Probabilities map[string]float64
	Lang          string
	ProcessTimeMs int64
	Status        string
}

func (r PredictResponse) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldMessageID:     structpb.NewStringValue(r.MessageID),
		fieldLabel:         structpb.NewStringValue(r.Label),
		fieldScores:        structpb.NewStructValue(numbers(r.Scores)),
		fieldProbabilities: structpb.NewStructValue(numbers(r.Probabilities)),
		fieldLang:          structpb.NewStringValue(r.Lang),
		fieldProcessTimeMs: structpb.NewNumberValue(float64(r.ProcessTimeMs)),
		fieldStatus:        structpb.NewStringValue(r.Status),
	}}
}

func PredictResponseFromStruct(s *structpb.Struct) PredictResponse {
	f := s.GetFields()
	return PredictResponse{
		MessageID:     f[fieldMessageID].GetStringValue(),
		Label:         f[fieldLabel].GetStringValue(),
		Scores:        fromNumbers(f[fieldScores].GetStructValue()),
		Probabilities: fromNumbers(f[fieldProbabilities].GetStructValue()),
		Lang:          f[fieldLang].GetStringValue(),
		ProcessTimeMs: int64(f[fieldProcessTimeMs].GetNumberValue()),
		Status:        f[fieldStatus].GetStringValue(),
	}
}

func numbers(m map[string]float64) *structpb.Struct {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(m))}
	for k, v := range m {
		out.Fields[k] = structpb.NewNumberValue(v)
	}
	return out
}

func fromNumbers(s *structpb.Struct) map[string]float64 {
	out := make(map[string]float64, len(s.GetFields()))
	for k, v := range s.GetFields() {
		out[k] = v.GetNumberValue()
	}
	return out
}

// SentimentServiceServer is the server API for SentimentService.
type SentimentServiceServer interface {
	Predict(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedSentimentServiceServer can be embedded to have forward compatible implementations.
type UnimplementedSentimentServiceServer struct{}

func (UnimplementedSentimentServiceServer) Predict(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Predict not implemented")
}

func RegisterSentimentServiceServer(s grpc.ServiceRegistrar, srv SentimentServiceServer) {
	s.RegisterService(&SentimentService_ServiceDesc, srv)
}

func _SentimentService_Predict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SentimentServiceServer).Predict(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PredictFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SentimentServiceServer).Predict(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// SentimentService_ServiceDesc is the grpc.ServiceDesc for SentimentService.
var SentimentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SentimentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Predict",
			Handler:    _SentimentService_Predict_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sentiment/v1/sentiment.proto",
}

// SentimentServiceClient is the client API for SentimentService.
type SentimentServiceClient interface {
	Predict(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type sentimentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSentimentServiceClient(cc grpc.ClientConnInterface) SentimentServiceClient {
	return &sentimentServiceClient{cc}
}

func (c *sentimentServiceClient) Predict(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PredictFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
