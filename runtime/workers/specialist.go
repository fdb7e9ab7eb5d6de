package workers

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
)

// Listener opens the network listener of the specialist. It is called on every (re)start.
type Listener func() (net.Listener, error)

// SpecialistWorker serves the gRPC API until its context is canceled.
// A fresh grpc.Server is built on every run since a stopped server can't serve again.
type SpecialistWorker struct {
	log      *slog.Logger
	listen   Listener
	register func(grpc.ServiceRegistrar)
}

func NewSpecialistWorker(log *slog.Logger, listen Listener, register func(grpc.ServiceRegistrar)) *SpecialistWorker {
	return &SpecialistWorker{log: log, listen: listen, register: register}
}

// TCPListener listens on address.
func TCPListener(address string) Listener {
	return func() (net.Listener, error) {
		return net.Listen("tcp", address)
	}
}

func (w *SpecialistWorker) Run(ctx context.Context) error {
	lis, err := w.listen()
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	s := grpc.NewServer()
	w.register(s)

	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Starting gRPC server", "address", lis.Addr().String(), "at", time.Now().UTC())
		if err := s.Serve(lis); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
			return
		}
		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		w.log.Info("Shutting down gRPC server gracefully...")
		s.GracefulStop()
		<-errChan
		return ctx.Err()
	case err := <-errChan:
		s.Stop()
		if err == nil {
			err = grpc.ErrServerStopped
		}
		return err
	}
}
