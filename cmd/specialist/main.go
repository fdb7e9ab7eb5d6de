package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"sentiment-lab/grpc/server"
	"sentiment-lab/observability"
	pb "sentiment-lab/proto/sentiment"
	"sentiment-lab/repositories"
	"sentiment-lab/runtime"
	"sentiment-lab/runtime/workers"
	"sentiment-lab/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run trains the model, then serves it until SIGINT or SIGTERM.
// Returning errors instead of exiting lets deferred cleanups (BadgerDB) run.
func run() error {
	envFile := flag.String("env", ".env", "Optional dotenv file")
	flag.Parse()

	// 1. Configuration & Logger
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("dotenv error: %w", err)
	}
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Training history (optional)
	var runs repositories.ITrainingRunRepository
	if config.BadgerFilepath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		runs = repositories.NewTrainingRunRepository(db, log)
	}

	// 3. Train once, before accepting any traffic
	engine, _, err := runtime.NewModelLoader(log, config.TrainerOptions(), runs).Load(config.DatasetPath)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	monitoring, err := observability.NewMonitoringManager()
	if err != nil {
		return fmt.Errorf("monitoring error: %w", err)
	}
	service := services.NewSentimentService(log, engine, monitoring, config.MaxTextLength)
	specialist := server.NewSpecialistServer(config.ID, service, log)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervised gRPC server and heartbeat
	address := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewSpecialistWorker(log, workers.TCPListener(address), func(s grpc.ServiceRegistrar) {
			pb.RegisterSentimentServiceServer(s, specialist)
			healthpb.RegisterHealthServer(s, healthServer)
		}),
		workers.NewHeartbeatWorker(log, monitoring, config.HeartbeatInterval),
	)

	log.Info("Specialist starting", slog.String("id", config.ID), slog.String("address", address),
		slog.Any("labels", service.Labels()))
	sup.Run(ctx)

	healthServer.Shutdown()
	log.Info("Program stopped cleanly")
	return nil
}
