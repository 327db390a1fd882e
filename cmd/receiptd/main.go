package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/snapreceipt/receiptd/gen/proto/receipts/v1"
	"github.com/snapreceipt/receiptd/internal/async"
	"github.com/snapreceipt/receiptd/internal/common"
	"github.com/snapreceipt/receiptd/internal/export"
	"github.com/snapreceipt/receiptd/internal/extract"
	"github.com/snapreceipt/receiptd/internal/pipeline"
	repo "github.com/snapreceipt/receiptd/internal/repository"
	svc "github.com/snapreceipt/receiptd/internal/server"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/snapreceipt/receiptd/gen/ent"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if cfg.Database.DSN != "" {
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	} else {
		entc, err = repo.OpenSQLite(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Error("failed to open sqlite database", "error", err)
			os.Exit(1)
		}
		// SQLite deployments have no migration tooling around them.
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("failed to create sqlite schema", "error", err)
			os.Exit(1)
		}
	}
	defer repo.Close(entc, pool, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	receiptsRepo := repo.NewReceiptRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	extractor := extract.NewHeuristicAdapter(logger)
	parseStage := pipeline.NewParseStage(logger, jobsRepo, receiptsRepo, extractor)
	processor := pipeline.NewProcessor(logger, parseStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	extractionService := svc.NewExtractionService(extractor, jobsRepo, queue, logger)
	v1.RegisterExtractionServiceServer(grpcServer, extractionService)
	receiptsService := svc.NewReceiptService(receiptsRepo, logger)
	v1.RegisterReceiptsServiceServer(grpcServer, receiptsService)
	exportService := svc.NewExportServer(export.NewService(receiptsRepo, logger), logger)
	v1.RegisterExportServiceServer(grpcServer, exportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("receiptd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
