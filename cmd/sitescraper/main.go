// Package main wires together the scraper service binary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pubsub "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	"github.com/leadlens/sitescraper/internal/api"
	"github.com/leadlens/sitescraper/internal/clock/system"
	"github.com/leadlens/sitescraper/internal/config"
	collyfetcher "github.com/leadlens/sitescraper/internal/fetcher/colly"
	"github.com/leadlens/sitescraper/internal/hash/sha256"
	"github.com/leadlens/sitescraper/internal/id/uuid"
	"github.com/leadlens/sitescraper/internal/logging"
	"github.com/leadlens/sitescraper/internal/metrics"
	"github.com/leadlens/sitescraper/internal/pipeline"
	publishermemory "github.com/leadlens/sitescraper/internal/publisher/memory"
	publisherpubsub "github.com/leadlens/sitescraper/internal/publisher/pubsub"
	"github.com/leadlens/sitescraper/internal/scraper"
	"github.com/leadlens/sitescraper/internal/storage/gcs"
	storagememory "github.com/leadlens/sitescraper/internal/storage/memory"
	"github.com/leadlens/sitescraper/internal/storage/postgres"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}()
	zap.ReplaceGlobals(logger)
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := buildRecordStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("record store init failed", zap.Error(err))
	}
	defer closeStore()

	blobs, err := buildBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("blob store init failed", zap.Error(err))
	}

	publisher := buildPublisher(ctx, cfg, logger)

	fetcher := collyfetcher.New(collyfetcher.Config{
		UserAgent: cfg.Scraper.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	})

	pipe := pipeline.New(
		fetcher,
		store,
		blobs,
		publisher,
		sha256.New(),
		system.New(),
		pipeline.Config{
			BlobPrefix:  cfg.Storage.Prefix,
			ContentType: cfg.Storage.ContentType,
			Topic:       cfg.PubSub.TopicName,
		},
		logger.Named("pipeline"),
	)

	apiServer := api.NewServer(pipe, uuid.New(), cfg, logger.Named("api"))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("scraper service listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}

func buildRecordStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (scraper.RecordStore, func(), error) {
	if cfg.DB.DSN == "" {
		logger.Warn("db.dsn not set, using in-memory record store; scrapes will not survive restarts")
		return storagememory.NewScrapeStore(), func() {}, nil
	}
	store, err := postgres.NewScrapeStore(ctx, postgres.ScrapeStoreConfig{
		DSN:      cfg.DB.DSN,
		Table:    cfg.DB.Table,
		MaxConns: cfg.DB.MaxConns,
		MinConns: cfg.DB.MinConns,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("postgres record store ready", zap.String("table", cfg.DB.Table))
	return store, store.Close, nil
}

func buildBlobStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (scraper.BlobStore, error) {
	switch cfg.Storage.Provider {
	case "gcs":
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("create gcs client: %w", err)
		}
		blobs, err := gcs.New(client, gcs.Config{Bucket: cfg.Storage.GCSBucket})
		if err != nil {
			return nil, err
		}
		logger.Info("gcs blob store ready", zap.String("bucket", cfg.Storage.GCSBucket))
		return blobs, nil
	case "memory":
		return storagememory.NewBlobStore(), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
}

func buildPublisher(ctx context.Context, cfg config.Config, logger *zap.Logger) scraper.Publisher {
	if cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicName == "" {
		return publishermemory.New()
	}
	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		logger.Warn("pubsub client init failed, scrape events disabled", zap.Error(err))
		return nil
	}
	logger.Info("pubsub publisher ready", zap.String("topic", cfg.PubSub.TopicName))
	return publisherpubsub.New(client.Publisher(cfg.PubSub.TopicName))
}
