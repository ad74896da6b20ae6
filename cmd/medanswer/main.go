package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/medanswer/internal/config"
	"github.com/kailas-cloud/medanswer/internal/db"
	dbRedis "github.com/kailas-cloud/medanswer/internal/db/redis"
	"github.com/kailas-cloud/medanswer/internal/domain/tree"
	logpkg "github.com/kailas-cloud/medanswer/internal/logger"
	"github.com/kailas-cloud/medanswer/internal/metrics"
	treerepo "github.com/kailas-cloud/medanswer/internal/repository/tree"
	"github.com/kailas-cloud/medanswer/internal/text"
	chiTransport "github.com/kailas-cloud/medanswer/internal/transport/chi"
	answeruc "github.com/kailas-cloud/medanswer/internal/usecase/answer"
	healthuc "github.com/kailas-cloud/medanswer/internal/usecase/health"
	"github.com/kailas-cloud/medanswer/internal/usecase/match"
	"github.com/kailas-cloud/medanswer/internal/usecase/preprocess"
	"github.com/kailas-cloud/medanswer/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting medanswer API server",
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("tree_source", cfg.Data.Source),
		zap.String("stemmer", cfg.Text.Stemmer),
	)

	stopwords, err := text.LoadStopwordsFile(cfg.Data.StopwordsPath)
	if err != nil {
		logger.Fatal("Failed to load stopwords", zap.Error(err))
	}
	stemmer, err := text.NewStemmer(cfg.Text.Stemmer)
	if err != nil {
		logger.Fatal("Failed to create stemmer", zap.Error(err))
	}
	logger.Info("Loaded stopwords", zap.Int("count", stopwords.Len()))

	// Load the document tree; a store-backed source keeps the store for health checks.
	ctx := context.Background()
	var (
		root  tree.Branch
		store db.Store
	)
	if cfg.UsesStore() {
		store, root = loadFromStore(ctx, cfg, logger)
		defer store.Close()
	} else {
		root, err = treerepo.LoadFile(cfg.Data.TreePath)
		if err != nil {
			logger.Fatal("Failed to load document tree", zap.String("path", cfg.Data.TreePath), zap.Error(err))
		}
	}

	stats := tree.Describe(root)
	logger.Info("Loaded document tree",
		zap.Int("conditions", stats.Conditions),
		zap.Int("aspects", stats.Aspects),
		zap.Int("payloads", stats.Payloads),
	)

	// Register answer metrics explicitly (no init())
	metrics.RegisterAnswerMetrics()
	metrics.SetTreeStats(stats)

	pre := preprocess.New(text.NewTokenizer(), stemmer, stopwords)
	answerSvc := answeruc.New(root, pre, match.New(pre)).WithRecorder(metrics.AnswerRecorder{})

	// Pass nil interface (not typed nil) when the tree comes from a file.
	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}
	healthSvc := healthuc.New(answerSvc, pinger)

	server := chiTransport.NewServer(answerSvc, healthSvc, logger)
	router := chiTransport.NewRouter(server, logger, cfg.Auth.APIKeys)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// loadFromStore connects to redis/valkey, waits for readiness and reads the tree.
func loadFromStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (db.Store, tree.Branch) {
	logger.Info("Connecting to database",
		zap.String("driver", cfg.Data.Source),
		zap.Strings("addrs", cfg.Database.Addrs),
	)

	// Valkey speaks the same protocol; one rueidis-backed store serves both.
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	repo := treerepo.New(store, cfg.Storage.KeyPrefix).WithFormat(treerepo.Format(cfg.Storage.Format))
	root, err := repo.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load document tree", zap.String("key", repo.Key()), zap.Error(err))
	}
	return store, root
}
