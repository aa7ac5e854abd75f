package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gateway-api/internal/backend"
	"gateway-api/internal/handlers/inference"
	"gateway-api/internal/routers"
	"gateway-api/internal/shared"
	"gateway-api/internal/tasks"

	"github.com/manifold-inc/manifold-sdk/lib/eflag"
	"go.uber.org/zap"
)

func main() {
	// Flags / ENV Variables
	listenAddr := flag.String("listen", ":80", "Listen address")
	debug := flag.Bool("debug", false, "Debug enabled")
	apiKeySecret := flag.String("api-key-secret", "", "Shared secret expected in x-api-key")
	metricsAPIKey := flag.String("metrics-api-key", "", "Metrics api key")
	modelsFile := flag.String("models-file", "", "Optional YAML file overriding model identifiers per task")

	workersAIBaseURL := flag.String("workers-ai-base-url", backend.DefaultWorkersAIBaseURL, "Workers AI REST base url")
	workersAIAccountID := flag.String("workers-ai-account-id", "", "Workers AI account id")
	workersAIAPIToken := flag.String("workers-ai-api-token", "", "Workers AI api token")

	err := eflag.SetFlagsFromEnvironment()
	if err != nil {
		panic(err)
	}
	flag.Parse()

	var logger *zap.Logger
	if !*debug {
		logger, err = zap.NewProduction()
		if err != nil {
			panic("Failed init logger")
		}
	}
	if *debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic("Failed init logger")
		}
	}
	log := logger.Sugar()
	defer func() {
		_ = log.Sync()
	}()

	models, err := tasks.LoadModelTable(*modelsFile)
	if err != nil {
		log.Fatalw("Failed loading model table", "error", err)
	}

	// Left nil when unconfigured so the gateway answers misconfigured_worker
	var be backend.Backend
	workersAIConfig := backend.WorkersAIConfig{
		BaseURL:   *workersAIBaseURL,
		AccountID: *workersAIAccountID,
		APIToken:  *workersAIAPIToken,
	}
	if workersAIConfig.Configured() {
		be = backend.NewWorkersAI(workersAIConfig, log)
	} else {
		log.Warn("Workers AI backend not configured, inference requests will fail")
	}
	if *apiKeySecret == "" {
		log.Warn("API key secret not configured, inference requests will fail")
	}

	ih := inference.NewInferenceHandler(be, *apiKeySecret, models, log)
	e := routers.NewRouter(ih, *metricsAPIKey, log)

	log.Infow("Model table loaded",
		"chat", models.Model(tasks.Chat),
		"reasoning", models.Model(tasks.Reasoning),
		"embedding", models.Model(tasks.Embedding),
	)

	go func() {
		log.Infow("Starting gateway", "addr", *listenAddr)
		if err := e.Start(*listenAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalw("shutting down the server", "error", err)
		}
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shared.DefaultShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorw("Graceful shutdown failed", "error", err)
	}
}
