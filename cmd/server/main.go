package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"interviewsim/internal/config"
	"interviewsim/internal/eval"
	"interviewsim/internal/handlers"
	"interviewsim/internal/joboffer"
	"interviewsim/internal/jobs"
	"interviewsim/internal/llm"
	_ "interviewsim/internal/llm/gemini"
	"interviewsim/internal/metrics"
	"interviewsim/internal/prompts"
	"interviewsim/internal/relay"
	"interviewsim/internal/routers"
	"interviewsim/internal/sandbox"
	"interviewsim/internal/store"
	"interviewsim/internal/tts"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("db_driver", cfg.DBDriver))

	builder, err := prompts.NewBuilder()
	if err != nil {
		logger.Fatal("Failed to load prompt templates", zap.Error(err))
	}

	provider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	db, err := store.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	st := store.New(db)

	rly := relay.New(st, logger)
	synthesizer := eval.NewSynthesizer(provider, builder, st, logger)
	analyzer := joboffer.NewAnalyzer(provider, builder, logger)
	sandboxClient := sandbox.NewClient(cfg.PistonURL, nil)
	ttsClient := tts.NewClient(cfg.TTSEndpoint)

	interviewHandler := handlers.NewInterviewHandler(st, logger)
	chatHandler := handlers.NewChatHandler(provider, builder, rly, st, logger)
	evaluateHandler := handlers.NewEvaluateHandler(synthesizer, logger)
	executeHandler := handlers.NewExecuteHandler(sandboxClient, st, logger)
	jobOfferHandler := handlers.NewJobOfferHandler(analyzer, logger)
	ttsHandler := handlers.NewTTSHandler(ttsClient, logger)
	interviewersHandler := handlers.NewInterviewersHandler()
	healthHandler := handlers.NewHealthHandler(provider, builder, st)

	cleanupJob := jobs.NewCleanupJob(st, &jobs.CleanupConfig{
		Schedule:  cfg.CleanupSchedule,
		Retention: cfg.CleanupRetention,
		Enabled:   cfg.CleanupEnabled,
	}, logger)
	if err := cleanupJob.Start(); err != nil {
		logger.Error("Failed to start session cleanup job", zap.Error(err))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// No global timeout middleware: chat responses stream for the whole
	// duration of a model turn.
	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer)
	router.Use(metrics.Middleware)

	routers.HealthRoutes(router, healthHandler)
	routers.InterviewRoutes(router, interviewHandler)
	routers.ChatRoutes(router, chatHandler)
	routers.EvaluateRoutes(router, evaluateHandler)
	routers.ExecuteRoutes(router, executeHandler)
	routers.JobOfferRoutes(router, jobOfferHandler)
	routers.TTSRoutes(router, ttsHandler)
	routers.InterviewerRoutes(router, interviewersHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port

	// WriteTimeout stays unset so server-sent event streams are not cut
	// off mid-turn.
	server := &http.Server{
		Addr:        serverAddr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	cleanupJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
