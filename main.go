package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyup/ai-gateway/config"
	"studyup/ai-gateway/handlers"
	"studyup/ai-gateway/llm"
	"studyup/ai-gateway/routes"
	"studyup/ai-gateway/supabase"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		config.Logger.Fatal("Invalid configuration: ", err)
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := supabase.NewProvider(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		config.Logger.Fatal("Failed to initialize Supabase: ", err)
	}

	generator, err := llm.NewGenerator(ctx, cfg)
	if err != nil {
		config.Logger.Fatal("Failed to initialize Gemini client: ", err)
	}

	images := llm.NewImageFetcher(llm.ImageFetcherConfig{
		Timeout:     cfg.ImageFetchTimeout,
		Concurrency: cfg.ImageFetchConcurrency,
		MaxBytes:    cfg.MaxImageBytes,
	})

	h := handlers.NewHandler(generator, images, func(r *http.Request) (handlers.Store, string, error) {
		store, userID, err := provider.ForRequest(r)
		if err != nil {
			return nil, "", err
		}
		return store, userID, nil
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		config.Logger.Infof("Server is running on port %s (model %s, transport %s)", cfg.Port, generator.Model(), cfg.GeminiTransport)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatal("Server failed: ", err)
		}
	}()

	<-ctx.Done()
	stop()
	config.Logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Error("Server forced to shutdown: ", err)
	}
}
