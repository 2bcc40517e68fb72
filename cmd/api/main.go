package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/guptatavish/compliance-coordinator/internal/application/analysis"
	"github.com/guptatavish/compliance-coordinator/internal/config"
	domainai "github.com/guptatavish/compliance-coordinator/internal/domain/ai"
	"github.com/guptatavish/compliance-coordinator/internal/infra/ai/extract"
	"github.com/guptatavish/compliance-coordinator/internal/infra/ai/mistral"
	"github.com/guptatavish/compliance-coordinator/internal/infra/ai/perplexity"
	"github.com/guptatavish/compliance-coordinator/internal/infra/cache"
	"github.com/guptatavish/compliance-coordinator/internal/infra/httpserver"
	"github.com/guptatavish/compliance-coordinator/internal/infra/ingest"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if cfg.Server.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	// OCR and summarization are optional, gated on the Mistral key.
	var enhancer domainai.TextEnhancer = domainai.NoopEnhancer{}
	if cfg.Mistral.APIKey != "" {
		enhancer = mistral.New(cfg.Mistral.APIKey, mistral.WithModel(cfg.Mistral.Model))
	}

	// init service
	svc := &analysis.Service{
		Cache: cache.NewMemory(),
		NewChat: func(apiKey string) domainai.ChatClient {
			return perplexity.New(apiKey, perplexity.WithModel(cfg.Perplexity.Model))
		},
		Docs:        ingest.New(enhancer, log),
		Extractor:   extract.New(cfg.Policy),
		Policy:      cfg.Policy,
		Clock:       analysis.SystemClock{},
		Log:         log,
		AnalysisTTL: cfg.AnalysisTTL(),
		DocumentTTL: cfg.DocumentTTL(),
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: httpserver.NewRouter(svc, log),
		// Model calls retry through rate limits, so responses can take
		// minutes. Write timeout has to cover the whole exchange.
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
