package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"gameuigo/internal/api"
	"gameuigo/internal/config"
	"gameuigo/internal/service/ai"
	"gameuigo/internal/service/narrator"
)

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	textModel, jsonModel, err := ai.NewChatModels(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init chat models")
	}
	if textModel == nil {
		log.Info().Str("provider", cfg.Provider).Msg("no provider credential set, serving canned fallbacks")
	} else {
		log.Info().Str("provider", cfg.Provider).Str("model", cfg.Model).Msg("provider client ready")
	}

	svc := narrator.NewService(textModel, jsonModel, log)
	handler := api.NewHandler(svc, cfg.StaticDir)

	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(log))

	// The prototype page may be opened from a local file or any host.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"*"}
	router.Use(cors.New(corsCfg))

	handler.RegisterRoutes(router)

	srv := &http.Server{Addr: cfg.Addr, Handler: router}
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server exited")
}
