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

	"golang.org/x/sync/errgroup"

	"saved-hub/domain/repository"
	redditclient "saved-hub/infrastructure/clients/reddit"
	youtubeclient "saved-hub/infrastructure/clients/youtube"
	"saved-hub/infrastructure/configuration"
	"saved-hub/infrastructure/logger"
	"saved-hub/infrastructure/session"
	httpHandler "saved-hub/interfaces/http"
	"saved-hub/interfaces/middleware"
	"saved-hub/server"
	"saved-hub/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")
	app := configuration.C.App

	store := initiateSessionStore(ctx)
	codec := session.NewCookieCodec(app.SecretKey, time.Duration(configuration.C.Session.TTLSeconds)*time.Second)
	sessionMiddleware := middleware.Session(store, codec, configuration.C.Session.SyncIntervalSeconds)

	// Provider adapters; either may be absent when not configured.
	var youtubeAuth, redditAuth repository.IProviderAuth

	youtubeConfig, err := configuration.GetYouTubeConfig()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("YouTube not configured - its login routes will be disabled")
	} else {
		youtubeAuth = youtubeclient.NewAuth(youtubeConfig)
	}
	redditConfig, err := configuration.GetRedditConfig()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Reddit not configured - its login routes will be disabled")
	} else {
		redditAuth = redditclient.NewAuth(redditConfig)
	}

	contentUsecase := usecase.NewContentUsecase(youtubeAuth, redditAuth)
	contentHandler := httpHandler.NewContentHandler(contentUsecase)

	var youtubeAuthHandler httpHandler.IYouTubeAuthHandler
	if youtubeAuth != nil {
		youtubeAuthHandler = httpHandler.NewYouTubeAuthHandler(youtubeAuth, contentUsecase)
	}
	var redditAuthHandler httpHandler.IRedditAuthHandler
	if redditAuth != nil {
		redditAuthHandler = httpHandler.NewRedditAuthHandler(redditAuth, contentUsecase)
	}

	router := server.InitiateRouter(contentHandler, youtubeAuthHandler, redditAuthHandler, sessionMiddleware)

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if app.TLSEnabled && app.TLSCertFile != "" && app.TLSKeyFile != "" {
			if err := httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateSessionStore prefers Redis when configured and falls back to the
// in-memory store.
func initiateSessionStore(ctx context.Context) repository.ISessionStore {
	cfg := configuration.C.Session
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if cfg.Redis.Host != "" {
		store, err := session.NewRedisStore(ctx, cfg.Redis, ttl)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Redis not available - using in-memory session store")
		} else {
			logger.GetLogger().Info("Using Redis session store")
			return store
		}
	}
	return session.NewMemoryStore(ttl)
}
