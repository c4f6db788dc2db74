//	@title			Wedding SPA API
//	@version		1.0
//	@description	Guest photo, video and RSVP endpoints for the wedding site.
//
//	@host		localhost:8080
//	@BasePath	/api

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/weddingspa/service/internal/api"
	"github.com/weddingspa/service/internal/config"
	appMiddleware "github.com/weddingspa/service/internal/middleware"
	"github.com/weddingspa/service/internal/photo"
	"github.com/weddingspa/service/internal/rsvp"
	"github.com/weddingspa/service/internal/storage"
	"github.com/weddingspa/service/internal/upstream"
	"github.com/weddingspa/service/internal/video/drive"
	"github.com/weddingspa/service/internal/video/stream"

	_ "github.com/weddingspa/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	// A missing bucket is not fatal: photo endpoints answer with a
	// configuration error until it is bound.
	var store storage.Storage
	if cfg.HasStorage() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		minioStore, err := storage.NewMinioStorage(
			ctx,
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StorageRegion,
			cfg.StorageUseSSL,
		)
		cancel()
		if err != nil {
			log.Fatalf("object storage init failed: %v", err)
		}
		store = minioStore
	} else {
		log.Println("STORAGE_ENDPOINT not set, photo endpoints disabled")
	}

	if !cfg.HasStream() {
		log.Println("STREAM_ACCOUNT_ID or STREAM_API_TOKEN not set, video hosting endpoints disabled")
	}

	httpClient := upstream.NewHTTPClient()

	// Wire dependencies: client → service → handler
	photoHandler := photo.NewHandler(photo.NewService(store))

	streamClient := stream.NewClient(cfg.StreamAPIBase, cfg.StreamAccountID, cfg.StreamAPIToken, httpClient)
	streamHandler := stream.NewHandler(streamClient)

	tokens := drive.NewTokenIssuer(cfg.DriveCredentials, cfg.DriveTokenURL, httpClient)
	driveClient := drive.NewClient(cfg.DriveAPIBase, httpClient)
	driveHandler := drive.NewHandler(drive.NewService(tokens, driveClient, cfg.DriveFolderID))

	mailer := rsvp.NewMailer(cfg.ResendAPIBase, cfg.ResendAPIKey, httpClient)
	rsvpHandler := rsvp.NewHandler(rsvp.NewService(mailer, cfg.RSVPFrom, cfg.RSVPTo))

	metrics := appMiddleware.MustNewMetrics(prometheus.DefaultRegisterer)

	router := api.NewRouter(api.Handlers{
		Photos: photoHandler,
		Stream: streamHandler,
		Drive:  driveHandler,
		RSVP:   rsvpHandler,
	}, metrics, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: 60 * time.Second,
		// Image proxying streams up to 10 MiB per response.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
