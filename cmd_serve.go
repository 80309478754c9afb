package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"intown_server/controllers"
	"intown_server/routes"
	"intown_server/services"
	"intown_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API and swipe event socket",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	// Socket.IO for live swipe events
	socketServer := socket.NewSocketServer(logger)
	go func() {
		if err := socketServer.Serve(); err != nil {
			logger.Error("Socket server stopped", zap.Error(err))
		}
	}()
	defer func() { _ = socketServer.Close() }()

	contactService := newContactService(st, &socket.Broadcaster{Server: socketServer})

	var signer controllers.PhotoSigner
	if cfg.S3BucketName != "" {
		photos, err := services.NewPhotoService(ctx, cfg.AWSRegion, cfg.S3BucketName)
		if err != nil {
			return err
		}
		signer = photos
		logger.Info("Photo uploads enabled", zap.String("bucket", cfg.S3BucketName))
	}

	r := mux.NewRouter()
	r.PathPrefix("/socket.io/").Handler(socketServer)
	routes.RegisterS3Routes(r, signer, contactService, logger)
	routes.RegisterContactRoutes(r, contactService, logger)
	routes.RegisterRoutes(r, cfg.PrivacyContact)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("backend", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
		return err
	}
	logger.Info("Server stopped")
	return nil
}
