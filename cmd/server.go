package cmd

import (
	"fmt"
	"gallery/internal/blob"
	"gallery/internal/config"
	"gallery/internal/core"
	"gallery/internal/db"
	"gallery/internal/http/handler"
	"gallery/internal/http/handler/middleware"
	"gallery/internal/http/payload"
	"gallery/internal/http/server"
	"gallery/internal/repository"
	"gallery/pkg/log"
	"gallery/pkg/token"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("gallery", zapcore.InfoLevel)

	config := config.NewApp()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewGalleryRepository(dbConn)

	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// blob store
	blobs, err := blob.NewDiskStore(config.UploadDir)
	if err != nil {
		logger.Errorw("failed to prepare upload directory", "error", err)
		return err
	}

	// session token service
	tokenService := token.NewService([]byte(config.SessionSecret))

	// gallery core
	gallery := core.NewGallery(
		logger,
		repo,
		tokenService,
		blobs)

	// handler
	galleryHlr := handler.NewGalleryHandler(
		logger,
		payload.DecodeValidator{},
		gallery,
		blobs)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Register, galleryHlr.HandleRegister)
	mux.HandleFunc(handler.Login, galleryHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, galleryHlr.HandleLogout)
	mux.HandleFunc(handler.Me, galleryHlr.HandleMe)
	mux.HandleFunc(handler.ListPhotos, galleryHlr.HandleListPhotos)
	mux.HandleFunc(handler.UploadPhoto, galleryHlr.HandleUploadPhoto)
	mux.HandleFunc(handler.DeletePhoto, galleryHlr.HandleDeletePhoto)
	mux.HandleFunc(handler.ServeUpload, galleryHlr.HandleServeUpload)
	mux.HandleFunc(handler.Health, galleryHlr.HandleHealth)

	// middleware
	hdlr := middleware.NewBodyLimitMiddleware(core.MaxUploadBytes).Limit(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
