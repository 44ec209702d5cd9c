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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/brainbin-app/brainbin-api/internal/auth"
	"github.com/brainbin-app/brainbin-api/internal/config"
	"github.com/brainbin-app/brainbin-api/internal/handler"
	"github.com/brainbin-app/brainbin-api/internal/mailer"
	"github.com/brainbin-app/brainbin-api/internal/repository"
	"github.com/brainbin-app/brainbin-api/internal/router"
	"github.com/brainbin-app/brainbin-api/internal/usecase"
	"github.com/brainbin-app/brainbin-api/internal/validation"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.NewConfig(&logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping MongoDB")
	}

	db := mongoClient.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	noteRepo := repository.NewNoteMongoRepository(ctx, &logger, db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer)
	mail := mailer.NewMailer(&logger)

	validator, err := validation.NewValidator()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create validator")
	}

	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth, mail, &logger, cfg)
	noteUsecase := usecase.NewNoteUsecase(noteRepo)

	authHandler := handler.NewAuthHandler(authUsecase, validator, &logger, cfg)
	userHandler := handler.NewUserHandler(authUsecase, &logger)
	noteHandler := handler.NewNoteHandler(noteUsecase, validator, &logger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router.New(cfg, jwtAuth, authHandler, userHandler, noteHandler),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Port).Msg("starting Brainbin API")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("Brainbin API stopped")
}
