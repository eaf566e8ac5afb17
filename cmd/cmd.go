package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photoshare-backend/internal/config"
	"photoshare-backend/internal/handlers"
	"photoshare-backend/internal/services"
	"photoshare-backend/internal/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Build the DynamoDB client
	optFns := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.AWS.AccessKey != "" {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKey, cfg.AWS.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), optFns...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}
	db := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})
	log.Info().
		Str("users_table", cfg.Tables.Users).
		Str("photos_table", cfg.Tables.Photos).
		Msg("DynamoDB client initialised")

	// Initialize stores
	userStore := store.NewUserStore(db, cfg.Tables.Users)
	photoStore := store.NewPhotoStore(db, cfg.Tables.Photos)

	// Push notifications are optional
	var pusher *services.Pusher
	if cfg.APNS.CertPath != "" {
		pusher, err = services.NewPusher(cfg.APNS.CertPath, cfg.APNS.CertPassword, cfg.APNS.Topic, cfg.APNS.Production)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create pusher")
		}
		log.Info().Str("topic", cfg.APNS.Topic).Msg("Push notifications enabled")
	} else {
		log.Info().Msg("Push notifications disabled")
	}

	// Initialize services
	locks := services.NewKeyLocks()
	accountService := services.NewAccountService(userStore, locks)
	followService := services.NewFollowService(userStore, locks, pusher)
	likeService := services.NewLikeService(userStore, photoStore, locks, pusher)
	activityService := services.NewActivityService(userStore, photoStore)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	followHandler := handlers.NewFollowHandler(followService)
	likeHandler := handlers.NewLikeHandler(likeService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users", accountHandler.ListUsers)
		r.Post("/users", accountHandler.CreateUser)
		r.Post("/users/signin", accountHandler.SignIn)
		r.Get("/users/{user_id}", accountHandler.GetUser)
		r.Delete("/users/{user_id}", accountHandler.DeleteUser)
		r.Post("/users/{user_id}/follow", followHandler.Follow)
		r.Post("/users/{user_id}/unfollow", followHandler.Unfollow)
		r.Post("/users/{user_id}/like", likeHandler.Like)
		r.Post("/users/{user_id}/unlike", likeHandler.Unlike)
		r.Get("/users/{user_id}/activity", activityHandler.GetActivity)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
