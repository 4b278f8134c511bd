package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-social-network/internal/events"
	"github.com/sbilibin2017/gw-social-network/internal/handlers"
	"github.com/sbilibin2017/gw-social-network/internal/jwt"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
	"github.com/sbilibin2017/gw-social-network/internal/repositories"
	"github.com/sbilibin2017/gw-social-network/internal/services"
	"github.com/sbilibin2017/gw-social-network/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-social-network API
// @version 1.0.0
// @description Microservice for tweets, profiles, interactions and search
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, minioUseSSL,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp, requestTimeout,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, minioUseSSL,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp, requestTimeout,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, object storage, Kafka, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	minioEndpoint, minioAccessKey, minioSecretKey, minioBucket string, minioUseSSL bool,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond, requestTimeoutSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	if requestTimeoutSecond, err = strconv.Atoi(getEnv("APP_REQUEST_TIMEOUT_SECOND", "15")); err != nil {
		return
	}

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// MinIO config
	minioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	minioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	minioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	minioBucket = getEnv("MINIO_BUCKET", "tweet-images")
	minioUseSSL = getEnv("MINIO_USE_SSL", "false") == "true"

	// Kafka config; an empty broker disables event publishing
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "social-network-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, object storage, event
// publisher, and HTTP server. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	minioEndpoint, minioAccessKey, minioSecretKey, minioBucket string, minioUseSSL bool,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond, requestTimeoutSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := repositories.ApplySchema(ctx, db); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Connect to object storage
	imageStorage, err := storage.New(ctx, minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, minioUseSSL)
	if err != nil {
		return fmt.Errorf("object storage connection error: %w", err)
	}

	// Event publisher, disabled when no broker is configured
	var publisher *events.Publisher
	if kafkaBroker != "" {
		publisher = events.NewPublisher(kafkaBroker, kafkaTopic)
		defer publisher.Close()
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, middlewares.GetTxFromContext)
	tweetReadRepo := repositories.NewTweetReadRepository(db, middlewares.GetTxFromContext)
	tweetWriteRepo := repositories.NewTweetWriteRepository(db, middlewares.GetTxFromContext)
	interactionRepo := repositories.NewInteractionWriteRepository(db, middlewares.GetTxFromContext)
	userSearchRepo := repositories.NewUserSearchRepository(db)
	revocationRepo := repositories.NewTokenRevocationRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, profileWriteRepo, jwtSvc, revocationRepo)
	userService := services.NewUserService(userReadRepo, userWriteRepo, profileReadRepo, profileWriteRepo, imageStorage)
	tweetService := services.NewTweetService(tweetReadRepo, tweetWriteRepo, imageStorage, publisher)
	interactionService := services.NewInteractionService(tweetReadRepo, interactionRepo, publisher)
	searchService := services.NewSearchService(userSearchRepo, tweetService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.TimeoutMiddleware(time.Duration(requestTimeoutSecond) * time.Second))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc, revocationRepo)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.With(txMiddleware).Post("/users/register", handlers.NewRegisterHandler(authService))
		r.Post("/users/login", handlers.NewLoginHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/users/logout", handlers.NewLogoutHandler(authService))
			r.Get("/users/userinfo", handlers.NewUserInfoHandler(userService))
			r.Get("/users/profile", handlers.NewGetProfileHandler(userService))
			r.With(txMiddleware).Post("/users/profile", handlers.NewPostProfileHandler(userService))
			r.With(txMiddleware).Put("/users/change-password", handlers.NewChangePasswordHandler(userService))
			r.With(txMiddleware).Put("/users/change-email", handlers.NewChangeEmailHandler(userService))
			r.With(txMiddleware).Put("/users/change-username", handlers.NewChangeUsernameHandler(userService))
			r.With(txMiddleware).Delete("/users/account", handlers.NewDeleteAccountHandler(userService))

			r.With(txMiddleware).Post("/tweets/tweet", handlers.NewPostTweetHandler(tweetService))
			r.Get("/tweets/tweet/{id}", handlers.NewGetTweetHandler(tweetService))
			r.With(txMiddleware).Put("/tweets/tweet/{id}", handlers.NewPutTweetHandler(tweetService))
			r.With(txMiddleware).Delete("/tweets/tweet/{id}", handlers.NewDeleteTweetHandler(tweetService))
			r.Get("/tweets/tweets", handlers.NewGetFeedHandler(tweetService))
			r.Get("/tweets/tweets/user/{userId}", handlers.NewGetUserTweetsHandler(tweetService))
			r.Get("/tweets/tweets/replies/{parentTweetId}", handlers.NewGetRepliesHandler(tweetService))

			r.With(txMiddleware).Post("/interactions/like", handlers.NewToggleLikeHandler(interactionService))
			r.With(txMiddleware).Post("/interactions/retweet", handlers.NewToggleRetweetHandler(interactionService))

			r.Get("/search/users", handlers.NewSearchUsersHandler(searchService))
			r.Get("/search/tweets", handlers.NewSearchTweetsHandler(searchService))
			r.Get("/search/all", handlers.NewSearchAllHandler(searchService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
