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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Kaviya-Shalini/memolink/internal/handlers"
	"github.com/Kaviya-Shalini/memolink/internal/jwt"
	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
	"github.com/Kaviya-Shalini/memolink/internal/repositories"
	"github.com/Kaviya-Shalini/memolink/internal/services"

	_ "github.com/Kaviya-Shalini/memolink/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title memolink API
// @version 1.0.0
// @description Service for storing personal memory records, sharing them across linked family accounts and polling due reminders
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic, logLevel,
		jwtSecret, jwtExp, bcryptCost,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp, bcryptCost,
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
// all application, database, Redis, Kafka, logging and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int, bcryptCost int,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "memolink")
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; empty brokers disable event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_MEMORY_EVENTS_TOPIC", "memolink.memory-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Password hashing config; 0 falls back to the bcrypt default
	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "0")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond, bcryptCost int,
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
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for memory events, optional
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer initialized, topic %s", kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, event publishing disabled")
	}

	// Initialize JWT service
	jwtExp := time.Duration(jwtExpSecond) * time.Second
	tokener := jwt.New(jwtSecretKey, jwtExp)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	memoryReadRepo := repositories.NewMemoryReadRepository(db)
	memoryWriteRepo := repositories.NewMemoryWriteRepository(db, middlewares.GetTxFromContext)
	familyReadRepo := repositories.NewFamilyReadRepository(db)
	familyWriteRepo := repositories.NewFamilyWriteRepository(db)
	sessionRepo := repositories.NewSessionRepository(rdb, jwtExp)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener, sessionRepo, bcryptCost)
	memoryService := services.NewMemoryService(memoryWriteRepo, memoryReadRepo, familyReadRepo, kafkaWriter)
	familyService := services.NewFamilyService(userReadRepo, familyReadRepo, familyWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService)
	addMemoryHandler := handlers.NewAddMemoryHandler(memoryService)
	listMemoriesHandler := handlers.NewListMemoriesHandler(memoryService)
	deleteMemoryHandler := handlers.NewDeleteMemoryHandler(memoryService)
	clearMemoriesHandler := handlers.NewClearMemoriesHandler(memoryService)
	dueRemindersHandler := handlers.NewDueRemindersHandler(memoryService)
	familyLinkHandler := handlers.NewFamilyLinkHandler(familyService)
	familyLinksHandler := handlers.NewFamilyLinksHandler(familyService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener, sessionRepo))

			r.Post("/logout", logoutHandler)

			// The add route runs inside a transaction so the primary
			// insert and the family-share copies commit together.
			r.With(middlewares.TxMiddleware(db)).Post("/memories", addMemoryHandler)
			r.Get("/memories", listMemoriesHandler)
			r.Delete("/memories/{id}", deleteMemoryHandler)
			r.Delete("/memories", clearMemoriesHandler)
			r.Get("/reminders/due", dueRemindersHandler)

			r.Post("/family/links", familyLinkHandler)
			r.Get("/family/links", familyLinksHandler)
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
