package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cardapio/api"
	"cardapio/cmd"
	httpadapter "cardapio/internal/adapters/in/http"
	"cardapio/internal/adapters/out/postgres"
	"cardapio/internal/core/application/notify"
	"cardapio/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	startWebServer(&app, jobManager, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                envOrDefault("HTTP_PORT", "8080"),
		DBHost:                  envOrDefault("DB_HOST", "localhost"),
		DBPort:                  envOrDefault("DB_PORT", "5432"),
		DBUser:                  envOrDefault("DB_USER", "postgres"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  envOrDefault("DB_NAME", "cardapio"),
		DBSslMode:               envOrDefault("DB_SSLMODE", "disable"),
		KafkaHost:               os.Getenv("KAFKA_HOST"),
		KafkaOrderEventsTopic:   envOrDefault("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),
		StreamBufferSize:        notify.DefaultBufferSize,
		StreamKeepaliveSchedule: envOrDefault("STREAM_KEEPALIVE_SCHEDULE", jobs.DefaultKeepaliveSchedule),
		LogLevel:                envOrDefault("LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("STREAM_BUFFER_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			log.Fatalf("STREAM_BUFFER_SIZE must be a positive integer, got %q", raw)
		}
		config.StreamBufferSize = size
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func startWebServer(app *cmd.CompositionRoot, jobManager *jobs.JobManager, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "Request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	}))

	doc, err := api.GetSwagger()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}
	validator, err := httpadapter.OpenAPIValidator(doc)
	if err != nil {
		log.Fatalf("Failed to build request validator: %v", err)
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	httpadapter.RegisterHandlers(e, app.CreateServer())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	jobManager.StopAll()
	// Streams never end on their own; close them so Shutdown can drain.
	app.Registry().CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	if err = app.Close(); err != nil {
		logger.Error("Kafka publisher close failed", "error", err)
	}
}
