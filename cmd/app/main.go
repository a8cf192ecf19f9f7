package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickcart/cmd"
	"quickcart/internal/adapters/in/console"
	"quickcart/internal/adapters/out/eventlog"
	"quickcart/internal/adapters/out/jsonfile"
	"quickcart/internal/adapters/out/kafka"
	"quickcart/internal/adapters/out/postgres"
	"quickcart/internal/adapters/out/postgres/snapshotrepo"
	"quickcart/internal/core/ports"
	"quickcart/internal/jobs"
	"quickcart/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	// .env is optional; the environment wins.
	_ = godotenv.Load(".env")

	configs, err := getConfigs()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}

	logger := logging.New(configs.LogLevel, configs.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	publisher, closePublisher, err := newEventPublisher(configs, logger)
	if err != nil {
		log.Fatalf("Error creating event publisher: %v", err)
	}
	defer closePublisher()

	snapshots, err := newSnapshotStore(ctx, configs)
	if err != nil {
		log.Fatalf("Error opening snapshot store: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, publisher, logger)
	if err = app.SeedUsers(ctx); err != nil {
		log.Fatalf("Error seeding users: %v", err)
	}
	loaded, err := app.SeedCatalog(ctx, snapshots)
	if err != nil {
		log.Fatalf("Error loading catalog: %v", err)
	}
	logger.InfoContext(ctx, "Catalog loaded", "products", loaded, "driver", configs.SnapshotDriver)

	snapshotJob := app.CreateSnapshotJob(snapshots)
	jobManager := jobs.NewJobManager(snapshotJob, configs.SnapshotSchedule)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	switch configs.AppMode {
	case cmd.ModeHTTP:
		web, webErr := app.CreateWebServer(ctx)
		if webErr != nil {
			log.Fatalf("Error creating web server: %v", webErr)
		}
		err = startWebServer(ctx, web, configs.HTTPPort, logger)
		if saveErr := snapshotJob.Run(context.Background()); saveErr != nil {
			logger.Error("Final snapshot failed", "error", saveErr)
		}
	default:
		err = runConsole(ctx, app, snapshotJob, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		jobManager.StopAll()
		log.Fatalf("QuickCart stopped with error: %v", err)
	}
}

func getConfigs() (cmd.Config, error) {
	seedUsers, err := cmd.ParseSeedUsers(goDotEnvVariable("SEED_USERS", cmd.DefaultSeedUsers))
	if err != nil {
		return cmd.Config{}, err
	}

	jwtTTL, err := time.ParseDuration(goDotEnvVariable("JWT_TTL", "24h"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("JWT_TTL: %w", err)
	}

	config := cmd.Config{
		AppMode:                goDotEnvVariable("APP_MODE", cmd.ModeConsole),
		HTTPPort:               goDotEnvVariable("HTTP_PORT", "8080"),
		LogLevel:               goDotEnvVariable("LOG_LEVEL", "info"),
		LogFormat:              goDotEnvVariable("LOG_FORMAT", "json"),
		SnapshotDriver:         goDotEnvVariable("SNAPSHOT_DRIVER", "json"),
		SnapshotPath:           goDotEnvVariable("SNAPSHOT_PATH", jsonfile.DefaultPath),
		SnapshotSchedule:       goDotEnvVariable("SNAPSHOT_SCHEDULE", "@every 1m"),
		DBHost:                 goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:                 goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                 goDotEnvVariable("DB_USER", ""),
		DBPassword:             goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                 goDotEnvVariable("DB_NAME", ""),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE", "disable"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET", ""),
		JWTTTL:                 jwtTTL,
		KafkaBrokers:           cmd.CSV(goDotEnvVariable("KAFKA_BROKERS", "")),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC", "quickcart.order.changed"),
		SeedUsers:              seedUsers,
	}
	return config, nil
}

// goDotEnvVariable returns def only when key is unset, so an empty value
// can switch a feature off.
func goDotEnvVariable(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func newEventPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func(), error) {
	if len(configs.KafkaBrokers) == 0 {
		return eventlog.NewPublisher(logger), func() {}, nil
	}

	publisher, err := kafka.NewPublisher(configs.KafkaBrokers, configs.KafkaOrderChangedTopic)
	if err != nil {
		return nil, nil, err
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Closing kafka publisher failed", "error", err)
		}
	}, nil
}

func newSnapshotStore(ctx context.Context, configs cmd.Config) (ports.SnapshotStore, error) {
	var dsn string
	switch configs.SnapshotDriver {
	case "json", "":
		return jsonfile.NewStore(configs.SnapshotPath), nil
	case postgres.DriverSQLite:
		dsn = configs.SnapshotPath
	case postgres.DriverPostgres:
		dsn = postgres.ConnectionConfig{
			Host:     configs.DBHost,
			Port:     configs.DBPort,
			User:     configs.DBUser,
			Password: configs.DBPassword,
			Name:     configs.DBName,
			SSLMode:  configs.DBSslMode,
		}.DSN()
	default:
		return nil, fmt.Errorf("unknown SNAPSHOT_DRIVER %q", configs.SnapshotDriver)
	}

	db, err := postgres.Open(ctx, configs.SnapshotDriver, dsn)
	if err != nil {
		return nil, err
	}
	repo := snapshotrepo.NewGormSnapshotRepository(db)
	if err = repo.Migrate(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// runConsole returns when the user exits or a signal arrives. A read from
// stdin cannot be interrupted, so on a signal the snapshot is saved here.
func runConsole(ctx context.Context, app cmd.CompositionRoot, snapshotJob *jobs.SnapshotJob, logger *slog.Logger) error {
	done := make(chan error, 1)
	go func() {
		done <- console.New(app.CreatePolicyFactory(), os.Stdin, os.Stdout, snapshotJob.Run, logger).Run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if err := snapshotJob.Run(context.Background()); err != nil {
			logger.Error("Final snapshot failed", "error", err)
		}
		return ctx.Err()
	}
}
