package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"pos/cmd"
	httpin "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/kvstore"
	"pos/internal/adapters/out/menurepo"
	"pos/internal/adapters/out/natsevents"
	"pos/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, menuRepo, closeStorage, err := openStorage(ctx, configs)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", configs.StorageDriver, err)
	}
	defer closeStorage()

	publisher, closePublisher := openPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, kv, menuRepo, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded, using the process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                 envOr("HTTP_PORT", "8080"),
		StorageDriver:            envOr("STORAGE_DRIVER", cmd.StorageMemory),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   envOr("DB_PORT", "5432"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                envOr("DB_SSLMODE", "disable"),
		SQLitePath:               envOr("SQLITE_PATH", "pos.db"),
		RedisAddr:                envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:            goDotEnvVariable("REDIS_PASSWORD"),
		NATSURL:                  goDotEnvVariable("NATS_URL"),
		NATSOrderChangedSubject:  goDotEnvVariable("NATS_ORDER_CHANGED_SUBJECT"),
		NATSSalesSnapshotSubject: goDotEnvVariable("NATS_SALES_SNAPSHOT_SUBJECT"),
		DefaultBusinessID:        envOr("DEFAULT_BUSINESS_ID", "main"),
		SalesSnapshotSchedule:    goDotEnvVariable("SALES_SNAPSHOT_SCHEDULE"),
		SalesSnapshotBusinesses:  splitList(goDotEnvVariable("SALES_SNAPSHOT_BUSINESSES")),
		LogLevel:                 envOr("LOG_LEVEL", "info"),
		LogFormat:                envOr("LOG_FORMAT", "json"),
	}

	if raw := goDotEnvVariable("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("REDIS_DB must be a number: %v", err)
		}
		config.RedisDB = db
	}
	return config
}

func goDotEnvVariable(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envOr(key, fallback string) string {
	if v := goDotEnvVariable(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newLogger(config cmd.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if config.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func openStorage(ctx context.Context, config cmd.Config) (ports.KeyValueStore, ports.MenuRepository, func(), error) {
	switch config.StorageDriver {
	case cmd.StorageMemory:
		return kvstore.NewMemoryStore(), menurepo.NewMemoryMenuRepository(), func() {}, nil

	case cmd.StoragePostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, nil, nil, err
		}
		if err = sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, nil, nil, err
		}
		gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, nil, err
		}
		return openGorm(gormDB, func() { _ = sqlDB.Close() })

	case cmd.StorageSQLite:
		gormDB, err := gorm.Open(sqlite.Open(config.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, nil, nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, nil, err
		}
		return openGorm(gormDB, func() { _ = sqlDB.Close() })

	case cmd.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, nil, err
		}
		return kvstore.NewRedisStore(client, "pos:"), menurepo.NewMemoryMenuRepository(), func() { _ = client.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}
}

func openGorm(db *gorm.DB, closeFn func()) (ports.KeyValueStore, ports.MenuRepository, func(), error) {
	if err := kvstore.AutoMigrate(db); err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	if err := menurepo.AutoMigrate(db); err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	return kvstore.NewGormStore(db), menurepo.NewGormMenuRepository(db), closeFn, nil
}

// openPublisher connects to NATS when NATS_URL is set; otherwise events are only logged.
func openPublisher(config cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if config.NATSURL == "" {
		return natsevents.NewNopPublisher(logger), func() {}
	}

	publisher, err := natsevents.Connect(natsevents.Config{
		URL:                  config.NATSURL,
		OrderChangedSubject:  config.NATSOrderChangedSubject,
		SalesSnapshotSubject: config.NATSSalesSnapshotSubject,
	}, logger)
	if err != nil {
		log.Fatalf("failed to connect to NATS at %s: %v", config.NATSURL, err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to drain NATS connection", "error", err)
		}
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}

	e, err := httpin.NewEcho(app.CreateServer(), doc, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server stopped: %v", err)
		}
	}()
	logger.Info("HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
