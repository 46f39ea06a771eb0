package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/services"
	"task-tracker.com/task-tracker/internal/sink"
	"task-tracker.com/task-tracker/internal/store"
)

// app bundles what every command needs once configuration is loaded.
type app struct {
	cfg     config.Config
	logger  zerolog.Logger
	service *services.TaskService
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// bootstrap loads configuration, opens the configured sink and restores the
// persisted tasks. logOut receives log output.
func bootstrap(ctx context.Context, logOut io.Writer) (*app, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := config.NewLogger(cfg, logOut)
	if envErr != nil {
		logger.Debug().Msg(".env file not found, using environment variables")
	}

	a := &app{cfg: cfg, logger: logger}

	sk, err := openSink(cfg, a)
	if err != nil {
		a.Close()
		return nil, err
	}

	codec, err := store.NewCodec(cfg.StorageFormat)
	if err != nil {
		a.Close()
		return nil, err
	}

	taskStore := store.NewTaskStore(sk,
		store.WithKey(cfg.StorageKey),
		store.WithCodec(codec),
		store.WithLogger(logger.With().Str("component", "store").Logger()),
	)
	a.service = services.NewTaskService(logger.With().Str("component", "service").Logger(), taskStore)

	if err := a.service.Restore(ctx); err != nil {
		a.Close()
		return nil, err
	}

	logger.Debug().
		Str("sink", cfg.SinkDriver).
		Str("key", cfg.StorageKey).
		Str("format", cfg.StorageFormat).
		Msg("task store ready")
	return a, nil
}

func openSink(cfg config.Config, a *app) (sink.Sink, error) {
	switch cfg.SinkDriver {
	case config.SinkRedis:
		client, err := config.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return sink.NewRedisSink(client), nil

	case config.SinkSQLite:
		db, err := config.NewDatabase(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
		return sink.NewSQLiteSink(db), nil

	case config.SinkMemory:
		return sink.NewMemorySink(), nil
	}

	return nil, fmt.Errorf("unknown sink driver %q", cfg.SinkDriver)
}
