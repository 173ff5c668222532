// Package gormdb implements the persistence layer with GORM over PostgreSQL or SQLite.
package gormdb

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"inventory/config"
	"inventory/internal/domain/lifecycle"
	"inventory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	sqliteMemory = ":memory:"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and ties its lifetime to the fx app.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", params.Config.Database.Driver)
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated", slog.String("driver", params.Config.Database.Driver))
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the database selected by cfg.Database.Driver.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormLogger := newGormSlogLogger(logger, cfg)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
		// Explicit transactions go through the TransactionManager.
		db = db.Session(&gorm.Session{
			SkipDefaultTransaction: true,
			Logger:                 gormLogger,
			NowFunc:                utcNow,
		})
		db.TranslateError = true

		return db, nil

	case config.DriverSQLite:
		db, err := gorm.Open(sqlite.Open(sqliteDSN(cfg.Database.SQLitePath)), &gorm.Config{
			SkipDefaultTransaction: true,
			TranslateError:         true,
			Logger:                 gormLogger,
			NowFunc:                utcNow,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite database")
		}

		if isMemory(cfg.Database.SQLitePath) {
			// Each connection to :memory: is a separate database.
			sqlDB, err := db.DB()
			if err != nil {
				return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
			}
			sqlDB.SetMaxOpenConns(1)
		}

		return db, nil

	default:
		return nil, errors.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

// Migrate creates or updates the tables and indexes of every model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.AccessTokenModel{},
		&model.DeviceModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func sqliteDSN(path string) string {
	if isMemory(path) {
		return sqliteMemory
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + "_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
}

func isMemory(path string) bool {
	return path == sqliteMemory || strings.Contains(path, "mode=memory")
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
	} else {
		logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
	}
}
