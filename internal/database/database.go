package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"learnhub/internal/config"
	"learnhub/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers "sqlite"
)

// DriverName maps a configured driver to the database/sql driver name.
func DriverName(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "pgx", nil
	case config.DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported db driver: %s", driver)
	}
}

// Open connects to the configured database and pings it.
func Open(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	driverName, err := DriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN
	if cfg.Driver == config.DriverSQLite {
		dsn = SQLiteDSN(dsn)
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	logger.Get().Info("Connected to database", zap.String("driver", cfg.Driver))
	return db, nil
}

// SQLiteDSN makes transactions take the write lock at BEGIN and wait for it,
// unless the DSN already sets _txlock or busy_timeout. Two deferred transactions
// that both read and then write would otherwise fail with SQLITE_BUSY on upgrade
// instead of serializing.
func SQLiteDSN(dsn string) string {
	var params []string
	if !strings.Contains(dsn, "_txlock=") {
		params = append(params, "_txlock=immediate")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		params = append(params, "_pragma=busy_timeout(5000)")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
