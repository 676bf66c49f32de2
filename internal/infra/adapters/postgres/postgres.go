package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/qrave1/zoomer/internal/application/config"
)

// NewPostgres открывает общий пул соединений. Закрывает его вызывающая сторона.
func NewPostgres(ctx context.Context, cfg *config.PostgresConfig) (*sqlx.DB, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(dbCtx, "pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err = db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	slog.Info("connected to postgres", slog.Int("max_conns", cfg.MaxConns))

	return db, nil
}
