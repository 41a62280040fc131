// Package migrations holds the reminder dispatch schema and applies it with goose.
//
// Assets, assignments and maintenances are owned by their CRUD services and are
// not created here.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/zlog"
)

//go:embed *.sql
var fs embed.FS

// gooseLogger routes goose output through zlog.
type gooseLogger struct{}

func (gooseLogger) Fatalf(format string, v ...any) {
	zlog.Logger.Error().Msgf(format, v...)
}

func (gooseLogger) Printf(format string, v ...any) {
	zlog.Logger.Info().Msgf(format, v...)
}

// Up applies all pending migrations.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(fs)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
