// Package migrate applies the task and personal_note schema with goose.
// flyway_schema_history is owned by the external migration tool and is not
// touched here.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var migrations embed.FS

const versionTable = "plm_goose_version"

type Command string

const (
	Up     Command = "up"
	Down   Command = "down"
	Status Command = "status"
)

type zapGooseLogger struct {
	log *zap.SugaredLogger
}

func (l zapGooseLogger) Printf(format string, v ...any) {
	l.log.Infof(format, v...)
}

// Fatalf does not exit; goose returns the error to the caller.
func (l zapGooseLogger) Fatalf(format string, v ...any) {
	l.log.Errorf(format, v...)
}

func Run(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger, cmd Command) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return RunDB(ctx, db, logger, cmd)
}

func RunDB(ctx context.Context, db *sql.DB, logger *zap.Logger, cmd Command) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(zapGooseLogger{log: logger.Sugar()})
	goose.SetTableName(versionTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	var err error
	switch cmd {
	case Up:
		err = goose.UpContext(ctx, db, "sql")
	case Down:
		err = goose.DownContext(ctx, db, "sql")
	case Status:
		err = goose.StatusContext(ctx, db, "sql")
	default:
		return fmt.Errorf("unknown migrate command %q", cmd)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", cmd, err)
	}
	return nil
}
