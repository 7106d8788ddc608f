package postgresql

import (
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate применяет встроенные goose-миграции поверх существующего пула.
func Migrate(pool *pgxpool.Pool, migrationsFS embed.FS, dir string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("не удалось выбрать диалект миграций: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("не удалось применить миграции: %w", err)
	}

	return nil
}
