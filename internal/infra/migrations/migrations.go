package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/psqlbuilder"
)

//go:embed postgres/*.sql sqlite3/*.sql
var files embed.FS

// ErrUnsupportedDriver для драйвера нет набора миграций
var ErrUnsupportedDriver = errors.New("migrations: unsupported driver")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет еще не примененные миграции драйвера по порядку имен файлов
// Возвращает список примененных за этот вызов версий
func Up(ctx context.Context, db dbmetrics.DBExecutor, driver string, log Logger) ([]string, error) {
	names, err := list(driver)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`); err != nil {
		return nil, fmt.Errorf("migrations: create schema_migrations: %w", err)
	}

	applied := make([]string, 0, len(names))
	for _, name := range names {
		done, err := isApplied(ctx, db, name)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		body, err := files.ReadFile(path.Join(driver, name))
		if err != nil {
			return applied, fmt.Errorf("migrations: read %s: %w", name, err)
		}

		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("migrations: apply %s: %w", name, err)
		}

		query, args, err := psqlbuilder.Insert("schema_migrations").Columns("version").Values(name).ToSql()
		if err != nil {
			return applied, fmt.Errorf("migrations: build insert: %w", err)
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return applied, fmt.Errorf("migrations: record %s: %w", name, err)
		}

		log.Info("Migration %s applied", name)
		applied = append(applied, name)
	}

	return applied, nil
}

func list(driver string) ([]string, error) {
	entries, err := fs.ReadDir(files, driver)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func isApplied(ctx context.Context, db dbmetrics.DBExecutor, name string) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("schema_migrations").
		Where("version = ?", name).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("migrations: build select: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("migrations: check %s: %w", name, err)
	}
	return count > 0, nil
}
