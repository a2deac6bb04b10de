// Package storagetest поднимает SQLite базу с примененными миграциями для тестов репозиториев и usecase
package storagetest

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/migrations"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/psqlbuilder"
)

// NewDB создает файл SQLite во временной директории теста и применяет миграции
func NewDB(t *testing.T) *dbmetrics.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000", filepath.Join(t.TempDir(), "booking.db"))
	raw, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })

	db := dbmetrics.Wrap(raw, nil)
	_, err = migrations.Up(context.Background(), db, "sqlite3", logger.Nop())
	require.NoError(t, err)

	return db
}

// InsertClient добавляет клиента и возвращает его ID
func InsertClient(t *testing.T, db dbmetrics.DBExecutor, name, phone string, enabled bool) int64 {
	t.Helper()

	query, args, err := psqlbuilder.Insert("clients").
		Columns("name", "email", "phone", "enabled").
		Values(name, name+"@example.com", phone, enabled).
		Suffix("RETURNING id").
		ToSql()
	require.NoError(t, err)

	var id int64
	require.NoError(t, db.QueryRowContext(context.Background(), query, args...).Scan(&id))
	return id
}

// InsertResource добавляет ресурс и возвращает его ID
func InsertResource(t *testing.T, db dbmetrics.DBExecutor, name string) int64 {
	t.Helper()

	query, args, err := psqlbuilder.Insert("resources").
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	require.NoError(t, err)

	var id int64
	require.NoError(t, db.QueryRowContext(context.Background(), query, args...).Scan(&id))
	return id
}

// InsertHours сохраняет запись часов работы
func InsertHours(t *testing.T, db dbmetrics.DBExecutor, h domain.OperatingHours) {
	t.Helper()

	query, args, err := psqlbuilder.Insert("operating_hours").
		Columns("id", "weekday_opening", "weekday_closing", "saturday_opening", "saturday_closing", "lunch_start", "lunch_end").
		Values(h.ID, h.Weekday.Opening, h.Weekday.Closing, h.Saturday.Opening, h.Saturday.Closing, h.Lunch.Opening, h.Lunch.Closing).
		ToSql()
	require.NoError(t, err)

	_, err = db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}
