package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-FacilityBooking/pkg/sqlerr"
)

const table = "reservations"

var columns = []string{
	"id",
	"day",
	"month",
	"year",
	"slot_time",
	"establishment_id",
	"service_type_id",
	"resource_id",
	"client_id",
	"created_at",
}

// Repository репозиторий бронирований
// Уникальность (resource_id, day, month, year, time) обеспечивается индексом в БД
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование
// Если слот ресурса уже занят, возвращает ErrSlotTaken,
// если конкурентная транзакция удерживает запись, ErrConcurrentWrite
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"day",
			"month",
			"year",
			"slot_time",
			"establishment_id",
			"service_type_id",
			"resource_id",
			"client_id",
			"created_at",
		).
		Values(
			res.Day(),
			res.Month(),
			res.Year(),
			res.Time,
			res.EstablishmentID,
			res.ServiceTypeID,
			res.ResourceID,
			res.ClientID,
			res.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID)
	if err != nil {
		return nil, classifyWriteError(err, res, "Create - execute insert")
	}

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// Find возвращает бронирования по фильтру, отсортированные по дате, времени и ресурсу
func (r *Repository) Find(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select(columns...).From(table), filter).
		OrderBy("year ASC", "month ASC", "day ASC", "slot_time ASC", "resource_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Find - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Find - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Count считает бронирования по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.ReservationFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		if sqlerr.IsSerializationFailure(err) {
			return 0, fmt.Errorf("%w: Count: %v", ErrConcurrentWrite, err)
		}
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update полностью заменяет поля бронирования
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("day", res.Day()).
		Set("month", res.Month()).
		Set("year", res.Year()).
		Set("slot_time", res.Time).
		Set("establishment_id", res.EstablishmentID).
		Set("service_type_id", res.ServiceTypeID).
		Set("resource_id", res.ResourceID).
		Set("client_id", res.ClientID).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classifyWriteError(err, res, "Update - execute update")
	}

	return checkAffected(result, "Update")
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func applyFilter(b squirrel.SelectBuilder, filter domain.ReservationFilter) squirrel.SelectBuilder {
	if filter.EstablishmentID != nil {
		b = b.Where(squirrel.Eq{"establishment_id": *filter.EstablishmentID})
	}
	if filter.ClientID != nil {
		b = b.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if len(filter.ResourceIDs) > 0 {
		b = b.Where(squirrel.Eq{"resource_id": filter.ResourceIDs})
	}
	if filter.Date != nil {
		b = b.Where(squirrel.Eq{
			"day":   filter.Date.Day(),
			"month": int(filter.Date.Month()),
			"year":  filter.Date.Year(),
		})
	}
	if filter.FromDate != nil {
		b = b.Where(squirrel.Expr("(year, month, day) >= (?, ?, ?)",
			filter.FromDate.Year(), int(filter.FromDate.Month()), filter.FromDate.Day()))
	}
	if filter.Time != nil {
		b = b.Where(squirrel.Eq{"slot_time": filter.Time.String()})
	}
	return b
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res              domain.Reservation
		day, month, year int
	)

	err := row.Scan(
		&res.ID,
		&day,
		&month,
		&year,
		&res.Time,
		&res.EstablishmentID,
		&res.ServiceTypeID,
		&res.ResourceID,
		&res.ClientID,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := domain.NewDate(day, month, year)
	if err != nil {
		return nil, err
	}
	res.Date = date

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		result = append(result, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// classifyWriteError переводит ошибку драйвера при записи в ошибку репозитория
func classifyWriteError(err error, res *domain.Reservation, op string) error {
	switch {
	case sqlerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: resource=%d date=%s time=%s",
			ErrSlotTaken, res.ResourceID, res.Date.Format(domain.DateFormat), res.Time)
	case sqlerr.IsSerializationFailure(err):
		return fmt.Errorf("%w: %s: %v", ErrConcurrentWrite, op, err)
	case sqlerr.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: resource=%d client=%d", ErrUnknownReference, res.ResourceID, res.ClientID)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}
