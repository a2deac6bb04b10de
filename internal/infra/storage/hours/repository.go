package hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/psqlbuilder"
)

const table = "operating_hours"

// Repository репозиторий часов работы
// Таблица содержит одну запись, ID которой задается в конфигурации
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает запись часов работы
func (r *Repository) Get(ctx context.Context, id int64) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"weekday_opening",
		"weekday_closing",
		"saturday_opening",
		"saturday_closing",
		"lunch_start",
		"lunch_end",
	).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.OperatingHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.Weekday.Opening,
		&h.Weekday.Closing,
		&h.Saturday.Opening,
		&h.Saturday.Closing,
		&h.Lunch.Opening,
		&h.Lunch.Closing,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan hours: %v", ErrScanRow, err)
	}

	return &h, nil
}

// Update перезаписывает запись часов работы
func (r *Repository) Update(ctx context.Context, h *domain.OperatingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("weekday_opening", h.Weekday.Opening).
		Set("weekday_closing", h.Weekday.Closing).
		Set("saturday_opening", h.Saturday.Opening).
		Set("saturday_closing", h.Saturday.Closing).
		Set("lunch_start", h.Lunch.Opening).
		Set("lunch_end", h.Lunch.Closing).
		Where(squirrel.Eq{"id": h.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrHoursNotFound
	}

	return nil
}
