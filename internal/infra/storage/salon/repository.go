package salon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const (
	salonsTable = "salons"
	hoursTable  = "salon_working_hours"
)

// Repository репозиторий салонов и их расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает салон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "owner_id", "is_active").
		From(salonsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var salon domain.Salon
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&salon.ID,
		&salon.Name,
		&salon.OwnerID,
		&salon.IsActive,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %w", ErrScanRow, err)
	}

	return &salon, nil
}

// GetHours получает недельное расписание салона.
// Дни без строки в таблице считаются выходными.
func (r *Repository) GetHours(ctx context.Context, salonID int64) (domain.WeeklyHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Время отдаем строкой HH:MM, драйвер превращает TIME в time.Time с нулевой датой
	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"COALESCE(to_char(open_time, 'HH24:MI'), '')",
		"COALESCE(to_char(close_time, 'HH24:MI'), '')",
	).
		From(hoursTable).
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHours - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make(domain.WeeklyHours, 7)
	for rows.Next() {
		var weekday int
		var day domain.DayHours
		if err := rows.Scan(&weekday, &day.IsOpen, &day.OpenTime, &day.CloseTime); err != nil {
			return nil, fmt.Errorf("%w: GetHours - scan row: %w", ErrScanRow, err)
		}
		if weekday < int(time.Sunday) || weekday > int(time.Saturday) {
			return nil, fmt.Errorf("%w: GetHours - weekday %d out of range", ErrScanRow, weekday)
		}
		hours[time.Weekday(weekday)] = day
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHours - rows error: %w", ErrScanRow, err)
	}

	return hours, nil
}

// ReplaceHours заменяет расписание салона целиком.
// Вызывать внутри транзакции, иначе чтение может увидеть пустое расписание.
func (r *Repository) ReplaceHours(ctx context.Context, salonID int64, hours domain.WeeklyHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(hoursTable).
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceHours - execute delete: %w", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(hoursTable).
		Columns("salon_id", "weekday", "is_open", "open_time", "close_time")

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day, ok := hours[weekday]
		if !ok {
			continue
		}
		insertBuilder = insertBuilder.Values(salonID, int(weekday), day.IsOpen, nullableTime(day.IsOpen, day.OpenTime), nullableTime(day.IsOpen, day.CloseTime))
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceHours - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

func nullableTime(isOpen bool, value string) interface{} {
	if !isOpen || value == "" {
		return nil
	}
	return value
}
