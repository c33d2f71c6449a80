package salon

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, owner_id, is_active FROM salons WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "is_active"}).AddRow(int64(1), "Studio", int64(500), true))

	salon, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Studio", salon.Name)
	assert.True(t, salon.IsOwnedBy(500))
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM salons")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "is_active"}))

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestRepository_GetHours(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM salon_working_hours WHERE salon_id = $1 ORDER BY weekday ASC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"weekday", "is_open", "open_time", "close_time"}).
			AddRow(0, false, "", "").
			AddRow(1, true, "09:00", "18:00"))

	hours, err := repo.GetHours(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyHours{
		time.Sunday: {IsOpen: false},
		time.Monday: {IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
	}, hours)
}

func TestRepository_GetHours_BadWeekday(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM salon_working_hours")).
		WillReturnRows(sqlmock.NewRows([]string{"weekday", "is_open", "open_time", "close_time"}).
			AddRow(9, true, "09:00", "18:00"))

	_, err := repo.GetHours(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestRepository_ReplaceHours(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM salon_working_hours WHERE salon_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO salon_working_hours (salon_id,weekday,is_open,open_time,close_time) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)")).
		WithArgs(int64(1), 0, false, nil, nil, int64(1), 1, true, "09:00", "18:00").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.ReplaceHours(context.Background(), 1, domain.WeeklyHours{
		time.Monday: {IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
		time.Sunday: {IsOpen: false, OpenTime: "10:00", CloseTime: "12:00"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
