package appointment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage"
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
)

func newRepository(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), db, mock
}

func sampleAppointment() *domain.Appointment {
	start := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:           "0b7e5c1a-6d5f-4bde-9a3e-9d35a1d1c001",
		ClientID:     "1",
		ClientName:   "Анна Иванова",
		ServiceIDs:   []string{"s1", "s4"},
		ServiceNames: []string{"Стрижка и укладка", "Коррекция бровей"},
		StaffID:      "st1",
		StaffName:    "Елена",
		StartAt:      start,
		EndAt:        start.Add(100 * time.Minute),
		Status:       domain.StatusPlanned,
	}
}

func appointmentRows(a *domain.Appointment) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		a.ID, a.ClientID, a.ClientName, "{s1,s4}", `{"Стрижка и укладка","Коррекция бровей"}`,
		a.StaffID, a.StaffName, a.StartAt, a.EndAt, string(a.Status), a.StartAt, a.StartAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepository(t)
	a := sampleAppointment()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (id,client_id,client_name,service_ids,service_names,staff_id,staff_name,start_at,end_at,status) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING created_at, updated_at")).
		WithArgs(a.ID, a.ClientID, a.ClientName, sqlmock.AnyArg(), sqlmock.AnyArg(), a.StaffID, a.StaffName, a.StartAt, a.EndAt, "planned").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.True(t, a.CreatedAt.IsZero(), "input must not be mutated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepository(t)
	a := sampleAppointment()

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs(a.ID).
		WillReturnRows(appointmentRows(a))

	got, err := repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s4"}, got.ServiceIDs)
	assert.Equal(t, []string{"Стрижка и укладка", "Коррекция бровей"}, got.ServiceNames)
	assert.Equal(t, domain.StatusPlanned, got.Status)
	assert.Equal(t, 100, got.DurationMinutes())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrAppointmentNotFound)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE appointments SET")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), sampleAppointment())
	assert.ErrorIs(t, err, storage.ErrAppointmentNotFound)
}

func TestRepository_List_Filter(t *testing.T) {
	repo, _, mock := newRepository(t)
	a := sampleAppointment()
	staffID := "st1"
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE staff_id = $1 AND end_at > $2 AND start_at < $3 AND status <> $4 ORDER BY start_at ASC, id ASC")).
		WithArgs("st1", from, to, "canceled").
		WillReturnRows(appointmentRows(a))

	list, err := repo.List(context.Background(), domain.AppointmentsFilter{StaffID: &staffID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY start_at ASC, id ASC FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	list, err := repo.List(dbmetrics.WithTx(context.Background(), tx), domain.AppointmentsFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "a1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), storage.ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_ExecError(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("done", "a1").
		WillReturnError(errors.New("connection reset"))

	err := repo.UpdateStatus(context.Background(), "a1", domain.StatusDone)
	assert.ErrorIs(t, err, ErrExecQuery)
}
