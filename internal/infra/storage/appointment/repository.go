package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage"
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"client_id",
	"client_name",
	"service_ids",
	"service_names",
	"staff_id",
	"staff_name",
	"start_at",
	"end_at",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись. ID назначается вызывающей стороной.
// Если в контексте передана транзакция, использует её.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"client_id",
			"client_name",
			"service_ids",
			"service_names",
			"staff_id",
			"staff_name",
			"start_at",
			"end_at",
			"status",
		).
		Values(
			a.ID,
			a.ClientID,
			a.ClientName,
			pq.Array(a.ServiceIDs),
			pq.Array(a.ServiceNames),
			a.StaffID,
			a.StaffName,
			a.StartAt,
			a.EndAt,
			string(a.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := a.Clone()
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return created, nil
}

// Update перезаписывает изменяемые поля записи
func (r *Repository) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("client_id", a.ClientID).
		Set("client_name", a.ClientName).
		Set("service_ids", pq.Array(a.ServiceIDs)).
		Set("service_names", pq.Array(a.ServiceNames)).
		Set("staff_id", a.StaffID).
		Set("staff_name", a.StaffName).
		Set("start_at", a.StartAt).
		Set("end_at", a.EndAt).
		Set("status", string(a.Status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated := a.Clone()
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// List получает записи по фильтру, по возрастанию начала.
// Период [From, To) выбирает записи, пересекающиеся с ним.
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы проверка пересечений
// и последующая вставка видели согласованное состояние.
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.To})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if !filter.IncludeCanceled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCanceled)})
	}

	selectBuilder = selectBuilder.OrderBy("start_at ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan appointment: %v", ErrScanRow, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return storage.ErrAppointmentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a      domain.Appointment
		status string
	)
	err := row.Scan(
		&a.ID,
		&a.ClientID,
		&a.ClientName,
		pq.Array(&a.ServiceIDs),
		pq.Array(&a.ServiceNames),
		&a.StaffID,
		&a.StaffName,
		&a.StartAt,
		&a.EndAt,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Status = domain.AppointmentStatus(status)
	return &a, nil
}
