package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/txmanager"
)

const table = "appointments"

var columns = []string{
	"id",
	"name",
	"phone",
	"service_type",
	"appointment_date",
	"time_slot",
	"status",
	"given_time",
	"estimated_time",
}

// Repository репозиторий записей в PostgreSQL
// Ошибки драйвера оборачиваются через %w, чтобы txmanager видел конфликт сериализации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByDate возвращает записи на дату в порядке создания
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate: %w", ErrScanRow, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - iterate rows: %w", ErrExecQuery, err)
	}

	return result, nil
}

// CountBySlot возвращает число записей в слоте на дату (все статусы)
func (r *Repository) CountBySlot(ctx context.Context, date time.Time, slotID string) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{
			"appointment_date": date.Format(domain.DateFormat),
			"time_slot":        slotID,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountBySlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBySlot - execute select: %w", ErrExecQuery, err)
	}

	return count, nil
}

// Create сохраняет новую запись
// Проверку вместимости выполняет вызывающий в той же транзакции
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			a.ID,
			a.Name,
			a.Phone,
			string(a.ServiceType),
			a.Date.Format(domain.DateFormat),
			a.SlotID,
			string(a.Status),
			a.GivenTime,
			a.EstimatedTime,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// UpdateStatus меняет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
	}

	return nil
}

func scanAppointment(rows *sql.Rows) (domain.Appointment, error) {
	var (
		a             domain.Appointment
		serviceType   string
		status        string
		date          time.Time
		givenTime     sql.NullString
		estimatedTime sql.NullString
	)

	if err := rows.Scan(
		&a.ID,
		&a.Name,
		&a.Phone,
		&serviceType,
		&date,
		&a.SlotID,
		&status,
		&givenTime,
		&estimatedTime,
	); err != nil {
		return domain.Appointment{}, err
	}

	a.ServiceType = domain.ServiceType(serviceType)
	a.Status = domain.AppointmentStatus(status)
	a.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if givenTime.Valid {
		a.GivenTime = &givenTime.String
	}
	if estimatedTime.Valid {
		a.EstimatedTime = &estimatedTime.String
	}

	return a, nil
}
