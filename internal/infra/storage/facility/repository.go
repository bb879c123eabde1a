package facility

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var facilityColumns = []string{
	"id",
	"name",
	"type",
	"description",
	"capacity",
	"location",
	"status",
	"availability_windows",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с ресурсами кампуса
// Окна доступности хранятся в JSONB-колонке availability_windows
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый ресурс
func (r *Repository) Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	windows, err := json.Marshal(f.AvailabilityWindows)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeWindows, err)
	}

	query, args, err := psqlbuilder.Insert("facilities").
		Columns(
			"id",
			"name",
			"type",
			"description",
			"capacity",
			"location",
			"status",
			"availability_windows",
			"created_by",
		).
		Values(
			f.ID,
			f.Name,
			f.Type,
			f.Description,
			f.Capacity,
			f.Location,
			f.Status,
			windows,
			f.CreatedBy,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return f, nil
}

// GetByID получает ресурс по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	f, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	return f, nil
}

// List получает список ресурсов с опциональными фильтрами по типу и статусу
func (r *Repository) List(ctx context.Context, filter domain.FacilitiesFilter) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		OrderBy("name ASC")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
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

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// Update обновляет данные ресурса, включая окна доступности
func (r *Repository) Update(ctx context.Context, f *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	windows, err := json.Marshal(f.AvailabilityWindows)
	if err != nil {
		return nil, fmt.Errorf("%w: Update: %v", ErrEncodeWindows, err)
	}

	query, args, err := psqlbuilder.Update("facilities").
		Set("name", f.Name).
		Set("type", f.Type).
		Set("description", f.Description).
		Set("capacity", f.Capacity).
		Set("location", f.Location).
		Set("availability_windows", windows).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": f.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	f.UpdatedAt = updatedAt.Time

	return f, nil
}

// SetStatus изменяет операционный статус ресурса
// Перевод в OUT_OF_SERVICE не трогает существующие бронирования,
// но блокирует создание новых (проверка на submit)
func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status domain.FacilityStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("facilities").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrFacilityNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row rowScanner) (*domain.Facility, error) {
	var f domain.Facility
	var windowsRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Type,
		&f.Description,
		&f.Capacity,
		&f.Location,
		&f.Status,
		&windowsRaw,
		&f.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(windowsRaw) > 0 {
		if err := json.Unmarshal(windowsRaw, &f.AvailabilityWindows); err != nil {
			return nil, err
		}
	}
	if f.AvailabilityWindows == nil {
		f.AvailabilityWindows = make([]domain.TimeWindow, 0)
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return &f, nil
}
