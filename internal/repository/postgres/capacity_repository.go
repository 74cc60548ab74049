package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

const pgUniqueViolation = "23505"

type capacityRepository struct {
	executor DBExecutor
}

func NewCapacityRepository(db *sql.DB) *capacityRepository {
	return &capacityRepository{executor: db}
}

const capacityColumns = `
	id, sprint_id, user_id, user_name, capacity_percent, leave_days, daily_hours,
	total_hours, available_hours, allocated_hours, remaining_hours, notes,
	created_by, created_at, updated_at
`

func scanCapacity(scan func(dest ...any) error) (*domain.UserCapacity, error) {
	c := &domain.UserCapacity{}
	var notes, createdBy sql.NullString
	var updatedAt sql.NullTime
	err := scan(
		&c.ID,
		&c.SprintID,
		&c.UserID,
		&c.UserName,
		&c.CapacityPercent,
		&c.LeaveDays,
		&c.DailyHours,
		&c.TotalHours,
		&c.AvailableHours,
		&c.AllocatedHours,
		&c.RemainingHours,
		&notes,
		&createdBy,
		&c.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Notes = notes.String
	c.CreatedBy = createdBy.String
	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.Time
	}
	return c, nil
}

func (r *capacityRepository) Create(ctx context.Context, capacity *domain.UserCapacity) error {
	return r.create(ctx, r.executor, capacity)
}

func (r *capacityRepository) CreateTx(ctx context.Context, tx *sql.Tx, capacity *domain.UserCapacity) error {
	return r.create(ctx, tx, capacity)
}

func (r *capacityRepository) create(ctx context.Context, executor DBExecutor, capacity *domain.UserCapacity) error {
	query := `
		INSERT INTO sprint_user_capacities
			(sprint_id, user_id, user_name, capacity_percent, leave_days, daily_hours,
			 total_hours, available_hours, allocated_hours, remaining_hours, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	err := executor.QueryRowContext(
		ctx,
		query,
		capacity.SprintID,
		capacity.UserID,
		capacity.UserName,
		capacity.CapacityPercent,
		capacity.LeaveDays,
		capacity.DailyHours,
		capacity.TotalHours,
		capacity.AvailableHours,
		capacity.AllocatedHours,
		capacity.RemainingHours,
		capacity.Notes,
		capacity.CreatedBy,
		time.Now(),
	).Scan(&capacity.ID, &capacity.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.ErrCapacityExists
	}
	return err
}

// Upsert пишет запись одним запросом с ON CONFLICT: гонка двух
// конкурентных записей по одному ключу разрешается на стороне БД,
// побеждает последняя запись целиком, без слияния полей.
func (r *capacityRepository) Upsert(ctx context.Context, capacity *domain.UserCapacity) error {
	query := `
		INSERT INTO sprint_user_capacities
			(sprint_id, user_id, user_name, capacity_percent, leave_days, daily_hours,
			 total_hours, available_hours, allocated_hours, remaining_hours, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (sprint_id, user_id) DO UPDATE
		SET user_name        = EXCLUDED.user_name,
		    capacity_percent = EXCLUDED.capacity_percent,
		    leave_days       = EXCLUDED.leave_days,
		    daily_hours      = EXCLUDED.daily_hours,
		    total_hours      = EXCLUDED.total_hours,
		    available_hours  = EXCLUDED.available_hours,
		    allocated_hours  = EXCLUDED.allocated_hours,
		    remaining_hours  = EXCLUDED.remaining_hours,
		    notes            = EXCLUDED.notes,
		    updated_at       = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		capacity.SprintID,
		capacity.UserID,
		capacity.UserName,
		capacity.CapacityPercent,
		capacity.LeaveDays,
		capacity.DailyHours,
		capacity.TotalHours,
		capacity.AvailableHours,
		capacity.AllocatedHours,
		capacity.RemainingHours,
		capacity.Notes,
		capacity.CreatedBy,
		time.Now(),
	).Scan(&capacity.ID, &capacity.CreatedAt, &updatedAt)
	if err != nil {
		return err
	}

	if updatedAt.Valid {
		capacity.UpdatedAt = &updatedAt.Time
	} else {
		capacity.UpdatedAt = nil
	}

	return nil
}

func (r *capacityRepository) GetBySprint(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error) {
	query := `
		SELECT ` + capacityColumns + `
		FROM sprint_user_capacities
		WHERE sprint_id = $1
		ORDER BY user_name
	`
	return r.queryCapacities(ctx, query, sprintID)
}

func (r *capacityRepository) GetBySprintAndUser(ctx context.Context, sprintID int, userID int64) (*domain.UserCapacity, error) {
	query := `
		SELECT ` + capacityColumns + `
		FROM sprint_user_capacities
		WHERE sprint_id = $1 AND user_id = $2
	`

	row := r.executor.QueryRowContext(ctx, query, sprintID, userID)
	capacity, err := scanCapacity(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return capacity, nil
}

func (r *capacityRepository) DeleteBySprintAndUser(ctx context.Context, sprintID int, userID int64) error {
	query := `
		DELETE FROM sprint_user_capacities
		WHERE sprint_id = $1 AND user_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, sprintID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *capacityRepository) DeleteBySprint(ctx context.Context, tx *sql.Tx, sprintID int) error {
	var executor DBExecutor = r.executor
	if tx != nil {
		executor = tx
	}

	_, err := executor.ExecContext(ctx, `DELETE FROM sprint_user_capacities WHERE sprint_id = $1`, sprintID)
	return err
}

func (r *capacityRepository) FindOverAllocated(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error) {
	query := `
		SELECT ` + capacityColumns + `
		FROM sprint_user_capacities
		WHERE sprint_id = $1 AND allocated_hours > available_hours
		ORDER BY user_name
	`
	return r.queryCapacities(ctx, query, sprintID)
}

// FindUnderUtilized считает утилизацию теми же правилами, что и
// калькулятор: нулевая доступность дает утилизацию 0, то есть запись
// попадает под любой положительный порог.
func (r *capacityRepository) FindUnderUtilized(ctx context.Context, sprintID int, thresholdPercent float64) ([]*domain.UserCapacity, error) {
	query := `
		SELECT ` + capacityColumns + `
		FROM sprint_user_capacities
		WHERE sprint_id = $1
		  AND (CASE WHEN available_hours > 0 THEN allocated_hours * 100 / available_hours ELSE 0 END) < $2
		ORDER BY user_name
	`
	return r.queryCapacities(ctx, query, sprintID, thresholdPercent)
}

func (r *capacityRepository) FindOnLeave(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error) {
	query := `
		SELECT ` + capacityColumns + `
		FROM sprint_user_capacities
		WHERE sprint_id = $1 AND leave_days > 0
		ORDER BY leave_days DESC
	`
	return r.queryCapacities(ctx, query, sprintID)
}

func (r *capacityRepository) queryCapacities(ctx context.Context, query string, args ...any) ([]*domain.UserCapacity, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var capacities []*domain.UserCapacity
	for rows.Next() {
		capacity, err := scanCapacity(rows.Scan)
		if err != nil {
			return nil, err
		}
		capacities = append(capacities, capacity)
	}

	return capacities, rows.Err()
}
