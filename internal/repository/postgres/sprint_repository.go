package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type sprintRepository struct {
	executor DBExecutor
}

func NewSprintRepository(db *sql.DB) *sprintRepository {
	return &sprintRepository{executor: db}
}

func (r *sprintRepository) Create(ctx context.Context, tx *sql.Tx, sprint *domain.Sprint) error {
	query := `
		INSERT INTO sprints (name, from_date, to_date, holidays, team_id, sprint_point, remark, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	var executor DBExecutor = r.executor
	if tx != nil {
		executor = tx
	}

	var sprintPoint sql.NullInt64
	if sprint.SprintPoint != nil {
		sprintPoint = sql.NullInt64{Int64: int64(*sprint.SprintPoint), Valid: true}
	}

	return executor.QueryRowContext(
		ctx,
		query,
		sprint.Name,
		sprint.FromDate,
		sprint.ToDate,
		sprint.Holidays,
		sprint.TeamID,
		sprintPoint,
		sprint.Remark,
		int(sprint.Status),
		sprint.CreatedBy,
		time.Now(),
	).Scan(&sprint.ID, &sprint.CreatedAt)
}

func (r *sprintRepository) GetByID(ctx context.Context, id int) (*domain.Sprint, error) {
	query := `
		SELECT id, name, from_date, to_date, holidays, team_id, sprint_point, remark, status, created_by, created_at
		FROM sprints
		WHERE id = $1
	`

	sprint := &domain.Sprint{}
	var sprintPoint sql.NullInt64
	var status int
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&sprint.ID,
		&sprint.Name,
		&sprint.FromDate,
		&sprint.ToDate,
		&sprint.Holidays,
		&sprint.TeamID,
		&sprintPoint,
		&sprint.Remark,
		&status,
		&sprint.CreatedBy,
		&sprint.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if sprintPoint.Valid {
		point := int(sprintPoint.Int64)
		sprint.SprintPoint = &point
	}
	sprint.Status = domain.SprintStatus(status)

	return sprint, nil
}

func (r *sprintRepository) UpdateStatus(ctx context.Context, id int, status domain.SprintStatus) error {
	query := `
		UPDATE sprints
		SET status = $2
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, id, int(status))
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

func (r *sprintRepository) Delete(ctx context.Context, tx *sql.Tx, id int) error {
	var executor DBExecutor = r.executor
	if tx != nil {
		executor = tx
	}

	result, err := executor.ExecContext(ctx, `DELETE FROM sprints WHERE id = $1`, id)
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
