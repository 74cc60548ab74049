package postgres

import (
	"context"
	"database/sql"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{executor: db}
}

func (r *taskRepository) ListBySprint(ctx context.Context, sprintID int) ([]*domain.SprintTask, error) {
	query := `
		SELECT id, sprint_id, assigned_to, status, points, task_type, title
		FROM backlog_tasks
		WHERE sprint_id = $1
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query, sprintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.SprintTask
	for rows.Next() {
		task := &domain.SprintTask{}
		var assignedTo sql.NullInt64
		var points sql.NullInt64
		err := rows.Scan(
			&task.ID,
			&task.SprintID,
			&assignedTo,
			&task.Status,
			&points,
			&task.TaskType,
			&task.Title,
		)
		if err != nil {
			return nil, err
		}
		if assignedTo.Valid {
			task.AssignedTo = &assignedTo.Int64
		}
		if points.Valid {
			p := int(points.Int64)
			task.Points = &p
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}
