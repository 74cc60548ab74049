package repository

import (
	"context"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type TaskRepository interface {
	ListBySprint(ctx context.Context, sprintID int) ([]*domain.SprintTask, error)
}
