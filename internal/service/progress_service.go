package service

import (
	"context"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type ProgressService interface {
	GetSprintProgress(ctx context.Context, sprintID int) ([]*domain.UserProgress, error)
	ListSprintTasks(ctx context.Context, sprintID int) ([]*domain.SprintTask, error)
}
