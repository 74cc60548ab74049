package service

import (
	"context"

	"github.com/drozdovdm/sprint-tracker/internal/capacity"
	"github.com/drozdovdm/sprint-tracker/internal/domain"
	"github.com/drozdovdm/sprint-tracker/internal/repository"
)

type progressService struct {
	sprintRepo   repository.SprintRepository
	capacityRepo repository.CapacityRepository
	taskRepo     repository.TaskRepository
}

// NewProgressService создает новый экземпляр ProgressService
func NewProgressService(
	sprintRepo repository.SprintRepository,
	capacityRepo repository.CapacityRepository,
	taskRepo repository.TaskRepository,
) ProgressService {
	return &progressService{
		sprintRepo:   sprintRepo,
		capacityRepo: capacityRepo,
		taskRepo:     taskRepo,
	}
}

// GetSprintProgress снимает срез реестра capacity и задач спринта на
// момент вызова и строит прогресс по участникам
func (s *progressService) GetSprintProgress(ctx context.Context, sprintID int) ([]*domain.UserProgress, error) {
	sprint, err := s.sprintRepo.GetByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	capacities, err := s.capacityRepo.GetBySprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListBySprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	return capacity.BuildProgress(sprint, capacities, tasks), nil
}

func (s *progressService) ListSprintTasks(ctx context.Context, sprintID int) ([]*domain.SprintTask, error) {
	if _, err := s.sprintRepo.GetByID(ctx, sprintID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListBySprint(ctx, sprintID)
}
