package service

import (
	"context"
	"errors"

	"github.com/drozdovdm/sprint-tracker/internal/capacity"
	"github.com/drozdovdm/sprint-tracker/internal/domain"
	"github.com/drozdovdm/sprint-tracker/internal/repository"
)

type capacityService struct {
	capacityRepo repository.CapacityRepository
	sprintRepo   repository.SprintRepository
	userRepo     repository.UserRepository
	teamRepo     repository.TeamRepository
}

// NewCapacityService создает новый экземпляр CapacityService
func NewCapacityService(
	capacityRepo repository.CapacityRepository,
	sprintRepo repository.SprintRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
) CapacityService {
	return &capacityService{
		capacityRepo: capacityRepo,
		sprintRepo:   sprintRepo,
		userRepo:     userRepo,
		teamRepo:     teamRepo,
	}
}

// AddUserCapacity создает запись без предварительной проверки
// существования: уникальность обеспечивает БД, дубликат возвращается
// как ErrCapacityExists, и вызывающий может перейти на upsert.
func (s *capacityService) AddUserCapacity(ctx context.Context, sprintID int, userID int64, params domain.CapacityParams) (*domain.UserCapacity, error) {
	if err := validateCapacityParams(params); err != nil {
		return nil, err
	}

	sprint, err := s.sprintRepo.GetByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	record := newCapacityRecord(sprintID, user, "")
	applyCapacityParams(record, params)
	recalculate(record, capacity.DurationDays(sprint.FromDate, sprint.ToDate))

	if err := s.capacityRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *capacityService) UpsertUserCapacity(ctx context.Context, sprintID int, userID int64, params domain.CapacityParams) (*domain.UserCapacity, error) {
	if err := validateCapacityParams(params); err != nil {
		return nil, err
	}

	sprint, err := s.sprintRepo.GetByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	record, err := s.capacityRepo.GetBySprintAndUser(ctx, sprintID, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		record = newCapacityRecord(sprintID, user, "")
	}

	applyCapacityParams(record, params)
	recalculate(record, capacity.DurationDays(sprint.FromDate, sprint.ToDate))

	if err := s.capacityRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *capacityService) ListUserCapacities(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error) {
	if _, err := s.sprintRepo.GetByID(ctx, sprintID); err != nil {
		return nil, err
	}
	return s.capacityRepo.GetBySprint(ctx, sprintID)
}

func (s *capacityService) RemoveUserFromSprint(ctx context.Context, sprintID int, userID int64) error {
	return s.capacityRepo.DeleteBySprintAndUser(ctx, sprintID, userID)
}

// UpdateAllocation меняет только выделенные часы; остаток и утилизация
// пересчитываются калькулятором, как и при любой другой записи.
func (s *capacityService) UpdateAllocation(ctx context.Context, sprintID int, userID int64, allocatedHours float64) (*domain.UserCapacity, error) {
	if allocatedHours < 0 {
		return nil, domain.NewValidationError("allocated_hours must not be negative")
	}

	sprint, err := s.sprintRepo.GetByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	record, err := s.capacityRepo.GetBySprintAndUser(ctx, sprintID, userID)
	if err != nil {
		return nil, err
	}

	record.AllocatedHours = allocatedHours
	recalculate(record, capacity.DurationDays(sprint.FromDate, sprint.ToDate))

	if err := s.capacityRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *capacityService) GetSummary(ctx context.Context, sprintID int) (*domain.CapacitySummary, error) {
	sprint, err := s.sprintRepo.GetByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	capacities, err := s.capacityRepo.GetBySprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	return capacity.BuildSummary(sprint, capacities), nil
}

func (s *capacityService) GetOverAllocated(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error) {
	if _, err := s.sprintRepo.GetByID(ctx, sprintID); err != nil {
		return nil, err
	}
	return s.capacityRepo.FindOverAllocated(ctx, sprintID)
}

func (s *capacityService) GetUnderUtilized(ctx context.Context, sprintID int, thresholdPercent *float64) ([]*domain.UserCapacity, error) {
	threshold := capacity.DefaultUnderUtilizedThreshold
	if thresholdPercent != nil {
		if *thresholdPercent < 0 {
			return nil, domain.NewValidationError("threshold must not be negative")
		}
		threshold = *thresholdPercent
	}

	if _, err := s.sprintRepo.GetByID(ctx, sprintID); err != nil {
		return nil, err
	}
	return s.capacityRepo.FindUnderUtilized(ctx, sprintID, threshold)
}

func (s *capacityService) GetMembersOnLeave(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error) {
	if _, err := s.sprintRepo.GetByID(ctx, sprintID); err != nil {
		return nil, err
	}
	return s.capacityRepo.FindOnLeave(ctx, sprintID)
}

func (s *capacityService) GetTeamMembers(ctx context.Context, teamID int) ([]*domain.TeamMember, error) {
	return s.teamRepo.ListMembers(ctx, teamID)
}
