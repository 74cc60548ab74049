package service

import (
	"context"
	"database/sql"

	"github.com/drozdovdm/sprint-tracker/internal/capacity"
	"github.com/drozdovdm/sprint-tracker/internal/domain"
	"github.com/drozdovdm/sprint-tracker/internal/repository"
)

type sprintService struct {
	db           *sql.DB
	sprintRepo   repository.SprintRepository
	capacityRepo repository.CapacityRepository
	userRepo     repository.UserRepository
	teamRepo     repository.TeamRepository
}

// NewSprintService создает новый экземпляр SprintService. *sql.DB нужен
// для транзакции: спринт и его записи capacity создаются как единое целое.
func NewSprintService(
	db *sql.DB,
	sprintRepo repository.SprintRepository,
	capacityRepo repository.CapacityRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
) SprintService {
	return &sprintService{
		db:           db,
		sprintRepo:   sprintRepo,
		capacityRepo: capacityRepo,
		userRepo:     userRepo,
		teamRepo:     teamRepo,
	}
}

// CreateSprintWithCapacity создает спринт и по одной записи capacity на
// участника в одной транзакции: частичный сбой не оставляет осиротевших
// записей. Если участники не переданы, состав берется из команды.
func (s *sprintService) CreateSprintWithCapacity(ctx context.Context, spec *SprintCreationSpec) (*domain.Sprint, error) {
	if spec.Name == "" {
		return nil, domain.NewValidationError("sprint name is required")
	}
	if spec.ToDate.Before(spec.FromDate) {
		return nil, domain.NewValidationError("to_date must not be before from_date")
	}
	if spec.Holidays < 0 {
		return nil, domain.NewValidationError("holidays must not be negative")
	}

	capacities := spec.Capacities
	if len(capacities) == 0 && spec.TeamID > 0 {
		members, err := s.teamRepo.ListMembers(ctx, spec.TeamID)
		if err != nil {
			return nil, err
		}
		for _, member := range members {
			capacities = append(capacities, UserCapacitySpec{UserID: member.UserID})
		}
	}

	for _, c := range capacities {
		if err := validateCapacityParams(c.Params); err != nil {
			return nil, err
		}
	}

	durationDays := capacity.DurationDays(spec.FromDate, spec.ToDate)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	sprint := &domain.Sprint{
		Name:        spec.Name,
		FromDate:    spec.FromDate,
		ToDate:      spec.ToDate,
		Holidays:    spec.Holidays,
		TeamID:      spec.TeamID,
		SprintPoint: spec.SprintPoint,
		Remark:      spec.Remark,
		Status:      domain.SprintPlanning,
		CreatedBy:   spec.CreatedBy,
	}
	if err := s.sprintRepo.Create(ctx, tx, sprint); err != nil {
		return nil, err
	}

	for _, c := range capacities {
		user, err := s.userRepo.GetByID(ctx, c.UserID)
		if err != nil {
			return nil, err
		}

		record := newCapacityRecord(sprint.ID, user, spec.CreatedBy)
		applyCapacityParams(record, c.Params)
		recalculate(record, durationDays)

		if err := s.capacityRepo.CreateTx(ctx, tx, record); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return sprint, nil
}

func (s *sprintService) GetSprint(ctx context.Context, sprintID int) (*domain.Sprint, error) {
	return s.sprintRepo.GetByID(ctx, sprintID)
}

// UpdateStatus переводит спринт по жизненному циклу:
// Planning -> Active -> Completed, отмена из Planning и Active.
// Остальные переходы отклоняются с ErrSprintStatus.
func (s *sprintService) UpdateStatus(ctx context.Context, sprintID int, status domain.SprintStatus) (*domain.Sprint, error) {
	if status < domain.SprintPlanning || status > domain.SprintCancelled {
		return nil, domain.NewValidationError("unknown sprint status")
	}

	sprint, err := s.sprintRepo.GetByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	if !sprint.Status.CanTransitionTo(status) {
		return nil, domain.ErrSprintStatus
	}

	if err := s.sprintRepo.UpdateStatus(ctx, sprintID, status); err != nil {
		return nil, err
	}

	sprint.Status = status
	return sprint, nil
}

// DeleteSprint удаляет спринт вместе со всеми его записями capacity
func (s *sprintService) DeleteSprint(ctx context.Context, sprintID int) error {
	if _, err := s.sprintRepo.GetByID(ctx, sprintID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.capacityRepo.DeleteBySprint(ctx, tx, sprintID); err != nil {
		return err
	}
	if err := s.sprintRepo.Delete(ctx, tx, sprintID); err != nil {
		return err
	}

	return tx.Commit()
}
