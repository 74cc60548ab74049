package service

import (
	"context"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type CapacityService interface {
	// AddUserCapacity - строго создание; для существующей пары
	// (sprintID, userID) возвращает domain.ErrCapacityExists
	AddUserCapacity(ctx context.Context, sprintID int, userID int64, params domain.CapacityParams) (*domain.UserCapacity, error)
	// UpsertUserCapacity - вставка или обновление на месте
	UpsertUserCapacity(ctx context.Context, sprintID int, userID int64, params domain.CapacityParams) (*domain.UserCapacity, error)
	ListUserCapacities(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error)
	RemoveUserFromSprint(ctx context.Context, sprintID int, userID int64) error
	UpdateAllocation(ctx context.Context, sprintID int, userID int64, allocatedHours float64) (*domain.UserCapacity, error)
	GetSummary(ctx context.Context, sprintID int) (*domain.CapacitySummary, error)
	GetOverAllocated(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error)
	// GetUnderUtilized: nil threshold означает порог по умолчанию (70%)
	GetUnderUtilized(ctx context.Context, sprintID int, thresholdPercent *float64) ([]*domain.UserCapacity, error)
	GetMembersOnLeave(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error)
	GetTeamMembers(ctx context.Context, teamID int) ([]*domain.TeamMember, error)
}
