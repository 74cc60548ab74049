package service

import (
	"github.com/drozdovdm/sprint-tracker/internal/capacity"
	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

// validateCapacityParams отклоняет отрицательные параметры до любой
// записи. Nil-значения допустимы: при создании это дефолт, при
// обновлении - "не менять". Процент больше 100 допустим и означает
// переподписку.
func validateCapacityParams(params domain.CapacityParams) error {
	if params.LeaveDays != nil && *params.LeaveDays < 0 {
		return domain.NewValidationError("leave_days must not be negative")
	}
	if params.DailyHours != nil && *params.DailyHours <= 0 {
		return domain.NewValidationError("daily_hours must be positive")
	}
	if params.CapacityPercent != nil && *params.CapacityPercent < 0 {
		return domain.NewValidationError("capacity_percent must not be negative")
	}
	if params.AllocatedHours != nil && *params.AllocatedHours < 0 {
		return domain.NewValidationError("allocated_hours must not be negative")
	}
	return nil
}

// newCapacityRecord строит новую запись с дефолтами создания
func newCapacityRecord(sprintID int, user *domain.User, createdBy string) *domain.UserCapacity {
	return &domain.UserCapacity{
		SprintID:        sprintID,
		UserID:          user.ID,
		UserName:        user.Name,
		CapacityPercent: domain.DefaultCapacityPercent,
		LeaveDays:       domain.DefaultLeaveDays,
		DailyHours:      domain.DefaultDailyHours,
		CreatedBy:       createdBy,
	}
}

// applyCapacityParams переносит только заданные параметры в запись
func applyCapacityParams(record *domain.UserCapacity, params domain.CapacityParams) {
	if params.CapacityPercent != nil {
		record.CapacityPercent = *params.CapacityPercent
	}
	if params.LeaveDays != nil {
		record.LeaveDays = *params.LeaveDays
	}
	if params.DailyHours != nil {
		record.DailyHours = *params.DailyHours
	}
	if params.AllocatedHours != nil {
		record.AllocatedHours = *params.AllocatedHours
	}
	if params.Notes != nil {
		record.Notes = *params.Notes
	}
}

// recalculate пересчитывает производные поля записи. Это единственное
// место, где они пишутся: запись сама по себе ничего не вычисляет.
func recalculate(record *domain.UserCapacity, durationDays int) {
	availability := capacity.ComputeAvailability(capacity.Inputs{
		DurationDays:    durationDays,
		LeaveDays:       &record.LeaveDays,
		DailyHours:      &record.DailyHours,
		CapacityPercent: &record.CapacityPercent,
		AllocatedHours:  &record.AllocatedHours,
	})
	record.TotalHours = availability.TotalHours
	record.AvailableHours = availability.AvailableHours
	record.AllocatedHours = availability.AllocatedHours
	record.RemainingHours = availability.RemainingHours
}
