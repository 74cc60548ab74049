package domain

import "time"

type SprintStatus int

const (
	SprintPlanning  SprintStatus = 0
	SprintActive    SprintStatus = 1
	SprintCompleted SprintStatus = 2
	SprintCancelled SprintStatus = 3
)

func (s SprintStatus) String() string {
	switch s {
	case SprintPlanning:
		return "PLANNING"
	case SprintActive:
		return "ACTIVE"
	case SprintCompleted:
		return "COMPLETED"
	case SprintCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// CanTransitionTo проверяет допустимость перехода статуса спринта.
// Разрешено: Planning -> Active -> Completed, отмена из Planning и Active.
func (s SprintStatus) CanTransitionTo(next SprintStatus) bool {
	switch s {
	case SprintPlanning:
		return next == SprintActive || next == SprintCancelled
	case SprintActive:
		return next == SprintCompleted || next == SprintCancelled
	default:
		return false
	}
}

type Sprint struct {
	ID          int
	Name        string
	FromDate    time.Time
	ToDate      time.Time
	Holidays    int
	TeamID      int
	SprintPoint *int
	Remark      string
	Status      SprintStatus
	CreatedBy   string
	CreatedAt   time.Time
}
