package domain

import "time"

// UserCapacity - запись доступности участника в спринте.
// Ключ уникальности - пара (SprintID, UserID). Все производные поля
// (TotalHours, AvailableHours, RemainingHours) пишутся только
// калькулятором из пакета capacity, сама запись - инертное хранилище.
type UserCapacity struct {
	ID              int64
	SprintID        int
	UserID          int64
	UserName        string
	CapacityPercent float64
	LeaveDays       int
	DailyHours      float64
	TotalHours      float64
	AvailableHours  float64
	AllocatedHours  float64
	RemainingHours  float64
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// IsOverAllocated - выделено больше часов, чем доступно
func (c *UserCapacity) IsOverAllocated() bool {
	return c.AllocatedHours > c.AvailableHours
}

// CapacityParams - входные параметры записи capacity. Nil означает
// "не менять" при обновлении и "значение по умолчанию" при создании.
type CapacityParams struct {
	CapacityPercent *float64
	LeaveDays       *int
	DailyHours      *float64
	AllocatedHours  *float64
	Notes           *string
}

// Значения по умолчанию при создании новой записи capacity
const (
	DefaultCapacityPercent = 100.0
	DefaultDailyHours      = 8.0
	DefaultLeaveDays       = 0
)
