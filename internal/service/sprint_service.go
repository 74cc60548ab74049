package service

import (
	"context"
	"time"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

// UserCapacitySpec - участник и его параметры при планировании спринта
type UserCapacitySpec struct {
	UserID int64
	Params domain.CapacityParams
}

// SprintCreationSpec - параметры создания спринта вместе с capacity.
// Если Capacities пуст, начальные записи засеиваются из состава команды.
type SprintCreationSpec struct {
	Name        string
	FromDate    time.Time
	ToDate      time.Time
	Holidays    int
	TeamID      int
	SprintPoint *int
	Remark      string
	CreatedBy   string
	Capacities  []UserCapacitySpec
}

type SprintService interface {
	CreateSprintWithCapacity(ctx context.Context, spec *SprintCreationSpec) (*domain.Sprint, error)
	GetSprint(ctx context.Context, sprintID int) (*domain.Sprint, error)
	UpdateStatus(ctx context.Context, sprintID int, status domain.SprintStatus) (*domain.Sprint, error)
	DeleteSprint(ctx context.Context, sprintID int) error
}
