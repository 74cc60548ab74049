package repository

import (
	"context"
	"database/sql"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

// CapacityRepository - реестр записей capacity спринта.
// Ключ уникальности - пара (sprint_id, user_id).
type CapacityRepository interface {
	// Create - строго создание; дубликат ключа возвращает domain.ErrCapacityExists
	Create(ctx context.Context, capacity *domain.UserCapacity) error
	// CreateTx - то же самое внутри внешней транзакции
	CreateTx(ctx context.Context, tx *sql.Tx, capacity *domain.UserCapacity) error
	// Upsert - атомарная вставка-или-обновление, конфликт разрешается
	// обновлением на месте (последняя запись побеждает)
	Upsert(ctx context.Context, capacity *domain.UserCapacity) error
	GetBySprint(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error)
	GetBySprintAndUser(ctx context.Context, sprintID int, userID int64) (*domain.UserCapacity, error)
	DeleteBySprintAndUser(ctx context.Context, sprintID int, userID int64) error
	DeleteBySprint(ctx context.Context, tx *sql.Tx, sprintID int) error
	FindOverAllocated(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error)
	FindUnderUtilized(ctx context.Context, sprintID int, thresholdPercent float64) ([]*domain.UserCapacity, error)
	FindOnLeave(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error)
}
