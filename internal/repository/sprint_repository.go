package repository

import (
	"context"
	"database/sql"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type SprintRepository interface {
	Create(ctx context.Context, tx *sql.Tx, sprint *domain.Sprint) error
	GetByID(ctx context.Context, id int) (*domain.Sprint, error)
	UpdateStatus(ctx context.Context, id int, status domain.SprintStatus) error
	Delete(ctx context.Context, tx *sql.Tx, id int) error
}
