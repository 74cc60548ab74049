package repository

import (
	"context"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
