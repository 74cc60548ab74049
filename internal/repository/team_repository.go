package repository

import (
	"context"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type TeamRepository interface {
	ListMembers(ctx context.Context, teamID int) ([]*domain.TeamMember, error)
}
