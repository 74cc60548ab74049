package postgres

import (
	"context"
	"database/sql"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID int) ([]*domain.TeamMember, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY u.name
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		member := &domain.TeamMember{}
		err := rows.Scan(&member.UserID, &member.Name, &member.Email, &member.Role)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
