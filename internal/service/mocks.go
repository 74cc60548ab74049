package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type MockSprintRepository struct {
	mock.Mock
}

func (m *MockSprintRepository) Create(ctx context.Context, tx *sql.Tx, sprint *domain.Sprint) error {
	args := m.Called(ctx, tx, sprint)
	return args.Error(0)
}

func (m *MockSprintRepository) GetByID(ctx context.Context, id int) (*domain.Sprint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sprint), args.Error(1)
}

func (m *MockSprintRepository) UpdateStatus(ctx context.Context, id int, status domain.SprintStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockSprintRepository) Delete(ctx context.Context, tx *sql.Tx, id int) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type MockCapacityRepository struct {
	mock.Mock
}

func (m *MockCapacityRepository) Create(ctx context.Context, capacity *domain.UserCapacity) error {
	args := m.Called(ctx, capacity)
	return args.Error(0)
}

func (m *MockCapacityRepository) CreateTx(ctx context.Context, tx *sql.Tx, capacity *domain.UserCapacity) error {
	args := m.Called(ctx, tx, capacity)
	return args.Error(0)
}

func (m *MockCapacityRepository) Upsert(ctx context.Context, capacity *domain.UserCapacity) error {
	args := m.Called(ctx, capacity)
	return args.Error(0)
}

func (m *MockCapacityRepository) GetBySprint(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error) {
	args := m.Called(ctx, sprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserCapacity), args.Error(1)
}

func (m *MockCapacityRepository) GetBySprintAndUser(ctx context.Context, sprintID int, userID int64) (*domain.UserCapacity, error) {
	args := m.Called(ctx, sprintID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCapacity), args.Error(1)
}

func (m *MockCapacityRepository) DeleteBySprintAndUser(ctx context.Context, sprintID int, userID int64) error {
	args := m.Called(ctx, sprintID, userID)
	return args.Error(0)
}

func (m *MockCapacityRepository) DeleteBySprint(ctx context.Context, tx *sql.Tx, sprintID int) error {
	args := m.Called(ctx, tx, sprintID)
	return args.Error(0)
}

func (m *MockCapacityRepository) FindOverAllocated(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error) {
	args := m.Called(ctx, sprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserCapacity), args.Error(1)
}

func (m *MockCapacityRepository) FindUnderUtilized(ctx context.Context, sprintID int, thresholdPercent float64) ([]*domain.UserCapacity, error) {
	args := m.Called(ctx, sprintID, thresholdPercent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserCapacity), args.Error(1)
}

func (m *MockCapacityRepository) FindOnLeave(ctx context.Context, sprintID int) ([]*domain.UserCapacity, error) {
	args := m.Called(ctx, sprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserCapacity), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) ListMembers(ctx context.Context, teamID int) ([]*domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamMember), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) ListBySprint(ctx context.Context, sprintID int) ([]*domain.SprintTask, error) {
	args := m.Called(ctx, sprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SprintTask), args.Error(1)
}
