package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func TestProgressService_GetSprintProgress(t *testing.T) {
	t.Run("прогресс объединяет реестр capacity и задачи", func(t *testing.T) {
		sprintRepo := new(MockSprintRepository)
		capacityRepo := new(MockCapacityRepository)
		taskRepo := new(MockTaskRepository)
		svc := NewProgressService(sprintRepo, capacityRepo, taskRepo)

		capacities := []*domain.UserCapacity{
			{SprintID: 1, UserID: 7, UserName: "Alice", TotalHours: 80, AvailableHours: 64, AllocatedHours: 40, RemainingHours: 24},
		}
		three := 3
		five := 5
		tasks := []*domain.SprintTask{
			{ID: 1, SprintID: 1, AssignedTo: int64Ptr(7), Status: "DONE", Points: &three},
			{ID: 2, SprintID: 1, AssignedTo: int64Ptr(7), Status: "OPEN", Points: &five},
			{ID: 3, SprintID: 1, AssignedTo: nil, Status: "DONE", Points: &five},
		}

		sprintRepo.On("GetByID", mock.Anything, 1).Return(testSprint(), nil).Once()
		capacityRepo.On("GetBySprint", mock.Anything, 1).Return(capacities, nil).Once()
		taskRepo.On("ListBySprint", mock.Anything, 1).Return(tasks, nil).Once()

		progress, err := svc.GetSprintProgress(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, progress, 1, "неназначенная задача не порождает участника")
		assert.Equal(t, "Alice", progress[0].UserName)
		assert.Equal(t, 2, progress[0].TasksTotal)
		assert.Equal(t, 1, progress[0].TasksDone)
		assert.Equal(t, 8, progress[0].PointsTotal)
		assert.Equal(t, 3, progress[0].PointsDone)
		assert.Equal(t, 50, progress[0].CompletionPercentage)
	})

	t.Run("спринт не найден: задачи не запрашиваются", func(t *testing.T) {
		sprintRepo := new(MockSprintRepository)
		capacityRepo := new(MockCapacityRepository)
		taskRepo := new(MockTaskRepository)
		svc := NewProgressService(sprintRepo, capacityRepo, taskRepo)

		sprintRepo.On("GetByID", mock.Anything, 99).Return(nil, domain.ErrNotFound).Once()

		progress, err := svc.GetSprintProgress(context.Background(), 99)

		require.Error(t, err)
		assert.Nil(t, progress)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		taskRepo.AssertNotCalled(t, "ListBySprint")
		capacityRepo.AssertNotCalled(t, "GetBySprint")
	})

	t.Run("список задач спринта доступен отдельно", func(t *testing.T) {
		sprintRepo := new(MockSprintRepository)
		capacityRepo := new(MockCapacityRepository)
		taskRepo := new(MockTaskRepository)
		svc := NewProgressService(sprintRepo, capacityRepo, taskRepo)

		tasks := []*domain.SprintTask{
			{ID: 1, SprintID: 1, Status: "OPEN", TaskType: 2, Title: "fix rounding"},
		}
		sprintRepo.On("GetByID", mock.Anything, 1).Return(testSprint(), nil).Once()
		taskRepo.On("ListBySprint", mock.Anything, 1).Return(tasks, nil).Once()

		got, err := svc.ListSprintTasks(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "fix rounding", got[0].Title)
	})

	t.Run("ошибка репозитория задач прокидывается наверх", func(t *testing.T) {
		sprintRepo := new(MockSprintRepository)
		capacityRepo := new(MockCapacityRepository)
		taskRepo := new(MockTaskRepository)
		svc := NewProgressService(sprintRepo, capacityRepo, taskRepo)

		sprintRepo.On("GetByID", mock.Anything, 1).Return(testSprint(), nil).Once()
		capacityRepo.On("GetBySprint", mock.Anything, 1).Return([]*domain.UserCapacity{}, nil).Once()
		taskRepo.On("ListBySprint", mock.Anything, 1).Return(nil, errors.New("connection reset")).Once()

		progress, err := svc.GetSprintProgress(context.Background(), 1)

		require.Error(t, err)
		assert.Nil(t, progress)
	})
}
