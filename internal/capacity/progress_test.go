package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func task(sprintID int, assignedTo *int64, status string, points *int) *domain.SprintTask {
	return &domain.SprintTask{
		SprintID:   sprintID,
		AssignedTo: assignedTo,
		Status:     status,
		Points:     points,
	}
}

func TestBuildProgress(t *testing.T) {
	sprint := testSprint(date(2025, time.June, 2), date(2025, time.June, 11), 0) // 10 дней

	t.Run("агрегация задач одного участника", func(t *testing.T) {
		capacities := []*domain.UserCapacity{
			{
				SprintID: 1, UserID: 7, UserName: "Alice",
				TotalHours: 80, AvailableHours: 64, AllocatedHours: 40, RemainingHours: 24,
			},
		}
		tasks := []*domain.SprintTask{
			task(1, int64Ptr(7), "DONE", intPtr(3)),
			task(1, int64Ptr(7), "OPEN", intPtr(5)),
		}

		progress := BuildProgress(sprint, capacities, tasks)
		require.Len(t, progress, 1)

		p := progress[0]
		assert.Equal(t, int64(7), p.UserID)
		assert.Equal(t, "Alice", p.UserName)
		assert.Equal(t, 2, p.TasksTotal)
		assert.Equal(t, 1, p.TasksDone)
		assert.Equal(t, 8, p.PointsTotal)
		assert.Equal(t, 3, p.PointsDone)
		assert.Equal(t, 50, p.CompletionPercentage)
		// 3*100/8 = 37.5 -> 38
		assert.Equal(t, 38, p.PointsCompletionPercentage)
		// 3/10 = 0.3
		assert.InDelta(t, 0.30, p.VelocityPointsPerDay, 0.001)
		assert.InDelta(t, 64.00, p.AvailableWorkingHours, 0.001)
		assert.InDelta(t, 40.00, p.AllocatedHours, 0.001)
		assert.InDelta(t, 62.5, p.UtilizationPercent, 0.001)
	})

	t.Run("статус DONE распознается без учета регистра", func(t *testing.T) {
		tasks := []*domain.SprintTask{
			task(1, int64Ptr(7), "done", intPtr(2)),
			task(1, int64Ptr(7), "Done", intPtr(1)),
		}

		progress := BuildProgress(sprint, nil, tasks)
		require.Len(t, progress, 1)
		assert.Equal(t, 2, progress[0].TasksDone)
		assert.Equal(t, 3, progress[0].PointsDone)
	})

	t.Run("задачи без исполнителя исключаются из результатов", func(t *testing.T) {
		tasks := []*domain.SprintTask{
			task(1, nil, "DONE", intPtr(5)),
			task(1, nil, "OPEN", nil),
		}

		progress := BuildProgress(sprint, nil, tasks)
		assert.Empty(t, progress)
	})

	t.Run("объединение: capacity без задач и задачи без capacity", func(t *testing.T) {
		capacities := []*domain.UserCapacity{
			{SprintID: 1, UserID: 1, UserName: "Alice", AvailableHours: 64},
		}
		tasks := []*domain.SprintTask{
			task(1, int64Ptr(2), "OPEN", intPtr(5)),
		}

		progress := BuildProgress(sprint, capacities, tasks)
		require.Len(t, progress, 2)

		byUser := make(map[int64]*domain.UserProgress)
		for _, p := range progress {
			byUser[p.UserID] = p
		}

		alice := byUser[1]
		require.NotNil(t, alice)
		assert.Zero(t, alice.TasksTotal)
		assert.Zero(t, alice.CompletionPercentage)
		assert.InDelta(t, 64.00, alice.AvailableWorkingHours, 0.001)

		stranger := byUser[2]
		require.NotNil(t, stranger)
		assert.Equal(t, "User 2", stranger.UserName)
		assert.Zero(t, stranger.AvailableWorkingHours)
		assert.Equal(t, 1, stranger.TasksTotal)
	})

	t.Run("точки без значения считаются нулем", func(t *testing.T) {
		tasks := []*domain.SprintTask{
			task(1, int64Ptr(3), "DONE", nil),
			task(1, int64Ptr(3), "DONE", intPtr(4)),
		}

		progress := BuildProgress(sprint, nil, tasks)
		require.Len(t, progress, 1)
		assert.Equal(t, 4, progress[0].PointsTotal)
		assert.Equal(t, 4, progress[0].PointsDone)
		assert.Equal(t, 100, progress[0].CompletionPercentage)
	})

	t.Run("процент завершения в границах 0..100 и ноль без задач", func(t *testing.T) {
		capacities := []*domain.UserCapacity{
			{SprintID: 1, UserID: 5, UserName: "Eve"},
		}

		progress := BuildProgress(sprint, capacities, nil)
		require.Len(t, progress, 1)
		assert.Zero(t, progress[0].CompletionPercentage)
		assert.Zero(t, progress[0].PointsCompletionPercentage)
	})

	t.Run("нулевая длительность спринта дает нулевую скорость", func(t *testing.T) {
		badSprint := testSprint(date(2025, time.June, 11), date(2025, time.June, 2), 0)
		tasks := []*domain.SprintTask{
			task(1, int64Ptr(7), "DONE", intPtr(8)),
		}

		progress := BuildProgress(badSprint, nil, tasks)
		require.Len(t, progress, 1)
		assert.Zero(t, progress[0].VelocityPointsPerDay)
	})

	t.Run("результат отсортирован по имени без учета регистра", func(t *testing.T) {
		capacities := []*domain.UserCapacity{
			{SprintID: 1, UserID: 1, UserName: "charlie"},
			{SprintID: 1, UserID: 2, UserName: "Alice"},
			{SprintID: 1, UserID: 3, UserName: "bob"},
		}

		progress := BuildProgress(sprint, capacities, nil)
		require.Len(t, progress, 3)
		assert.Equal(t, "Alice", progress[0].UserName)
		assert.Equal(t, "bob", progress[1].UserName)
		assert.Equal(t, "charlie", progress[2].UserName)
	})
}
