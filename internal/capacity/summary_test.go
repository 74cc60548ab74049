package capacity

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

func testSprint(from, to time.Time, holidays int) *domain.Sprint {
	return &domain.Sprint{
		ID:       1,
		Name:     "Sprint 1",
		FromDate: from,
		ToDate:   to,
		Holidays: holidays,
		Status:   domain.SprintPlanning,
	}
}

func TestBuildSummary(t *testing.T) {
	t.Run("пустой реестр: нули, но длительность заполнена из спринта", func(t *testing.T) {
		sprint := testSprint(date(2025, time.June, 2), date(2025, time.June, 15), 2)

		summary := BuildSummary(sprint, nil)

		assert.Equal(t, 14, summary.SprintDurationDays)
		assert.Equal(t, 12, summary.WorkingDays)
		assert.Equal(t, 2, summary.Holidays)
		assert.Zero(t, summary.TotalTeamMembers)
		assert.Zero(t, summary.TotalPotentialHours)
		assert.Zero(t, summary.TotalCapacityHours)
		assert.Zero(t, summary.TotalAllocatedHours)
		assert.Zero(t, summary.AverageUtilization)
		assert.Zero(t, summary.TeamEfficiency)
		assert.False(t, summary.HasCapacityRisks)
	})

	t.Run("сводка по нескольким участникам", func(t *testing.T) {
		sprint := testSprint(date(2025, time.June, 2), date(2025, time.June, 11), 0)
		capacities := []*domain.UserCapacity{
			{
				UserID: 1, UserName: "Alice", LeaveDays: 0,
				TotalHours: 80, AvailableHours: 80, AllocatedHours: 72, RemainingHours: 8,
			},
			{
				UserID: 2, UserName: "Bob", LeaveDays: 2,
				TotalHours: 80, AvailableHours: 64, AllocatedHours: 70, RemainingHours: -6,
			},
			{
				UserID: 3, UserName: "Carol", LeaveDays: 0,
				TotalHours: 80, AvailableHours: 40, AllocatedHours: 10, RemainingHours: 30,
			},
		}

		summary := BuildSummary(sprint, capacities)

		assert.Equal(t, 3, summary.TotalTeamMembers)
		assert.Equal(t, 1, summary.MembersOnLeave)
		assert.Equal(t, 2, summary.TotalLeaveDays)
		assert.InDelta(t, 240.00, summary.TotalPotentialHours, 0.001)
		assert.InDelta(t, 184.00, summary.TotalCapacityHours, 0.001)
		assert.InDelta(t, 152.00, summary.TotalAllocatedHours, 0.001)
		assert.InDelta(t, 32.00, summary.TotalRemainingHours, 0.001)
		assert.InDelta(t, 56.00, summary.TotalLostHoursToLeave, 0.001)
		// 152*100/184 = 82.608... -> 82.61
		assert.InDelta(t, 82.61, summary.AverageUtilization, 0.001)
		// 184*100/240 = 76.666... -> 76.67
		assert.InDelta(t, 76.67, summary.TeamEfficiency, 0.001)
		assert.Equal(t, 1, summary.OverAllocatedMembers, "Bob переаллоцирован")
		assert.Equal(t, 1, summary.UnderUtilizedMembers, "Carol недозагружена: 25%")
		assert.True(t, summary.HasCapacityRisks)
	})

	t.Run("сумма не зависит от порядка записей", func(t *testing.T) {
		sprint := testSprint(date(2025, time.June, 2), date(2025, time.June, 15), 2)

		capacities := make([]*domain.UserCapacity, 0, 20)
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 20; i++ {
			available := float64(rng.Intn(80)) + 0.25
			capacities = append(capacities, &domain.UserCapacity{
				UserID:         int64(i + 1),
				LeaveDays:      rng.Intn(4),
				TotalHours:     112,
				AvailableHours: available,
				AllocatedHours: float64(rng.Intn(90)) + 0.5,
			})
		}

		reference := BuildSummary(sprint, capacities)

		for trial := 0; trial < 5; trial++ {
			shuffled := make([]*domain.UserCapacity, len(capacities))
			copy(shuffled, capacities)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})

			require.Equal(t, reference, BuildSummary(sprint, shuffled))
		}
	})

	t.Run("нулевая доступность не дает деления на ноль", func(t *testing.T) {
		sprint := testSprint(date(2025, time.June, 2), date(2025, time.June, 15), 0)
		capacities := []*domain.UserCapacity{
			{UserID: 1, TotalHours: 0, AvailableHours: 0, AllocatedHours: 0},
		}

		summary := BuildSummary(sprint, capacities)

		assert.Zero(t, summary.AverageUtilization)
		assert.Zero(t, summary.TeamEfficiency)
		assert.Equal(t, 1, summary.UnderUtilizedMembers, "нулевая утилизация ниже порога")
		assert.True(t, summary.HasCapacityRisks)
	})
}
