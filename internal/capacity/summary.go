package capacity

import "github.com/drozdovdm/sprint-tracker/internal/domain"

// BuildSummary сворачивает полный набор записей capacity спринта в
// сводку уровня спринта. Результат не зависит от порядка записей.
// Для пустого набора все счетчики и часы нулевые, но длительность,
// рабочие дни и праздники все равно заполняются из спринта.
func BuildSummary(sprint *domain.Sprint, capacities []*domain.UserCapacity) *domain.CapacitySummary {
	durationDays := DurationDays(sprint.FromDate, sprint.ToDate)

	summary := &domain.CapacitySummary{
		SprintDurationDays: durationDays,
		WorkingDays:        WorkingDays(durationDays, sprint.Holidays),
		Holidays:           sprint.Holidays,
	}
	if len(capacities) == 0 {
		return summary
	}

	summary.TotalTeamMembers = len(capacities)
	summary.ActiveMembers = len(capacities)

	var potential, available, allocated float64
	for _, c := range capacities {
		potential += c.TotalHours
		available += c.AvailableHours
		allocated += c.AllocatedHours
		summary.TotalLeaveDays += c.LeaveDays

		if c.LeaveDays > 0 {
			summary.MembersOnLeave++
		}
		if c.IsOverAllocated() {
			summary.OverAllocatedMembers++
		}
		if utilization(c) < DefaultUnderUtilizedThreshold {
			summary.UnderUtilizedMembers++
		}
	}

	summary.TotalPotentialHours = Round2(potential)
	summary.TotalCapacityHours = Round2(available)
	summary.TotalAllocatedHours = Round2(allocated)
	summary.TotalRemainingHours = Round2(summary.TotalCapacityHours - summary.TotalAllocatedHours)
	summary.TotalLostHoursToLeave = Round2(summary.TotalPotentialHours - summary.TotalCapacityHours)
	summary.TotalLostHoursToCapacity = summary.TotalLostHoursToLeave

	if summary.TotalCapacityHours > 0 {
		summary.AverageUtilization = Round2(summary.TotalAllocatedHours * 100 / summary.TotalCapacityHours)
	}
	if summary.TotalPotentialHours > 0 {
		summary.TeamEfficiency = Round2(summary.TotalCapacityHours * 100 / summary.TotalPotentialHours)
	}

	summary.HasCapacityRisks = summary.OverAllocatedMembers > 0 || summary.UnderUtilizedMembers > 0
	return summary
}

// utilization восстанавливает утилизацию из сохраненной записи теми же
// правилами, что и калькулятор: ноль при нулевой доступности.
func utilization(c *domain.UserCapacity) float64 {
	if c.AvailableHours <= 0 {
		return 0
	}
	return Round2(c.AllocatedHours * 100 / c.AvailableHours)
}
