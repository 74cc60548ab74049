package domain

// CapacitySummary - агрегированная сводка по всему спринту.
// Вычисляется из полного набора записей capacity, не хранится.
type CapacitySummary struct {
	TotalTeamMembers int
	ActiveMembers    int
	MembersOnLeave   int

	TotalCapacityHours  float64
	TotalAllocatedHours float64
	TotalRemainingHours float64
	AverageUtilization  float64

	TotalPotentialHours      float64
	TotalLostHoursToLeave    float64
	TotalLostHoursToCapacity float64

	TotalLeaveDays int
	TeamEfficiency float64

	OverAllocatedMembers int
	UnderUtilizedMembers int
	HasCapacityRisks     bool

	SprintDurationDays int
	WorkingDays        int
	Holidays           int
}
