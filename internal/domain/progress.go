package domain

// UserProgress - прогресс участника: показатели capacity вместе с
// агрегатами по задачам спринта. Вычисляется, не хранится.
type UserProgress struct {
	UserID   int64
	UserName string

	TotalWorkingHours     float64
	AvailableWorkingHours float64
	AllocatedHours        float64
	RemainingHours        float64
	UtilizationPercent    float64
	OverAllocated         bool

	TasksTotal  int
	TasksDone   int
	PointsTotal int
	PointsDone  int

	CompletionPercentage       int
	PointsCompletionPercentage int
	VelocityPointsPerDay       float64
}
