package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CapacityParamsRequest struct {
	CapacityPercent *float64 `json:"capacity_percent,omitempty"`
	LeaveDays       *int     `json:"leave_days,omitempty"`
	DailyHours      *float64 `json:"daily_hours,omitempty"`
	AllocatedHours  *float64 `json:"allocated_hours,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

type UserCapacityRequest struct {
	UserID int64 `json:"user_id"`
	CapacityParamsRequest
}

type CreateSprintRequest struct {
	Name        string                `json:"name"`
	FromDate    string                `json:"from_date"`
	ToDate      string                `json:"to_date"`
	Holidays    int                   `json:"holidays"`
	TeamID      int                   `json:"team_id"`
	SprintPoint *int                  `json:"sprint_point,omitempty"`
	Remark      string                `json:"remark,omitempty"`
	CreatedBy   string                `json:"created_by,omitempty"`
	Capacities  []UserCapacityRequest `json:"capacities,omitempty"`
}

type SprintResponse struct {
	SprintID    int    `json:"sprint_id"`
	Name        string `json:"name"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	Holidays    int    `json:"holidays"`
	TeamID      int    `json:"team_id"`
	SprintPoint *int   `json:"sprint_point,omitempty"`
	Remark      string `json:"remark,omitempty"`
	Status      string `json:"status"`
	CreatedBy   string `json:"created_by,omitempty"`
}

type CreateSprintResponse struct {
	Sprint SprintResponse `json:"sprint"`
}

type UpdateSprintStatusRequest struct {
	SprintID int    `json:"sprint_id"`
	Status   string `json:"status"`
}

type DeleteSprintRequest struct {
	SprintID int `json:"sprint_id"`
}

type UpsertCapacityRequest struct {
	SprintID int   `json:"sprint_id"`
	UserID   int64 `json:"user_id"`
	CapacityParamsRequest
}

type RemoveCapacityRequest struct {
	SprintID int   `json:"sprint_id"`
	UserID   int64 `json:"user_id"`
}

type UpdateAllocationRequest struct {
	SprintID       int     `json:"sprint_id"`
	UserID         int64   `json:"user_id"`
	AllocatedHours float64 `json:"allocated_hours"`
}

type UserCapacityResponse struct {
	SprintID           int     `json:"sprint_id"`
	UserID             int64   `json:"user_id"`
	UserName           string  `json:"user_name"`
	CapacityPercent    float64 `json:"capacity_percent"`
	LeaveDays          int     `json:"leave_days"`
	DailyHours         float64 `json:"daily_hours"`
	TotalHours         float64 `json:"total_hours"`
	AvailableHours     float64 `json:"available_hours"`
	AllocatedHours     float64 `json:"allocated_hours"`
	RemainingHours     float64 `json:"remaining_hours"`
	UtilizationPercent float64 `json:"utilization_percent"`
	IsOverAllocated    bool    `json:"is_over_allocated"`
	Notes              string  `json:"notes,omitempty"`
}

type CapacityListResponse struct {
	SprintID   int                    `json:"sprint_id"`
	Capacities []UserCapacityResponse `json:"capacities"`
}

type SummaryResponse struct {
	TotalTeamMembers int `json:"total_team_members"`
	ActiveMembers    int `json:"active_members"`
	MembersOnLeave   int `json:"members_on_leave"`

	TotalCapacityHours  float64 `json:"total_capacity_hours"`
	TotalAllocatedHours float64 `json:"total_allocated_hours"`
	TotalRemainingHours float64 `json:"total_remaining_hours"`
	AverageUtilization  float64 `json:"average_utilization"`

	TotalPotentialHours      float64 `json:"total_potential_hours"`
	TotalLostHoursToLeave    float64 `json:"total_lost_hours_to_leave"`
	TotalLostHoursToCapacity float64 `json:"total_lost_hours_to_capacity"`

	TotalLeaveDays int     `json:"total_leave_days"`
	TeamEfficiency float64 `json:"team_efficiency"`

	OverAllocatedMembers int  `json:"over_allocated_members"`
	UnderUtilizedMembers int  `json:"under_utilized_members"`
	HasCapacityRisks     bool `json:"has_capacity_risks"`

	SprintDurationDays int `json:"sprint_duration_days"`
	WorkingDays        int `json:"working_days"`
	Holidays           int `json:"holidays"`
}

type UserProgressResponse struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`

	TotalWorkingHours     float64 `json:"total_working_hours"`
	AvailableWorkingHours float64 `json:"available_working_hours"`
	AllocatedHours        float64 `json:"allocated_hours"`
	RemainingHours        float64 `json:"remaining_hours"`
	UtilizationPercent    float64 `json:"utilization_percent"`
	IsOverAllocated       bool    `json:"is_over_allocated"`

	TasksTotal  int `json:"tasks_total"`
	TasksDone   int `json:"tasks_done"`
	PointsTotal int `json:"points_total"`
	PointsDone  int `json:"points_done"`

	CompletionPercentage       int     `json:"completion_percentage"`
	PointsCompletionPercentage int     `json:"points_completion_percentage"`
	VelocityPointsPerDay       float64 `json:"velocity_points_per_day"`
}

type ProgressResponse struct {
	SprintID int                    `json:"sprint_id"`
	Progress []UserProgressResponse `json:"progress"`
}

type TaskResponse struct {
	TaskID     int    `json:"task_id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	TaskType   string `json:"task_type"`
	AssignedTo *int64 `json:"assigned_to,omitempty"`
	Points     *int   `json:"points,omitempty"`
}

type TaskListResponse struct {
	SprintID int            `json:"sprint_id"`
	Tasks    []TaskResponse `json:"tasks"`
}

type TeamMemberResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type TeamMembersResponse struct {
	TeamID  int                  `json:"team_id"`
	Members []TeamMemberResponse `json:"members"`
}
