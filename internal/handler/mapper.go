package handler

import (
	"time"

	"github.com/drozdovdm/sprint-tracker/internal/capacity"
	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

const dateLayout = "2006-01-02"

func domainSprintToHTTP(sprint *domain.Sprint) SprintResponse {
	return SprintResponse{
		SprintID:    sprint.ID,
		Name:        sprint.Name,
		FromDate:    sprint.FromDate.Format(dateLayout),
		ToDate:      sprint.ToDate.Format(dateLayout),
		Holidays:    sprint.Holidays,
		TeamID:      sprint.TeamID,
		SprintPoint: sprint.SprintPoint,
		Remark:      sprint.Remark,
		Status:      sprint.Status.String(),
		CreatedBy:   sprint.CreatedBy,
	}
}

func httpParamsToDomain(req CapacityParamsRequest) domain.CapacityParams {
	return domain.CapacityParams{
		CapacityPercent: req.CapacityPercent,
		LeaveDays:       req.LeaveDays,
		DailyHours:      req.DailyHours,
		AllocatedHours:  req.AllocatedHours,
		Notes:           req.Notes,
	}
}

func domainCapacityToHTTP(c *domain.UserCapacity) UserCapacityResponse {
	utilization := 0.0
	if c.AvailableHours > 0 {
		utilization = capacity.Round2(c.AllocatedHours * 100 / c.AvailableHours)
	}

	return UserCapacityResponse{
		SprintID:           c.SprintID,
		UserID:             c.UserID,
		UserName:           c.UserName,
		CapacityPercent:    c.CapacityPercent,
		LeaveDays:          c.LeaveDays,
		DailyHours:         c.DailyHours,
		TotalHours:         c.TotalHours,
		AvailableHours:     c.AvailableHours,
		AllocatedHours:     c.AllocatedHours,
		RemainingHours:     c.RemainingHours,
		UtilizationPercent: utilization,
		IsOverAllocated:    c.IsOverAllocated(),
		Notes:              c.Notes,
	}
}

func domainCapacitiesToHTTP(capacities []*domain.UserCapacity) []UserCapacityResponse {
	result := make([]UserCapacityResponse, 0, len(capacities))
	for _, c := range capacities {
		result = append(result, domainCapacityToHTTP(c))
	}
	return result
}

func domainSummaryToHTTP(s *domain.CapacitySummary) SummaryResponse {
	return SummaryResponse{
		TotalTeamMembers:         s.TotalTeamMembers,
		ActiveMembers:            s.ActiveMembers,
		MembersOnLeave:           s.MembersOnLeave,
		TotalCapacityHours:       s.TotalCapacityHours,
		TotalAllocatedHours:      s.TotalAllocatedHours,
		TotalRemainingHours:      s.TotalRemainingHours,
		AverageUtilization:       s.AverageUtilization,
		TotalPotentialHours:      s.TotalPotentialHours,
		TotalLostHoursToLeave:    s.TotalLostHoursToLeave,
		TotalLostHoursToCapacity: s.TotalLostHoursToCapacity,
		TotalLeaveDays:           s.TotalLeaveDays,
		TeamEfficiency:           s.TeamEfficiency,
		OverAllocatedMembers:     s.OverAllocatedMembers,
		UnderUtilizedMembers:     s.UnderUtilizedMembers,
		HasCapacityRisks:         s.HasCapacityRisks,
		SprintDurationDays:       s.SprintDurationDays,
		WorkingDays:              s.WorkingDays,
		Holidays:                 s.Holidays,
	}
}

func domainProgressToHTTP(progress []*domain.UserProgress) []UserProgressResponse {
	result := make([]UserProgressResponse, 0, len(progress))
	for _, p := range progress {
		result = append(result, UserProgressResponse{
			UserID:                     p.UserID,
			UserName:                   p.UserName,
			TotalWorkingHours:          p.TotalWorkingHours,
			AvailableWorkingHours:      p.AvailableWorkingHours,
			AllocatedHours:             p.AllocatedHours,
			RemainingHours:             p.RemainingHours,
			UtilizationPercent:         p.UtilizationPercent,
			IsOverAllocated:            p.OverAllocated,
			TasksTotal:                 p.TasksTotal,
			TasksDone:                  p.TasksDone,
			PointsTotal:                p.PointsTotal,
			PointsDone:                 p.PointsDone,
			CompletionPercentage:       p.CompletionPercentage,
			PointsCompletionPercentage: p.PointsCompletionPercentage,
			VelocityPointsPerDay:       p.VelocityPointsPerDay,
		})
	}
	return result
}

func domainTasksToHTTP(tasks []*domain.SprintTask) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		label, _ := domain.TaskTypeLabel(task.TaskType)
		result = append(result, TaskResponse{
			TaskID:     task.ID,
			Title:      task.Title,
			Status:     task.Status,
			TaskType:   label,
			AssignedTo: task.AssignedTo,
			Points:     task.Points,
		})
	}
	return result
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseSprintStatus(value string) (domain.SprintStatus, bool) {
	switch value {
	case "PLANNING":
		return domain.SprintPlanning, true
	case "ACTIVE":
		return domain.SprintActive, true
	case "COMPLETED":
		return domain.SprintCompleted, true
	case "CANCELLED":
		return domain.SprintCancelled, true
	default:
		return 0, false
	}
}
