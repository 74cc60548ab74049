package capacity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

type taskAgg struct {
	tasksTotal  int
	tasksDone   int
	pointsTotal int
	pointsDone  int
}

// BuildProgress соединяет записи capacity спринта с его задачами и
// строит прогресс по каждому участнику. В результат попадает
// объединение участников из обеих сторон: участник с capacity без задач
// (и наоборот) присутствует с нулями на отсутствующей стороне. Задачи
// без исполнителя в персональные результаты не попадают.
func BuildProgress(sprint *domain.Sprint, capacities []*domain.UserCapacity, tasks []*domain.SprintTask) []*domain.UserProgress {
	durationDays := DurationDays(sprint.FromDate, sprint.ToDate)

	capByUser := make(map[int64]*domain.UserCapacity, len(capacities))
	for _, c := range capacities {
		capByUser[c.UserID] = c
	}

	aggByUser := make(map[int64]*taskAgg)
	for _, t := range tasks {
		if t.AssignedTo == nil {
			continue
		}
		agg := aggByUser[*t.AssignedTo]
		if agg == nil {
			agg = &taskAgg{}
			aggByUser[*t.AssignedTo] = agg
		}
		agg.tasksTotal++
		points := 0
		if t.Points != nil {
			points = *t.Points
		}
		agg.pointsTotal += points
		if strings.EqualFold(t.Status, domain.TaskStatusDone) {
			agg.tasksDone++
			agg.pointsDone += points
		}
	}

	userIDs := make(map[int64]struct{}, len(capByUser)+len(aggByUser))
	for id := range capByUser {
		userIDs[id] = struct{}{}
	}
	for id := range aggByUser {
		userIDs[id] = struct{}{}
	}

	result := make([]*domain.UserProgress, 0, len(userIDs))
	for id := range userIDs {
		p := &domain.UserProgress{UserID: id}

		if c := capByUser[id]; c != nil {
			p.UserName = c.UserName
			p.TotalWorkingHours = c.TotalHours
			p.AvailableWorkingHours = c.AvailableHours
			p.AllocatedHours = c.AllocatedHours
			p.RemainingHours = c.RemainingHours
			p.UtilizationPercent = utilization(c)
			p.OverAllocated = c.IsOverAllocated()
		} else {
			p.UserName = fmt.Sprintf("User %d", id)
		}

		agg := aggByUser[id]
		if agg == nil {
			agg = &taskAgg{}
		}
		p.TasksTotal = agg.tasksTotal
		p.TasksDone = agg.tasksDone
		p.PointsTotal = agg.pointsTotal
		p.PointsDone = agg.pointsDone

		if agg.tasksTotal > 0 {
			p.CompletionPercentage = roundInt(float64(agg.tasksDone) * 100 / float64(agg.tasksTotal))
		}
		if agg.pointsTotal > 0 {
			p.PointsCompletionPercentage = roundInt(float64(agg.pointsDone) * 100 / float64(agg.pointsTotal))
		}
		if durationDays > 0 {
			p.VelocityPointsPerDay = Round2(float64(agg.pointsDone) / float64(durationDays))
		}

		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := strings.ToLower(result[i].UserName), strings.ToLower(result[j].UserName)
		if a == b {
			return result[i].UserID < result[j].UserID
		}
		return a < b
	})
	return result
}
