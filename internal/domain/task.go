package domain

// TaskStatusDone - статус завершенной задачи, сравнение без учета регистра
const TaskStatusDone = "DONE"

// SprintTask - элемент бэклога, привязанный к спринту.
// Для ядра capacity/progress это внешние данные только для чтения.
type SprintTask struct {
	ID         int
	SprintID   int
	AssignedTo *int64
	Status     string
	Points     *int
	TaskType   int
	Title      string
}
