package domain

// Справочник типов задач. Оба отображения строятся один раз при старте
// и после этого не изменяются.

var taskTypeLabels = map[int]string{
	1: "FEATURE",
	2: "BUG",
	3: "IMPROVEMENT",
	4: "DOCUMENTATION",
	5: "RESEARCH",
	6: "TESTING",
}

var taskTypeIDs = func() map[string]int {
	m := make(map[string]int, len(taskTypeLabels))
	for id, label := range taskTypeLabels {
		m[label] = id
	}
	return m
}()

// TaskTypeLabel возвращает метку типа задачи по идентификатору
func TaskTypeLabel(id int) (string, bool) {
	label, ok := taskTypeLabels[id]
	return label, ok
}

// TaskTypeID возвращает идентификатор типа задачи по метке
func TaskTypeID(label string) (int, bool) {
	id, ok := taskTypeIDs[label]
	return id, ok
}
