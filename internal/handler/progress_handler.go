package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := h.sprintIDFromQuery(w, r)
	if !ok {
		return
	}

	progress, err := h.progressService.GetSprintProgress(r.Context(), sprintID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ProgressResponse{
		SprintID: sprintID,
		Progress: domainProgressToHTTP(progress),
	})
}

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := h.sprintIDFromQuery(w, r)
	if !ok {
		return
	}

	tasks, err := h.progressService.ListSprintTasks(r.Context(), sprintID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TaskListResponse{
		SprintID: sprintID,
		Tasks:    domainTasksToHTTP(tasks),
	})
}
