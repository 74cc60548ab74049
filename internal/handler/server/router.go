package server

import (
	"net/http"

	"github.com/drozdovdm/sprint-tracker/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /sprint/create", h.CreateSprint)
	mux.HandleFunc("GET /sprint/get", h.GetSprint)
	mux.HandleFunc("POST /sprint/status", h.UpdateSprintStatus)
	mux.HandleFunc("POST /sprint/delete", h.DeleteSprint)

	mux.HandleFunc("POST /sprint/capacity/add", h.AddCapacity)
	mux.HandleFunc("POST /sprint/capacity/upsert", h.UpsertCapacity)
	mux.HandleFunc("GET /sprint/capacities", h.ListCapacities)
	mux.HandleFunc("POST /sprint/capacity/remove", h.RemoveCapacity)
	mux.HandleFunc("POST /sprint/capacity/allocation", h.UpdateAllocation)

	mux.HandleFunc("GET /sprint/summary", h.GetSummary)
	mux.HandleFunc("GET /sprint/risks/overallocated", h.GetOverAllocated)
	mux.HandleFunc("GET /sprint/risks/underutilized", h.GetUnderUtilized)
	mux.HandleFunc("GET /sprint/onleave", h.GetMembersOnLeave)

	mux.HandleFunc("GET /sprint/progress", h.GetProgress)
	mux.HandleFunc("GET /sprint/tasks", h.GetTasks)
	mux.HandleFunc("GET /team/members", h.GetTeamMembers)
}
