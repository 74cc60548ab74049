package handler

import "github.com/drozdovdm/sprint-tracker/internal/service"

type Handler struct {
	sprintService   service.SprintService
	capacityService service.CapacityService
	progressService service.ProgressService
}

func NewHandler(
	sprintService service.SprintService,
	capacityService service.CapacityService,
	progressService service.ProgressService,
) *Handler {
	return &Handler{
		sprintService:   sprintService,
		capacityService: capacityService,
		progressService: progressService,
	}
}
