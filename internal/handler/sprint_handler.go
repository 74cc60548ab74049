package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
	"github.com/drozdovdm/sprint-tracker/internal/service"
)

func (h *Handler) CreateSprint(w http.ResponseWriter, r *http.Request) {
	var req CreateSprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		h.handleError(w, domain.NewValidationError("from_date must be in YYYY-MM-DD format"))
		return
	}
	toDate, err := parseDate(req.ToDate)
	if err != nil {
		h.handleError(w, domain.NewValidationError("to_date must be in YYYY-MM-DD format"))
		return
	}

	spec := &service.SprintCreationSpec{
		Name:        req.Name,
		FromDate:    fromDate,
		ToDate:      toDate,
		Holidays:    req.Holidays,
		TeamID:      req.TeamID,
		SprintPoint: req.SprintPoint,
		Remark:      req.Remark,
		CreatedBy:   req.CreatedBy,
	}
	for _, c := range req.Capacities {
		spec.Capacities = append(spec.Capacities, service.UserCapacitySpec{
			UserID: c.UserID,
			Params: httpParamsToDomain(c.CapacityParamsRequest),
		})
	}

	sprint, err := h.sprintService.CreateSprintWithCapacity(r.Context(), spec)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateSprintResponse{
		Sprint: domainSprintToHTTP(sprint),
	})
}

func (h *Handler) GetSprint(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := h.sprintIDFromQuery(w, r)
	if !ok {
		return
	}

	sprint, err := h.sprintService.GetSprint(r.Context(), sprintID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainSprintToHTTP(sprint))
}

func (h *Handler) UpdateSprintStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateSprintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	status, ok := parseSprintStatus(req.Status)
	if !ok {
		h.handleError(w, domain.NewValidationError("unknown sprint status: "+req.Status))
		return
	}

	sprint, err := h.sprintService.UpdateStatus(r.Context(), req.SprintID, status)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainSprintToHTTP(sprint))
}

func (h *Handler) DeleteSprint(w http.ResponseWriter, r *http.Request) {
	var req DeleteSprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := h.sprintService.DeleteSprint(r.Context(), req.SprintID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// sprintIDFromQuery извлекает обязательный параметр sprint_id
func (h *Handler) sprintIDFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("sprint_id")
	if raw == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "sprint_id parameter is required",
		})
		return 0, false
	}

	sprintID, err := strconv.Atoi(raw)
	if err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "sprint_id must be an integer",
		})
		return 0, false
	}

	return sprintID, true
}
