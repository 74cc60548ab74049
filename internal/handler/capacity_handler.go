package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/drozdovdm/sprint-tracker/internal/domain"
)

func (h *Handler) AddCapacity(w http.ResponseWriter, r *http.Request) {
	var req UpsertCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	capacity, err := h.capacityService.AddUserCapacity(r.Context(), req.SprintID, req.UserID, httpParamsToDomain(req.CapacityParamsRequest))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainCapacityToHTTP(capacity))
}

func (h *Handler) UpsertCapacity(w http.ResponseWriter, r *http.Request) {
	var req UpsertCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	capacity, err := h.capacityService.UpsertUserCapacity(r.Context(), req.SprintID, req.UserID, httpParamsToDomain(req.CapacityParamsRequest))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainCapacityToHTTP(capacity))
}

func (h *Handler) ListCapacities(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := h.sprintIDFromQuery(w, r)
	if !ok {
		return
	}

	capacities, err := h.capacityService.ListUserCapacities(r.Context(), sprintID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CapacityListResponse{
		SprintID:   sprintID,
		Capacities: domainCapacitiesToHTTP(capacities),
	})
}

func (h *Handler) RemoveCapacity(w http.ResponseWriter, r *http.Request) {
	var req RemoveCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := h.capacityService.RemoveUserFromSprint(r.Context(), req.SprintID, req.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateAllocation(w http.ResponseWriter, r *http.Request) {
	var req UpdateAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	capacity, err := h.capacityService.UpdateAllocation(r.Context(), req.SprintID, req.UserID, req.AllocatedHours)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainCapacityToHTTP(capacity))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := h.sprintIDFromQuery(w, r)
	if !ok {
		return
	}

	summary, err := h.capacityService.GetSummary(r.Context(), sprintID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainSummaryToHTTP(summary))
}

func (h *Handler) GetOverAllocated(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := h.sprintIDFromQuery(w, r)
	if !ok {
		return
	}

	capacities, err := h.capacityService.GetOverAllocated(r.Context(), sprintID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CapacityListResponse{
		SprintID:   sprintID,
		Capacities: domainCapacitiesToHTTP(capacities),
	})
}

func (h *Handler) GetUnderUtilized(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := h.sprintIDFromQuery(w, r)
	if !ok {
		return
	}

	var threshold *float64
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.handleError(w, &domain.DomainError{
				Code:    "BAD_REQUEST",
				Message: "threshold must be a number",
			})
			return
		}
		threshold = &value
	}

	capacities, err := h.capacityService.GetUnderUtilized(r.Context(), sprintID, threshold)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CapacityListResponse{
		SprintID:   sprintID,
		Capacities: domainCapacitiesToHTTP(capacities),
	})
}

func (h *Handler) GetMembersOnLeave(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := h.sprintIDFromQuery(w, r)
	if !ok {
		return
	}

	capacities, err := h.capacityService.GetMembersOnLeave(r.Context(), sprintID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CapacityListResponse{
		SprintID:   sprintID,
		Capacities: domainCapacitiesToHTTP(capacities),
	})
}

func (h *Handler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("team_id")
	if raw == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_id parameter is required",
		})
		return
	}
	teamID, err := strconv.Atoi(raw)
	if err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_id must be an integer",
		})
		return
	}

	members, err := h.capacityService.GetTeamMembers(r.Context(), teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := TeamMembersResponse{
		TeamID:  teamID,
		Members: make([]TeamMemberResponse, 0, len(members)),
	}
	for _, member := range members {
		response.Members = append(response.Members, TeamMemberResponse{
			UserID: member.UserID,
			Name:   member.Name,
			Email:  member.Email,
			Role:   member.Role,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
