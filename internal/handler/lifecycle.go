package handler

import (
	"log/slog"
	"net/http"
	"time"

	"showcase/internal/domain/models"
	"showcase/internal/domain/services"
	"showcase/internal/httputil"
)

// LifecycleHandler serves soft-delete, restore and the owner-scoped
// deleted listing.
type LifecycleHandler struct {
	lifecycleService services.LifecycleService
	logger           *slog.Logger
}

// NewLifecycleHandler creates a new lifecycle handler
func NewLifecycleHandler(lifecycleService services.LifecycleService, logger *slog.Logger) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycleService: lifecycleService,
		logger:           logger,
	}
}

type deleteResponse struct {
	RestoreAvailableUntil time.Time `json:"restore_available_until"`
}

type eligibilityResponse struct {
	Eligible             bool  `json:"eligible"`
	TimeRemainingSeconds int64 `json:"time_remaining_seconds"`
}

type deletedProjectResponse struct {
	Project              models.Project `json:"project"`
	TimeRemainingSeconds int64          `json:"time_remaining_seconds"`
}

// SoftDelete hides a project and opens its restore window
// DELETE /api/projects/{id}
func (h *LifecycleHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	result, err := h.lifecycleService.SoftDelete(r.Context(), r.PathValue("id"), actor)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, deleteResponse{
		RestoreAvailableUntil: result.RestoreAvailableUntil,
	})
}

// Restore brings a soft-deleted project back while its window is open
// POST /api/projects/{id}/restore
func (h *LifecycleHandler) Restore(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	project, err := h.lifecycleService.Restore(r.Context(), r.PathValue("id"), actor)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// CheckRestoreEligibility reports whether a restore is still possible
// GET /api/projects/{id}/restore
func (h *LifecycleHandler) CheckRestoreEligibility(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	eligibility, err := h.lifecycleService.CheckRestoreEligibility(r.Context(), r.PathValue("id"), actor)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, eligibilityResponse{
		Eligible:             eligibility.Eligible,
		TimeRemainingSeconds: wholeSeconds(eligibility.TimeRemaining),
	})
}

// ListMyDeleted returns the caller's own restorable deleted projects
// GET /api/users/me/deleted-projects
func (h *LifecycleHandler) ListMyDeleted(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	deleted, err := h.lifecycleService.ListMyDeleted(r.Context(), actor)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	response := []deletedProjectResponse{}
	for _, d := range deleted {
		response = append(response, deletedProjectResponse{
			Project:              d.Project,
			TimeRemainingSeconds: wholeSeconds(d.TimeRemaining),
		})
	}

	httputil.RespondJSON(w, http.StatusOK, response)
}
