package handler

import (
	"log/slog"
	"net/http"

	"showcase/internal/domain/services"
	"showcase/internal/httputil"
)

// InteractionHandler serves likes, comments and shares.
type InteractionHandler struct {
	interactionService services.InteractionService
	logger             *slog.Logger
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(interactionService services.InteractionService, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		logger:             logger,
	}
}

// ToggleLike flips the caller's like on a project
// POST /api/projects/{id}/like
func (h *InteractionHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	result, err := h.interactionService.ToggleLike(r.Context(), r.PathValue("id"), actor)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// RecordShare records the caller's share of a project
// POST /api/projects/{id}/share
func (h *InteractionHandler) RecordShare(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	result, err := h.interactionService.RecordShare(r.Context(), r.PathValue("id"), actor)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// AddComment appends a comment to a project
// POST /api/projects/{id}/comments
func (h *InteractionHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req services.AddCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.interactionService.AddComment(r.Context(), r.PathValue("id"), actor, &req)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, comment)
}

// EditComment replaces a comment's text
// PATCH /api/projects/{id}/comments/{commentID}
func (h *InteractionHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req services.EditCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.interactionService.EditComment(
		r.Context(), r.PathValue("id"), r.PathValue("commentID"), actor, &req)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, comment)
}

// DeleteComment removes a comment
// DELETE /api/projects/{id}/comments/{commentID}
func (h *InteractionHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	err := h.interactionService.DeleteComment(
		r.Context(), r.PathValue("id"), r.PathValue("commentID"), actor)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
