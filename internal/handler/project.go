package handler

import (
	"log/slog"
	"net/http"

	"showcase/internal/domain/services"
	"showcase/internal/httputil"
)

// ProjectHandler serves project publishing and the read façade.
type ProjectHandler struct {
	queryService services.QueryService
	logger       *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(queryService services.QueryService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		queryService: queryService,
		logger:       logger,
	}
}

// HealthCheck reports service liveness
// GET /health
func (h *ProjectHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListProjects returns all visible projects. Anonymous requests are
// allowed; the actor only influences the liked/shared annotations.
// GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	actor := httputil.GetActor(r)

	projects, err := h.queryService.ListProjects(r.Context(), actor.ID)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}

// GetProject returns one visible project
// GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	actor := httputil.GetActor(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	project, err := h.queryService.GetProject(r.Context(), id, actor.ID)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// CreateProject publishes a new project authored by the caller
// POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req services.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.queryService.CreateProject(r.Context(), actor, &req)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, project)
}
