package services

import (
	"context"

	"showcase/internal/domain/models"
)

// CreateProjectRequest represents a request to publish a new project.
// Media upload happens elsewhere; the engine only needs the metadata.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectView decorates a project with the requesting actor's own
// engagement state so clients never have to scan the membership sets.
type ProjectView struct {
	models.Project
	CommentCount  int  `json:"comment_count"`
	LikedByActor  bool `json:"liked_by_actor"`
	SharedByActor bool `json:"shared_by_actor"`
}

// QueryService is the read façade over project records. Default queries
// treat soft-deleted records as nonexistent; only the lifecycle service's
// owner-scoped deleted listing sees them.
type QueryService interface {
	// CreateProject publishes a new project authored by the actor.
	CreateProject(ctx context.Context, actor models.Actor, req *CreateProjectRequest) (*models.Project, error)

	// GetProject returns a visible project. Soft-deleted records yield
	// not-found for everyone but their author.
	GetProject(ctx context.Context, projectID, actorID string) (*ProjectView, error)

	// ListProjects returns all visible (non-deleted) projects. actorID
	// may be empty for anonymous listings.
	ListProjects(ctx context.Context, actorID string) ([]ProjectView, error)
}
