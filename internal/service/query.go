package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"showcase/internal/config"
	"showcase/internal/domain"
	"showcase/internal/domain/models"
	"showcase/internal/domain/repositories"
	"showcase/internal/domain/services"
	authz "showcase/internal/service/auth"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// queryService is the read façade over project records, plus the minimal
// metadata create that publishes one. Soft-deleted records are invisible
// here: direct lookups return not-found to everyone but the owner, and
// listings skip them entirely.
type queryService struct {
	projectRepo repositories.ProjectRepository
	gate        *authz.Gate
	logger      *slog.Logger
	now         func() time.Time
}

// NewQueryService creates a new query service
func NewQueryService(
	projectRepo repositories.ProjectRepository,
	gate *authz.Gate,
	logger *slog.Logger,
) services.QueryService {
	return &queryService{
		projectRepo: projectRepo,
		gate:        gate,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateProject publishes a new project authored by the actor
func (s *queryService) CreateProject(ctx context.Context, actor models.Actor, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.gate.CanInteract(actor); err != nil {
		return nil, err
	}
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := s.now()
	project := &models.Project{
		ID: uuid.NewString(),
		Author: models.Author{
			ID:          actor.ID,
			DisplayName: actor.DisplayName,
			ImageRef:    actor.AvatarRef,
		},
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Likes:       []string{},
		Shares:      []string{},
		Comments:    []models.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"project_id", project.ID,
		"author_id", actor.ID,
		"title", project.Title,
	)

	return project, nil
}

// GetProject returns a visible project annotated with the requesting
// actor's own engagement state.
func (s *queryService) GetProject(ctx context.Context, projectID, actorID string) (*services.ProjectView, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	// A soft-deleted project is invisible to everyone but its author
	if project.IsDeleted && project.Author.ID != actorID {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", projectID)}
	}

	view := newProjectView(*project, actorID)
	return &view, nil
}

// ListProjects returns all visible projects, newest first
func (s *queryService) ListProjects(ctx context.Context, actorID string) ([]services.ProjectView, error) {
	projects, err := s.projectRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	views := []services.ProjectView{}
	for _, p := range projects {
		views = append(views, newProjectView(p, actorID))
	}
	return views, nil
}

func (s *queryService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required.Error("title cannot be empty"),
			validation.Length(1, config.MaxProjectTitleLength),
			validation.By(validateNotBlank),
		),
		validation.Field(&req.Description,
			validation.Length(0, config.MaxProjectDescriptionLength),
		),
	)
}

// validateNotBlank rejects values that are empty once trimmed
func validateNotBlank(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}

func newProjectView(p models.Project, actorID string) services.ProjectView {
	return services.ProjectView{
		Project:       p,
		CommentCount:  p.CommentCount(),
		LikedByActor:  actorID != "" && p.LikedBy(actorID),
		SharedByActor: actorID != "" && p.SharedBy(actorID),
	}
}
