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

// interactionService implements the InteractionService interface. Every
// mutation runs as one transaction: lock the project row, mutate the
// in-memory record through its collection methods, write the whole row
// back. Counters are recomputed from their collections inside those
// methods, so no operation here ever touches a count directly.
type interactionService struct {
	projectRepo repositories.ProjectRepository
	txManager   repositories.TransactionManager
	gate        *authz.Gate
	logger      *slog.Logger
	now         func() time.Time
}

// NewInteractionService creates a new interaction service
func NewInteractionService(
	projectRepo repositories.ProjectRepository,
	txManager repositories.TransactionManager,
	gate *authz.Gate,
	logger *slog.Logger,
) services.InteractionService {
	return &interactionService{
		projectRepo: projectRepo,
		txManager:   txManager,
		gate:        gate,
		logger:      logger,
		now:         time.Now,
	}
}

// ToggleLike flips the actor's membership in the project's likes set
func (s *interactionService) ToggleLike(ctx context.Context, projectID string, actor models.Actor) (*services.LikeResult, error) {
	if err := s.gate.CanInteract(actor); err != nil {
		return nil, err
	}

	var result services.LikeResult
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		project, err := s.loadInteractable(txCtx, projectID)
		if err != nil {
			return err
		}

		result.Liked = project.ToggleLike(actor.ID)
		result.LikeCount = project.LikeCount
		project.UpdatedAt = s.now()

		return s.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("like toggled",
		"project_id", projectID,
		"actor_id", actor.ID,
		"liked", result.Liked,
		"like_count", result.LikeCount,
	)

	return &result, nil
}

// AddComment appends a comment authored by the actor
func (s *interactionService) AddComment(ctx context.Context, projectID string, actor models.Actor, req *services.AddCommentRequest) (*models.Comment, error) {
	if err := s.gate.CanInteract(actor); err != nil {
		return nil, err
	}
	if err := validateCommentText(req.Text); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	comment := models.Comment{
		ID:              uuid.NewString(),
		AuthorID:        actor.ID,
		AuthorName:      actor.DisplayName,
		AuthorAvatarRef: actor.AvatarRef,
		Text:            strings.TrimSpace(req.Text),
		CreatedAt:       s.now(),
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		project, err := s.loadInteractable(txCtx, projectID)
		if err != nil {
			return err
		}

		if project.CommentCount() >= config.MaxCommentsPerProject {
			return fmt.Errorf("%w: project has reached the comment limit", domain.ErrValidation)
		}

		project.AddComment(comment)
		project.UpdatedAt = s.now()

		return s.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment added",
		"project_id", projectID,
		"comment_id", comment.ID,
		"actor_id", actor.ID,
	)

	return &comment, nil
}

// EditComment replaces a comment's text in place
func (s *interactionService) EditComment(ctx context.Context, projectID, commentID string, actor models.Actor, req *services.EditCommentRequest) (*models.Comment, error) {
	if err := s.gate.CanInteract(actor); err != nil {
		return nil, err
	}
	if err := validateCommentText(req.Text); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var edited models.Comment
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		project, err := s.loadInteractable(txCtx, projectID)
		if err != nil {
			return err
		}

		comment := project.CommentByID(commentID)
		if comment == nil {
			return &domain.NotFoundError{Message: fmt.Sprintf("comment %s not found", commentID)}
		}

		if err := s.gate.CanModifyComment(actor, project, comment); err != nil {
			return err
		}

		project.EditComment(commentID, strings.TrimSpace(req.Text))
		project.UpdatedAt = s.now()
		edited = *comment

		return s.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment edited",
		"project_id", projectID,
		"comment_id", commentID,
		"actor_id", actor.ID,
	)

	return &edited, nil
}

// DeleteComment removes a comment from the project's embedded list
func (s *interactionService) DeleteComment(ctx context.Context, projectID, commentID string, actor models.Actor) error {
	if err := s.gate.CanInteract(actor); err != nil {
		return err
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		project, err := s.loadInteractable(txCtx, projectID)
		if err != nil {
			return err
		}

		comment := project.CommentByID(commentID)
		if comment == nil {
			return &domain.NotFoundError{Message: fmt.Sprintf("comment %s not found", commentID)}
		}

		if err := s.gate.CanModifyComment(actor, project, comment); err != nil {
			return err
		}

		project.RemoveComment(commentID)
		project.UpdatedAt = s.now()

		return s.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return err
	}

	s.logger.Info("comment deleted",
		"project_id", projectID,
		"comment_id", commentID,
		"actor_id", actor.ID,
	)

	return nil
}

// RecordShare adds the actor to the project's shares set. Only the first
// share per actor writes anything; repeats return the unchanged count.
func (s *interactionService) RecordShare(ctx context.Context, projectID string, actor models.Actor) (*services.ShareResult, error) {
	if err := s.gate.CanInteract(actor); err != nil {
		return nil, err
	}

	var result services.ShareResult
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		project, err := s.loadInteractable(txCtx, projectID)
		if err != nil {
			return err
		}

		first := project.RecordShare(actor.ID)
		result.Shared = true
		result.ShareCount = project.ShareCount

		if !first {
			// Repeat share: nothing changed, skip the write
			return nil
		}

		project.UpdatedAt = s.now()
		return s.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("share recorded",
		"project_id", projectID,
		"actor_id", actor.ID,
		"share_count", result.ShareCount,
	)

	return &result, nil
}

// loadInteractable fetches and row-locks a project, treating soft-deleted
// records as nonexistent: they are not interactable.
func (s *interactionService) loadInteractable(ctx context.Context, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.GetForUpdate(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.IsDeleted {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", projectID)}
	}
	return project, nil
}

// validateCommentText rejects blank or oversized comment text
func validateCommentText(text string) error {
	return validation.Validate(strings.TrimSpace(text),
		validation.Required.Error("comment cannot be empty"),
		validation.Length(1, config.MaxCommentLength),
	)
}
