package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"showcase/internal/domain"
	"showcase/internal/domain/models"
	"showcase/internal/domain/repositories"
	"showcase/internal/domain/services"
	authz "showcase/internal/service/auth"
)

// lifecycleService implements the soft-delete / restore state machine.
// Expiry is a derived state: nothing sweeps deleted records in the
// background, the stored deadline is compared against the clock at each
// read or restore attempt. A deleted project past its deadline stays
// soft-deleted indefinitely; it is simply no longer offered for restore.
type lifecycleService struct {
	projectRepo repositories.ProjectRepository
	txManager   repositories.TransactionManager
	gate        *authz.Gate
	logger      *slog.Logger
	now         func() time.Time
}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService(
	projectRepo repositories.ProjectRepository,
	txManager repositories.TransactionManager,
	gate *authz.Gate,
	logger *slog.Logger,
) services.LifecycleService {
	return &lifecycleService{
		projectRepo: projectRepo,
		txManager:   txManager,
		gate:        gate,
		logger:      logger,
		now:         time.Now,
	}
}

// SoftDelete marks the project deleted and opens its restore window
func (s *lifecycleService) SoftDelete(ctx context.Context, projectID string, actor models.Actor) (*services.DeleteResult, error) {
	if err := s.gate.RequireActor(actor); err != nil {
		return nil, err
	}

	var result services.DeleteResult
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		project, err := s.projectRepo.GetForUpdate(txCtx, projectID)
		if err != nil {
			return err
		}
		if project.IsDeleted {
			// Already deleted: nothing visible left to delete
			return &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", projectID)}
		}

		if err := s.gate.CanManageProject(actor, project); err != nil {
			return err
		}

		now := s.now()
		project.SoftDelete(actor.ID, now)
		project.UpdatedAt = now
		result.RestoreAvailableUntil = project.RestoreDeadline()

		return s.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project soft-deleted",
		"project_id", projectID,
		"actor_id", actor.ID,
		"restore_available_until", result.RestoreAvailableUntil,
	)

	return &result, nil
}

// Restore returns a soft-deleted project to the active state
func (s *lifecycleService) Restore(ctx context.Context, projectID string, actor models.Actor) (*models.Project, error) {
	if err := s.gate.RequireActor(actor); err != nil {
		return nil, err
	}

	var restored *models.Project
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		project, err := s.projectRepo.GetForUpdate(txCtx, projectID)
		if err != nil {
			return err
		}
		if !project.IsDeleted {
			// Already active: nothing eligible to restore
			return &domain.NotFoundError{Message: fmt.Sprintf("no deleted project %s to restore", projectID)}
		}

		if err := s.gate.CanManageProject(actor, project); err != nil {
			return err
		}

		now := s.now()
		if !project.Restorable(now) {
			return &domain.RestoreExpiredError{
				Message: fmt.Sprintf("project %s can no longer be restored", projectID),
			}
		}

		project.ClearDeletion()
		project.UpdatedAt = now
		restored = project

		return s.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project restored",
		"project_id", projectID,
		"actor_id", actor.ID,
	)

	return restored, nil
}

// CheckRestoreEligibility is a pure read of the derived restore state
func (s *lifecycleService) CheckRestoreEligibility(ctx context.Context, projectID string, actor models.Actor) (*services.RestoreEligibility, error) {
	if err := s.gate.RequireActor(actor); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.gate.CanManageProject(actor, project); err != nil {
		return nil, err
	}

	if !project.IsDeleted {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("no deleted project %s", projectID)}
	}

	now := s.now()
	return &services.RestoreEligibility{
		Eligible:      project.Restorable(now),
		TimeRemaining: project.TimeRemaining(now),
	}, nil
}

// ListMyDeleted returns the actor's own soft-deleted projects that are
// still inside their restore window, annotated with remaining time.
func (s *lifecycleService) ListMyDeleted(ctx context.Context, actor models.Actor) ([]services.DeletedProject, error) {
	if err := s.gate.RequireActor(actor); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListDeletedByAuthor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	deleted := []services.DeletedProject{}
	for _, p := range projects {
		if !p.Restorable(now) {
			// Expired: retained in storage but no longer listed
			continue
		}
		deleted = append(deleted, services.DeletedProject{
			Project:       p,
			TimeRemaining: p.TimeRemaining(now),
		})
	}

	return deleted, nil
}
