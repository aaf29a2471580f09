package services

import (
	"context"
	"time"

	"showcase/internal/domain/models"
)

// DeleteResult reports when the restore window closes.
type DeleteResult struct {
	RestoreAvailableUntil time.Time `json:"restore_available_until"`
}

// RestoreEligibility is the lazily derived restore state of a
// soft-deleted project. Expiry is never swept in the background; it is
// computed from the stored deadline at read time.
type RestoreEligibility struct {
	Eligible      bool          `json:"eligible"`
	TimeRemaining time.Duration `json:"-"`
}

// DeletedProject pairs a soft-deleted project with the remaining restore
// time derived at read time.
type DeletedProject struct {
	Project       models.Project `json:"project"`
	TimeRemaining time.Duration  `json:"-"`
}

// LifecycleService implements the soft-delete / restore / expiry state
// machine of a project record. Delete and restore are ownership-gated
// (project author, or an admin role).
type LifecycleService interface {
	// SoftDelete marks the project deleted and opens its 24h restore window.
	SoftDelete(ctx context.Context, projectID string, actor models.Actor) (*DeleteResult, error)

	// Restore returns a soft-deleted project to the active state. Fails
	// with a restore-expired error once the window has closed, and with
	// not-found when the project is already active (nothing eligible to
	// restore).
	Restore(ctx context.Context, projectID string, actor models.Actor) (*models.Project, error)

	// CheckRestoreEligibility is a pure read of the derived restore state.
	CheckRestoreEligibility(ctx context.Context, projectID string, actor models.Actor) (*RestoreEligibility, error)

	// ListMyDeleted returns the actor's own soft-deleted, still-restorable
	// projects with their remaining time.
	ListMyDeleted(ctx context.Context, actor models.Actor) ([]DeletedProject, error)
}
