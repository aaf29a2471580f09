package repositories

import (
	"context"

	"showcase/internal/domain/models"
)

// ProjectRepository persists project records. Reads return records in any
// lifecycle state; visibility filtering (hiding soft-deleted records) is
// the query façade's concern, not the repository's.
type ProjectRepository interface {
	// Create inserts a new project record.
	Create(ctx context.Context, project *models.Project) error

	// GetByID fetches a project regardless of deletion state.
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// GetForUpdate fetches a project and locks its row for the duration
	// of the surrounding transaction. Must be called inside ExecTx.
	GetForUpdate(ctx context.Context, id string) (*models.Project, error)

	// Update writes the full mutable state of a project back to its row,
	// counters and collections together.
	Update(ctx context.Context, project *models.Project) error

	// ListActive returns all non-deleted projects, newest first.
	ListActive(ctx context.Context) ([]models.Project, error)

	// ListDeletedByAuthor returns soft-deleted projects owned by the
	// given author, newest deletion first. Includes expired records;
	// restore eligibility is derived by the caller.
	ListDeletedByAuthor(ctx context.Context, authorID string) ([]models.Project, error)
}
