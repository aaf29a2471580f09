package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"showcase/internal/domain"
	"showcase/internal/domain/models"
	"showcase/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProjectRepository implements the ProjectRepository interface.
// A project is one row: the membership sets and the comment list are
// JSONB columns on it, so collection and counter always travel in the
// same UPDATE.
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const projectColumns = `id, author_id, author_name, author_image, title, description,
		likes, like_count, shares, share_count, comments,
		is_deleted, deleted_at, deleted_by, restore_available_until,
		created_at, updated_at`

// Create inserts a new project record
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, author_id, author_name, author_image, title, description,
			likes, like_count, shares, share_count, comments,
			is_deleted, deleted_at, deleted_by, restore_available_until,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, r.tables.Projects)

	likes, shares, comments, err := marshalCollections(project)
	if err != nil {
		return err
	}

	executor := GetExecutor(ctx, r.pool)
	_, err = executor.Exec(ctx, query,
		project.ID,
		project.Author.ID,
		project.Author.DisplayName,
		project.Author.ImageRef,
		project.Title,
		project.Description,
		likes,
		project.LikeCount,
		shares,
		project.ShareCount,
		comments,
		project.IsDeleted,
		project.DeletedAt,
		project.DeletedBy,
		project.RestoreAvailableUntil,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("project %s already exists: %w", project.ID, err)
		}
		return &domain.StorageError{Op: "create project", Err: err}
	}

	return nil
}

// GetByID fetches a project regardless of deletion state
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, projectColumns, r.tables.Projects)
	return r.getOne(ctx, query, id)
}

// GetForUpdate fetches a project and locks its row for the duration of
// the surrounding transaction.
func (r *PostgresProjectRepository) GetForUpdate(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 FOR UPDATE`, projectColumns, r.tables.Projects)
	return r.getOne(ctx, query, id)
}

func (r *PostgresProjectRepository) getOne(ctx context.Context, query, id string) (*models.Project, error) {
	executor := GetExecutor(ctx, r.pool)
	row := executor.QueryRow(ctx, query, id)

	project, err := scanProject(row.Scan)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", id)}
		}
		return nil, &domain.StorageError{Op: "get project", Err: err}
	}

	return project, nil
}

// Update writes the full mutable state of a project back to its row.
// Counters and their backing collections land in one statement; there is
// no way to persist one without the other.
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2,
			likes = $3, like_count = $4,
			shares = $5, share_count = $6,
			comments = $7,
			is_deleted = $8, deleted_at = $9, deleted_by = $10, restore_available_until = $11,
			updated_at = $12
		WHERE id = $13
	`, r.tables.Projects)

	likes, shares, comments, err := marshalCollections(project)
	if err != nil {
		return err
	}

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		project.Title,
		project.Description,
		likes,
		project.LikeCount,
		shares,
		project.ShareCount,
		comments,
		project.IsDeleted,
		project.DeletedAt,
		project.DeletedBy,
		project.RestoreAvailableUntil,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return &domain.StorageError{Op: "update project", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", project.ID)}
	}

	return nil
}

// ListActive returns all non-deleted projects, newest first
func (r *PostgresProjectRepository) ListActive(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE is_deleted = FALSE
		ORDER BY created_at DESC
	`, projectColumns, r.tables.Projects)

	return r.list(ctx, query)
}

// ListDeletedByAuthor returns soft-deleted projects owned by the author,
// newest deletion first. Expired records are included; restore
// eligibility is derived by the caller.
func (r *PostgresProjectRepository) ListDeletedByAuthor(ctx context.Context, authorID string) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE is_deleted = TRUE AND author_id = $1
		ORDER BY deleted_at DESC
	`, projectColumns, r.tables.Projects)

	return r.list(ctx, query, authorID)
}

func (r *PostgresProjectRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Project, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "list projects", Err: err}
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows.Scan)
		if err != nil {
			return nil, &domain.StorageError{Op: "scan project", Err: err}
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "iterate projects", Err: err}
	}

	return projects, nil
}

// marshalCollections encodes the JSONB columns for a write
func marshalCollections(project *models.Project) (likes, shares, comments []byte, err error) {
	if likes, err = json.Marshal(emptyIfNil(project.Likes)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal likes: %w", err)
	}
	if shares, err = json.Marshal(emptyIfNil(project.Shares)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal shares: %w", err)
	}
	if project.Comments == nil {
		project.Comments = []models.Comment{}
	}
	if comments, err = json.Marshal(project.Comments); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal comments: %w", err)
	}
	return likes, shares, comments, nil
}

// scanProject reads one project row and decodes its JSONB collections.
// Counters are reconciled against the decoded collections on the way in,
// so a drifted count written by anything else can never reach the engine.
func scanProject(scan func(dest ...any) error) (*models.Project, error) {
	var (
		project  models.Project
		likes    []byte
		shares   []byte
		comments []byte
	)

	err := scan(
		&project.ID,
		&project.Author.ID,
		&project.Author.DisplayName,
		&project.Author.ImageRef,
		&project.Title,
		&project.Description,
		&likes,
		&project.LikeCount,
		&shares,
		&project.ShareCount,
		&comments,
		&project.IsDeleted,
		&project.DeletedAt,
		&project.DeletedBy,
		&project.RestoreAvailableUntil,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(likes, &project.Likes); err != nil {
		return nil, fmt.Errorf("unmarshal likes: %w", err)
	}
	if err := json.Unmarshal(shares, &project.Shares); err != nil {
		return nil, fmt.Errorf("unmarshal shares: %w", err)
	}
	if err := json.Unmarshal(comments, &project.Comments); err != nil {
		return nil, fmt.Errorf("unmarshal comments: %w", err)
	}

	project.Reconcile()

	return &project, nil
}

func emptyIfNil(set []string) []string {
	if set == nil {
		return []string{}
	}
	return set
}
