package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"showcase/internal/domain"
	"showcase/internal/domain/models"
	"showcase/internal/domain/repositories"
	"showcase/internal/roles"
	authz "showcase/internal/service/auth"
)

// fakeProjectRepo is an in-memory ProjectRepository. Reads hand out deep
// copies so a service mutation only becomes visible through Update, the
// same contract the real repository has.
type fakeProjectRepo struct {
	projects map[string]*models.Project
	failWith error
}

func newFakeProjectRepo(projects ...*models.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: make(map[string]*models.Project)}
	for _, p := range projects {
		r.projects[p.ID] = cloneProject(p)
	}
	return r
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.projects[project.ID] = cloneProject(project)
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (*models.Project, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	p, ok := r.projects[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", id)}
	}
	return cloneProject(p), nil
}

func (r *fakeProjectRepo) GetForUpdate(ctx context.Context, id string) (*models.Project, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProjectRepo) Update(_ context.Context, project *models.Project) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.projects[project.ID]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", project.ID)}
	}
	r.projects[project.ID] = cloneProject(project)
	return nil
}

func (r *fakeProjectRepo) ListActive(_ context.Context) ([]models.Project, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := []models.Project{}
	for _, p := range r.projects {
		if !p.IsDeleted {
			out = append(out, *cloneProject(p))
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListDeletedByAuthor(_ context.Context, authorID string) ([]models.Project, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := []models.Project{}
	for _, p := range r.projects {
		if p.IsDeleted && p.Author.ID == authorID {
			out = append(out, *cloneProject(p))
		}
	}
	return out, nil
}

// stored returns the persisted state of a project, bypassing copies.
func (r *fakeProjectRepo) stored(t *testing.T, id string) *models.Project {
	t.Helper()
	p, ok := r.projects[id]
	if !ok {
		t.Fatalf("project %s not in repo", id)
	}
	return p
}

func cloneProject(p *models.Project) *models.Project {
	clone := *p
	clone.Likes = append([]string{}, p.Likes...)
	clone.Shares = append([]string{}, p.Shares...)
	clone.Comments = append([]models.Comment{}, p.Comments...)
	if p.DeletedAt != nil {
		t := *p.DeletedAt
		clone.DeletedAt = &t
	}
	if p.RestoreAvailableUntil != nil {
		t := *p.RestoreAvailableUntil
		clone.RestoreAvailableUntil = &t
	}
	return &clone
}

// fakeTxManager runs the function directly; the fake repo's copy-on-read
// contract stands in for row locking.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

func testGate(t *testing.T) *authz.Gate {
	t.Helper()
	registry, err := roles.NewRegistry()
	if err != nil {
		t.Fatalf("load role registry: %v", err)
	}
	return authz.NewGate(registry)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeProject(id, authorID string) *models.Project {
	now := time.Now()
	return &models.Project{
		ID: id,
		Author: models.Author{
			ID:          authorID,
			DisplayName: "Author " + authorID,
		},
		Title:     "Project " + id,
		Likes:     []string{},
		Shares:    []string{},
		Comments:  []models.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func memberActor(id string) models.Actor {
	return models.Actor{ID: id, Role: roles.RoleMember, DisplayName: "User " + id}
}
