package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"showcase/internal/domain/models"
	"showcase/internal/domain/services"
	"showcase/internal/httputil"
)

// stubInteractionService returns canned results and records the IDs each
// call received, so tests can assert path values flow through the mux.
type stubInteractionService struct {
	likeResult  *services.LikeResult
	shareResult *services.ShareResult
	comment     *models.Comment
	err         error

	gotProjectID string
	gotCommentID string
	gotText      string
}

func (s *stubInteractionService) ToggleLike(_ context.Context, projectID string, _ models.Actor) (*services.LikeResult, error) {
	s.gotProjectID = projectID
	return s.likeResult, s.err
}

func (s *stubInteractionService) AddComment(_ context.Context, projectID string, _ models.Actor, req *services.AddCommentRequest) (*models.Comment, error) {
	s.gotProjectID = projectID
	s.gotText = req.Text
	return s.comment, s.err
}

func (s *stubInteractionService) EditComment(_ context.Context, projectID, commentID string, _ models.Actor, req *services.EditCommentRequest) (*models.Comment, error) {
	s.gotProjectID = projectID
	s.gotCommentID = commentID
	s.gotText = req.Text
	return s.comment, s.err
}

func (s *stubInteractionService) DeleteComment(_ context.Context, projectID, commentID string, _ models.Actor) error {
	s.gotProjectID = projectID
	s.gotCommentID = commentID
	return s.err
}

func (s *stubInteractionService) RecordShare(_ context.Context, projectID string, _ models.Actor) (*services.ShareResult, error) {
	s.gotProjectID = projectID
	return s.shareResult, s.err
}

type stubLifecycleService struct {
	deleteResult *services.DeleteResult
	project      *models.Project
	eligibility  *services.RestoreEligibility
	deleted      []services.DeletedProject
	err          error
}

func (s *stubLifecycleService) SoftDelete(context.Context, string, models.Actor) (*services.DeleteResult, error) {
	return s.deleteResult, s.err
}

func (s *stubLifecycleService) Restore(context.Context, string, models.Actor) (*models.Project, error) {
	return s.project, s.err
}

func (s *stubLifecycleService) CheckRestoreEligibility(context.Context, string, models.Actor) (*services.RestoreEligibility, error) {
	return s.eligibility, s.err
}

func (s *stubLifecycleService) ListMyDeleted(context.Context, models.Actor) ([]services.DeletedProject, error) {
	return s.deleted, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter registers handlers on the same patterns the server uses.
func newTestRouter(interactions *InteractionHandler, lifecycle *LifecycleHandler) http.Handler {
	mux := http.NewServeMux()
	if interactions != nil {
		mux.HandleFunc("POST /api/projects/{id}/like", interactions.ToggleLike)
		mux.HandleFunc("POST /api/projects/{id}/share", interactions.RecordShare)
		mux.HandleFunc("POST /api/projects/{id}/comments", interactions.AddComment)
		mux.HandleFunc("PATCH /api/projects/{id}/comments/{commentID}", interactions.EditComment)
		mux.HandleFunc("DELETE /api/projects/{id}/comments/{commentID}", interactions.DeleteComment)
	}
	if lifecycle != nil {
		mux.HandleFunc("DELETE /api/projects/{id}", lifecycle.SoftDelete)
		mux.HandleFunc("POST /api/projects/{id}/restore", lifecycle.Restore)
		mux.HandleFunc("GET /api/projects/{id}/restore", lifecycle.CheckRestoreEligibility)
		mux.HandleFunc("GET /api/users/me/deleted-projects", lifecycle.ListMyDeleted)
	}
	return mux
}

// doAs runs a request through the router with the given actor attached,
// as the auth middleware would have done.
func doAs(t *testing.T, router http.Handler, req *http.Request, actor models.Actor) *httptest.ResponseRecorder {
	t.Helper()
	if actor.ID != "" {
		req = httputil.WithActor(req, actor)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
