package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/internal/domain"
	"showcase/internal/domain/models"
	"showcase/internal/domain/services"
)

func TestToggleLikeHandler(t *testing.T) {
	stub := &stubInteractionService{likeResult: &services.LikeResult{Liked: true, LikeCount: 3}}
	router := newTestRouter(NewInteractionHandler(stub, testLogger()), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/like", nil)
	rec := doAs(t, router, req, models.Actor{ID: "u1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p1", stub.gotProjectID)

	var result services.LikeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Liked)
	assert.Equal(t, 3, result.LikeCount)
}

func TestToggleLikeHandlerRequiresActor(t *testing.T) {
	stub := &stubInteractionService{}
	router := newTestRouter(NewInteractionHandler(stub, testLogger()), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/like", nil)
	rec := doAs(t, router, req, models.Actor{})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, stub.gotProjectID, "service must not be called anonymously")
}

func TestAddCommentHandler(t *testing.T) {
	stub := &stubInteractionService{comment: &models.Comment{ID: "c1", Text: "nice build"}}
	router := newTestRouter(NewInteractionHandler(stub, testLogger()), nil)

	body := strings.NewReader(`{"text": "nice build"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/comments", body)
	rec := doAs(t, router, req, models.Actor{ID: "u1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "p1", stub.gotProjectID)
	assert.Equal(t, "nice build", stub.gotText)
}

func TestAddCommentHandlerRejectsBadBody(t *testing.T) {
	stub := &stubInteractionService{}
	router := newTestRouter(NewInteractionHandler(stub, testLogger()), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/comments", strings.NewReader("{not json"))
	rec := doAs(t, router, req, models.Actor{ID: "u1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditCommentHandlerRoutesBothIDs(t *testing.T) {
	stub := &stubInteractionService{comment: &models.Comment{ID: "c7", Text: "edited"}}
	router := newTestRouter(NewInteractionHandler(stub, testLogger()), nil)

	body := strings.NewReader(`{"text": "edited"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/projects/p1/comments/c7", body)
	rec := doAs(t, router, req, models.Actor{ID: "u1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p1", stub.gotProjectID)
	assert.Equal(t, "c7", stub.gotCommentID)
}

func TestDeleteCommentHandler(t *testing.T) {
	stub := &stubInteractionService{}
	router := newTestRouter(NewInteractionHandler(stub, testLogger()), nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/p1/comments/c7", nil)
	rec := doAs(t, router, req, models.Actor{ID: "u1"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "c7", stub.gotCommentID)
}

func TestDomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to 400", &domain.ValidationError{Message: "comment cannot be empty"}, http.StatusBadRequest},
		{"forbidden maps to 403", &domain.ForbiddenError{Message: "not allowed"}, http.StatusForbidden},
		{"not found maps to 404", &domain.NotFoundError{Message: "project p1 not found"}, http.StatusNotFound},
		{"restore expired maps to 410", &domain.RestoreExpiredError{Message: "restore window closed"}, http.StatusGone},
		{"storage failure maps to 503", &domain.StorageError{Op: "get project", Err: assert.AnError}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubInteractionService{err: tt.err}
			router := newTestRouter(NewInteractionHandler(stub, testLogger()), nil)

			req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/like", nil)
			rec := doAs(t, router, req, models.Actor{ID: "u1"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var problem map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.EqualValues(t, tt.wantStatus, problem["status"])
		})
	}
}
