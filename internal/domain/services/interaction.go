package services

import (
	"context"

	"showcase/internal/domain/models"
)

// AddCommentRequest represents a request to append a comment to a project
type AddCommentRequest struct {
	Text string `json:"text"`
}

// EditCommentRequest represents a request to replace a comment's text
type EditCommentRequest struct {
	Text string `json:"text"`
}

// LikeResult carries the authoritative post-toggle state so callers never
// guess derived counts.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// ShareResult carries the authoritative post-share state. Shared is
// always true on success: the first call records the share, repeat calls
// are no-ops returning the same count.
type ShareResult struct {
	Shared     bool `json:"shared"`
	ShareCount int  `json:"share_count"`
}

// InteractionService implements like-toggle, comment management and
// share-once semantics on a single project record. Every mutation is one
// atomic read-modify-write against the store.
type InteractionService interface {
	// ToggleLike flips the actor's membership in the project's likes set.
	ToggleLike(ctx context.Context, projectID string, actor models.Actor) (*LikeResult, error)

	// AddComment appends a comment authored by the actor.
	AddComment(ctx context.Context, projectID string, actor models.Actor, req *AddCommentRequest) (*models.Comment, error)

	// EditComment replaces a comment's text in place. Allowed for the
	// comment's author or the project's author.
	EditComment(ctx context.Context, projectID, commentID string, actor models.Actor, req *EditCommentRequest) (*models.Comment, error)

	// DeleteComment removes a comment from the project. Allowed for the
	// comment's author or the project's author.
	DeleteComment(ctx context.Context, projectID, commentID string, actor models.Actor) error

	// RecordShare adds the actor to the project's shares set. Idempotent
	// after the first call per actor.
	RecordShare(ctx context.Context, projectID string, actor models.Actor) (*ShareResult, error)
}
