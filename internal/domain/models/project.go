package models

import (
	"time"
)

// Author is the ownership reference embedded in a project. Immutable after
// creation as far as this engine is concerned.
type Author struct {
	ID          string `json:"id" db:"author_id"`
	DisplayName string `json:"display_name" db:"author_name"`
	ImageRef    string `json:"image_ref,omitempty" db:"author_image"`
}

// Comment lives inside the project that owns it. It has no independent
// lifecycle: created, edited and deleted only through the project's
// comment operations.
type Comment struct {
	ID              string    `json:"id"`
	AuthorID        string    `json:"author_id"`
	AuthorName      string    `json:"author_name"`
	AuthorAvatarRef string    `json:"author_avatar_ref,omitempty"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"created_at"`
}

// Project is the single record every engine operation mutates. Likes and
// shares are membership sets of actor IDs; LikeCount and ShareCount are
// denormalized and must always equal the size of their backing set. The
// comment count has no stored field - it is always len(Comments).
type Project struct {
	ID          string     `json:"id" db:"id"`
	Author      Author     `json:"author"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	Likes       []string   `json:"likes" db:"likes"`
	LikeCount   int        `json:"like_count" db:"like_count"`
	Shares      []string   `json:"shares" db:"shares"`
	ShareCount  int        `json:"share_count" db:"share_count"`
	Comments    []Comment  `json:"comments" db:"comments"`
	IsDeleted   bool       `json:"is_deleted" db:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	DeletedBy   string     `json:"deleted_by,omitempty" db:"deleted_by"`
	// RestoreAvailableUntil = DeletedAt + RestoreWindow, set only while soft-deleted.
	RestoreAvailableUntil *time.Time `json:"restore_available_until,omitempty" db:"restore_available_until"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}

// RestoreWindow is how long a soft-deleted project stays restorable.
const RestoreWindow = 24 * time.Hour

// CommentCount reports the derived comment count.
func (p *Project) CommentCount() int {
	return len(p.Comments)
}

// LikedBy reports whether actorID is in the likes membership set.
func (p *Project) LikedBy(actorID string) bool {
	return contains(p.Likes, actorID)
}

// SharedBy reports whether actorID is in the shares membership set.
func (p *Project) SharedBy(actorID string) bool {
	return contains(p.Shares, actorID)
}

// CommentByID returns the embedded comment with the given ID, or nil.
func (p *Project) CommentByID(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

// RestoreDeadline returns the restore cutoff, or the zero time if the
// project is not soft-deleted.
func (p *Project) RestoreDeadline() time.Time {
	if p.RestoreAvailableUntil == nil {
		return time.Time{}
	}
	return *p.RestoreAvailableUntil
}

// Restorable reports whether the project is soft-deleted and still inside
// its restore window at the given instant. A deleted project past the
// deadline is expired: it stays soft-deleted but is no longer offered
// for restore.
func (p *Project) Restorable(now time.Time) bool {
	return p.IsDeleted && p.RestoreAvailableUntil != nil && now.Before(*p.RestoreAvailableUntil)
}

// TimeRemaining returns max(0, RestoreAvailableUntil - now).
func (p *Project) TimeRemaining(now time.Time) time.Duration {
	if p.RestoreAvailableUntil == nil {
		return 0
	}
	remaining := p.RestoreAvailableUntil.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func contains(set []string, member string) bool {
	for _, m := range set {
		if m == member {
			return true
		}
	}
	return false
}
