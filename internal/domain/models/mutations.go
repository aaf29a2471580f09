package models

import (
	"time"
)

// Mutation methods are the only way engine code changes a project's
// membership sets or comment list. Each method rewrites the backing
// collection and recomputes the denormalized counter from it in the same
// step, so a counter can never drift from its collection: there is no
// code path that increments or decrements a count directly.

// ToggleLike flips actorID's membership in the likes set and returns the
// resulting membership. LikeCount is recomputed from the set.
func (p *Project) ToggleLike(actorID string) (liked bool) {
	if contains(p.Likes, actorID) {
		p.Likes = remove(p.Likes, actorID)
		liked = false
	} else {
		p.Likes = append(p.Likes, actorID)
		liked = true
	}
	p.LikeCount = len(p.Likes)
	return liked
}

// RecordShare adds actorID to the shares set. Shares are a one-way
// ratchet per actor: a repeat share neither re-increments nor decrements
// the count. Returns true when this call was the actor's first share.
func (p *Project) RecordShare(actorID string) (first bool) {
	if contains(p.Shares, actorID) {
		return false
	}
	p.Shares = append(p.Shares, actorID)
	p.ShareCount = len(p.Shares)
	return true
}

// AddComment appends a comment to the project's embedded list. Ordering
// is append-only chronological and never rewritten.
func (p *Project) AddComment(c Comment) {
	p.Comments = append(p.Comments, c)
}

// EditComment replaces the text of the comment with the given ID in
// place, leaving its position and CreatedAt untouched. Returns false if
// no such comment exists.
func (p *Project) EditComment(commentID, text string) bool {
	c := p.CommentByID(commentID)
	if c == nil {
		return false
	}
	c.Text = text
	return true
}

// RemoveComment deletes the comment with the given ID from the embedded
// list. The comment count is implicitly len(Comments) afterward. Returns
// false if no such comment exists.
func (p *Project) RemoveComment(commentID string) bool {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true
		}
	}
	return false
}

// SoftDelete marks the project deleted at the given instant and opens its
// restore window.
func (p *Project) SoftDelete(actorID string, now time.Time) {
	deadline := now.Add(RestoreWindow)
	p.IsDeleted = true
	p.DeletedAt = &now
	p.DeletedBy = actorID
	p.RestoreAvailableUntil = &deadline
}

// ClearDeletion returns the project to the active state, clearing all
// deletion bookkeeping.
func (p *Project) ClearDeletion() {
	p.IsDeleted = false
	p.DeletedAt = nil
	p.DeletedBy = ""
	p.RestoreAvailableUntil = nil
}

// Reconcile forces both counters back to the size of their backing sets.
// Repositories call this after loading a row so a record written by an
// older buggy writer can never leak a drifted count into the engine.
func (p *Project) Reconcile() {
	p.LikeCount = len(p.Likes)
	p.ShareCount = len(p.Shares)
}

func remove(set []string, member string) []string {
	out := set[:0]
	for _, m := range set {
		if m != member {
			out = append(out, m)
		}
	}
	return out
}
