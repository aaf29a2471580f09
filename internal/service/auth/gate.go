package auth

import (
	"fmt"

	"showcase/internal/domain"
	"showcase/internal/domain/models"
	"showcase/internal/roles"
)

// Gate is the single authorization decision point consulted before every
// mutating operation. It is a pure predicate over (actor, role,
// resource ownership): no storage access, no side effects. Callers load
// the record first, then ask the gate.
//
// Ownership checks live here rather than inline in each service so the
// rules exist exactly once.
type Gate struct {
	registry *roles.Registry
}

// NewGate creates an authorization gate backed by the role registry.
func NewGate(registry *roles.Registry) *Gate {
	return &Gate{registry: registry}
}

// RequireActor rejects requests with no resolved actor identity. Every
// state-changing call passes through this first.
func (g *Gate) RequireActor(actor models.Actor) error {
	if actor.ID == "" {
		return &domain.UnauthenticatedError{Message: "sign in required"}
	}
	return nil
}

// CanManageProject decides delete/restore authority: the project's author,
// or a role carrying the manage-any-project privilege.
func (g *Gate) CanManageProject(actor models.Actor, project *models.Project) error {
	if err := g.RequireActor(actor); err != nil {
		return err
	}
	if actor.ID == project.Author.ID {
		return nil
	}
	if g.registry.Privileges(actor.Role).ManageAnyProject {
		return nil
	}
	return &domain.ForbiddenError{
		Message: fmt.Sprintf("not allowed to manage project %s", project.ID),
	}
}

// CanModifyComment decides comment edit/delete authority: the comment's
// author, or the author of the project that embeds it. Roles grant no
// comment authority.
func (g *Gate) CanModifyComment(actor models.Actor, project *models.Project, comment *models.Comment) error {
	if err := g.RequireActor(actor); err != nil {
		return err
	}
	if actor.ID == comment.AuthorID || actor.ID == project.Author.ID {
		return nil
	}
	return &domain.ForbiddenError{
		Message: fmt.Sprintf("not allowed to modify comment %s", comment.ID),
	}
}

// CanInteract decides like/share/comment-create authority: any
// authenticated actor. No ownership check.
func (g *Gate) CanInteract(actor models.Actor) error {
	return g.RequireActor(actor)
}
