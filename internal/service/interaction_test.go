package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"showcase/internal/domain"
	"showcase/internal/domain/models"
	"showcase/internal/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInteractionService(repo *fakeProjectRepo) *interactionService {
	return &interactionService{
		projectRepo: repo,
		txManager:   fakeTxManager{},
		gate:        nil, // set per test
		logger:      testLogger(),
		now:         time.Now,
	}
}

func interactionFixture(t *testing.T, projects ...*models.Project) (*interactionService, *fakeProjectRepo) {
	t.Helper()
	repo := newFakeProjectRepo(projects...)
	svc := newInteractionService(repo)
	svc.gate = testGate(t)
	return svc, repo
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("two actors then one untoggles", func(t *testing.T) {
		svc, repo := interactionFixture(t, activeProject("p1", "author"))
		u1, u2 := memberActor("u1"), memberActor("u2")

		res, err := svc.ToggleLike(ctx, "p1", u1)
		require.NoError(t, err)
		assert.True(t, res.Liked)
		assert.Equal(t, 1, res.LikeCount)

		res, err = svc.ToggleLike(ctx, "p1", u2)
		require.NoError(t, err)
		assert.True(t, res.Liked)
		assert.Equal(t, 2, res.LikeCount)

		res, err = svc.ToggleLike(ctx, "p1", u1)
		require.NoError(t, err)
		assert.False(t, res.Liked)
		assert.Equal(t, 1, res.LikeCount)

		stored := repo.stored(t, "p1")
		assert.Equal(t, []string{"u2"}, stored.Likes)
		assert.Equal(t, len(stored.Likes), stored.LikeCount)
	})

	t.Run("double toggle restores original state", func(t *testing.T) {
		svc, repo := interactionFixture(t, activeProject("p1", "author"))
		actor := memberActor("u1")

		_, err := svc.ToggleLike(ctx, "p1", actor)
		require.NoError(t, err)
		_, err = svc.ToggleLike(ctx, "p1", actor)
		require.NoError(t, err)

		stored := repo.stored(t, "p1")
		assert.Empty(t, stored.Likes)
		assert.Equal(t, 0, stored.LikeCount)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc, _ := interactionFixture(t, activeProject("p1", "author"))

		_, err := svc.ToggleLike(ctx, "p1", models.Actor{})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("missing project", func(t *testing.T) {
		svc, _ := interactionFixture(t)

		_, err := svc.ToggleLike(ctx, "nope", memberActor("u1"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("soft-deleted project is not interactable", func(t *testing.T) {
		p := activeProject("p1", "author")
		p.SoftDelete("author", time.Now())
		svc, _ := interactionFixture(t, p)

		_, err := svc.ToggleLike(ctx, "p1", memberActor("u1"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRecordShare(t *testing.T) {
	ctx := context.Background()

	t.Run("first share increments, repeat is a no-op", func(t *testing.T) {
		svc, repo := interactionFixture(t, activeProject("p1", "author"))
		actor := memberActor("u1")

		res, err := svc.RecordShare(ctx, "p1", actor)
		require.NoError(t, err)
		assert.True(t, res.Shared)
		assert.Equal(t, 1, res.ShareCount)

		res, err = svc.RecordShare(ctx, "p1", actor)
		require.NoError(t, err)
		assert.True(t, res.Shared)
		assert.Equal(t, 1, res.ShareCount)

		stored := repo.stored(t, "p1")
		assert.Equal(t, []string{"u1"}, stored.Shares)
		assert.Equal(t, 1, stored.ShareCount)
	})

	t.Run("share count never decreases", func(t *testing.T) {
		svc, repo := interactionFixture(t, activeProject("p1", "author"))

		last := 0
		for i := 0; i < 3; i++ {
			res, err := svc.RecordShare(ctx, "p1", memberActor("u1"))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.ShareCount, last)
			last = res.ShareCount
		}
		res, err := svc.RecordShare(ctx, "p1", memberActor("u2"))
		require.NoError(t, err)
		assert.Equal(t, 2, res.ShareCount)

		stored := repo.stored(t, "p1")
		assert.Equal(t, len(stored.Shares), stored.ShareCount)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("appends in chronological order", func(t *testing.T) {
		svc, repo := interactionFixture(t, activeProject("p1", "author"))

		first, err := svc.AddComment(ctx, "p1", memberActor("u1"), &services.AddCommentRequest{Text: "first"})
		require.NoError(t, err)
		second, err := svc.AddComment(ctx, "p1", memberActor("u2"), &services.AddCommentRequest{Text: "second"})
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.Equal(t, "u1", first.AuthorID)

		stored := repo.stored(t, "p1")
		require.Len(t, stored.Comments, 2)
		assert.Equal(t, first.ID, stored.Comments[0].ID)
		assert.Equal(t, second.ID, stored.Comments[1].ID)
	})

	t.Run("rejects blank text", func(t *testing.T) {
		svc, _ := interactionFixture(t, activeProject("p1", "author"))

		for _, text := range []string{"", "   ", "\n\t"} {
			_, err := svc.AddComment(ctx, "p1", memberActor("u1"), &services.AddCommentRequest{Text: text})
			assert.ErrorIs(t, err, domain.ErrValidation, "text %q", text)
		}
	})

	t.Run("rejects oversized text", func(t *testing.T) {
		svc, _ := interactionFixture(t, activeProject("p1", "author"))

		long := strings.Repeat("x", 2001)
		_, err := svc.AddComment(ctx, "p1", memberActor("u1"), &services.AddCommentRequest{Text: long})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		svc, _ := interactionFixture(t, activeProject("p1", "author"))

		comment, err := svc.AddComment(ctx, "p1", memberActor("u1"), &services.AddCommentRequest{Text: "  hello  "})
		require.NoError(t, err)
		assert.Equal(t, "hello", comment.Text)
	})
}

func TestEditComment(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*interactionService, *fakeProjectRepo, models.Comment) {
		svc, repo := interactionFixture(t, activeProject("p1", "owner"))
		comment, err := svc.AddComment(ctx, "p1", memberActor("commenter"), &services.AddCommentRequest{Text: "original"})
		require.NoError(t, err)
		return svc, repo, *comment
	}

	t.Run("comment author can edit", func(t *testing.T) {
		svc, repo, comment := seed(t)

		edited, err := svc.EditComment(ctx, "p1", comment.ID, memberActor("commenter"), &services.EditCommentRequest{Text: "updated"})
		require.NoError(t, err)
		assert.Equal(t, "updated", edited.Text)
		assert.Equal(t, comment.CreatedAt, edited.CreatedAt)

		stored := repo.stored(t, "p1")
		assert.Equal(t, "updated", stored.Comments[0].Text)
	})

	t.Run("project author can edit", func(t *testing.T) {
		svc, _, comment := seed(t)

		_, err := svc.EditComment(ctx, "p1", comment.ID, memberActor("owner"), &services.EditCommentRequest{Text: "moderated"})
		assert.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc, _, comment := seed(t)

		_, err := svc.EditComment(ctx, "p1", comment.ID, memberActor("stranger"), &services.EditCommentRequest{Text: "nope"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown comment id", func(t *testing.T) {
		svc, _, _ := seed(t)

		_, err := svc.EditComment(ctx, "p1", "missing", memberActor("commenter"), &services.EditCommentRequest{Text: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects blank replacement", func(t *testing.T) {
		svc, _, comment := seed(t)

		_, err := svc.EditComment(ctx, "p1", comment.ID, memberActor("commenter"), &services.EditCommentRequest{Text: " "})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*interactionService, *fakeProjectRepo, models.Comment) {
		svc, repo := interactionFixture(t, activeProject("p1", "owner"))
		comment, err := svc.AddComment(ctx, "p1", memberActor("commenter"), &services.AddCommentRequest{Text: "to be removed"})
		require.NoError(t, err)
		return svc, repo, *comment
	}

	t.Run("comment author can delete", func(t *testing.T) {
		svc, repo, comment := seed(t)

		err := svc.DeleteComment(ctx, "p1", comment.ID, memberActor("commenter"))
		require.NoError(t, err)

		stored := repo.stored(t, "p1")
		assert.Empty(t, stored.Comments)
		assert.Equal(t, 0, stored.CommentCount())
	})

	t.Run("project author can delete", func(t *testing.T) {
		svc, repo, comment := seed(t)

		err := svc.DeleteComment(ctx, "p1", comment.ID, memberActor("owner"))
		require.NoError(t, err)
		assert.Empty(t, repo.stored(t, "p1").Comments)
	})

	t.Run("stranger is forbidden and nothing changes", func(t *testing.T) {
		svc, repo, comment := seed(t)

		err := svc.DeleteComment(ctx, "p1", comment.ID, memberActor("stranger"))
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Len(t, repo.stored(t, "p1").Comments, 1)
	})

	t.Run("unknown comment id", func(t *testing.T) {
		svc, _, _ := seed(t)

		err := svc.DeleteComment(ctx, "p1", "missing", memberActor("commenter"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
