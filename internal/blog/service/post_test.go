package service

import (
	"context"
	"strings"
	"testing"

	"github.com/inkwell-press/inkwell/internal/blog/assets"
	"github.com/inkwell-press/inkwell/internal/blog/domain"
	"github.com/stretchr/testify/require"
)

func newPostService(t *testing.T) (*PostService, *UserService) {
	t.Helper()

	st := newTestStore(t)
	local, err := assets.NewLocalStore(t.TempDir(), "uploads")
	require.NoError(t, err)

	return &PostService{Store: st, Assets: local}, &UserService{Store: st}
}

func registerAuthor(t *testing.T, users *UserService, username string) domain.Account {
	t.Helper()
	account, err := users.Register(context.Background(), username, "a password")
	require.NoError(t, err)
	return account
}

func TestCreatePostBindsAuthor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	posts, users := newPostService(t)
	author := registerAuthor(t, users, "alice")

	created, err := posts.Create(ctx, author.ID, CreatePostInput{
		Title:   "Hello",
		Summary: "greeting",
		Content: "body",
	}, &Upload{Filename: "cover.png", Reader: strings.NewReader("img")})
	require.NoError(t, err)

	require.Equal(t, author.ID, created.AuthorID)
	require.Equal(t, "alice", created.AuthorUsername)
	require.True(t, strings.HasPrefix(created.Cover, "uploads/"))

	// Round-trip equality on all client-supplied fields.
	got, err := posts.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Title, got.Title)
	require.Equal(t, created.Summary, got.Summary)
	require.Equal(t, created.Content, got.Content)
	require.Equal(t, created.Cover, got.Cover)
}

func TestCreatePostRequiresTitle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	posts, users := newPostService(t)
	author := registerAuthor(t, users, "alice")

	_, err := posts.Create(ctx, author.ID, CreatePostInput{}, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	listed, err := posts.List(ctx)
	require.NoError(t, err)
	require.Empty(t, listed, "a rejected create must persist nothing")
}

func TestUpdatePartialFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	posts, users := newPostService(t)
	author := registerAuthor(t, users, "alice")

	created, err := posts.Create(ctx, author.ID, CreatePostInput{
		Title:   "Original",
		Summary: "summary",
		Content: "content",
	}, nil)
	require.NoError(t, err)

	newTitle := "Edited"
	updated, err := posts.Update(ctx, author.ID, created.ID, domain.PostPatch{Title: &newTitle}, nil)
	require.NoError(t, err)

	require.Equal(t, "Edited", updated.Title)
	require.Equal(t, "summary", updated.Summary, "unprovided fields keep their value")
	require.Equal(t, "content", updated.Content)
	require.Equal(t, author.ID, updated.AuthorID)
}

func TestUpdateReplacesCover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	posts, users := newPostService(t)
	author := registerAuthor(t, users, "alice")

	created, err := posts.Create(ctx, author.ID, CreatePostInput{Title: "t"},
		&Upload{Filename: "old.png", Reader: strings.NewReader("old")})
	require.NoError(t, err)

	updated, err := posts.Update(ctx, author.ID, created.ID, domain.PostPatch{},
		&Upload{Filename: "new.jpg", Reader: strings.NewReader("new")})
	require.NoError(t, err)

	require.NotEqual(t, created.Cover, updated.Cover)
	require.True(t, strings.HasSuffix(updated.Cover, ".jpg"))
}

func TestUpdateByNonOwnerForbiddenAndUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	posts, users := newPostService(t)
	alice := registerAuthor(t, users, "alice")
	mallory := registerAuthor(t, users, "mallory")

	created, err := posts.Create(ctx, alice.ID, CreatePostInput{
		Title:   "Alice's post",
		Summary: "hers",
		Content: "hers too",
	}, nil)
	require.NoError(t, err)

	hijack := "Mallory's now"
	_, err = posts.Update(ctx, mallory.ID, created.ID, domain.PostPatch{Title: &hijack}, nil)
	require.ErrorIs(t, err, ErrNotOwner)

	// Field-by-field: nothing moved.
	after, err := posts.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Title, after.Title)
	require.Equal(t, created.Summary, after.Summary)
	require.Equal(t, created.Content, after.Content)
	require.Equal(t, created.Cover, after.Cover)
	require.Equal(t, alice.ID, after.AuthorID)
	require.Equal(t, created.UpdatedAt, after.UpdatedAt)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	posts, users := newPostService(t)
	alice := registerAuthor(t, users, "alice")
	mallory := registerAuthor(t, users, "mallory")

	created, err := posts.Create(ctx, alice.ID, CreatePostInput{Title: "t"}, nil)
	require.NoError(t, err)

	require.ErrorIs(t, posts.Delete(ctx, mallory.ID, created.ID), ErrNotOwner)

	_, err = posts.Get(ctx, created.ID)
	require.NoError(t, err, "post must survive a forbidden delete")

	require.NoError(t, posts.Delete(ctx, alice.ID, created.ID))
	_, err = posts.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteUnknownPost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	posts, users := newPostService(t)
	author := registerAuthor(t, users, "alice")

	err := posts.Delete(ctx, author.ID, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestListCapsAtPageSize(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	posts, users := newPostService(t)
	author := registerAuthor(t, users, "alice")

	for i := 0; i < ListPageSize+5; i++ {
		_, err := posts.Create(ctx, author.ID, CreatePostInput{Title: "post"}, nil)
		require.NoError(t, err)
	}

	listed, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, ListPageSize)

	for i := 1; i < len(listed); i++ {
		require.False(t, listed[i].CreatedAt.After(listed[i-1].CreatedAt))
	}
}
