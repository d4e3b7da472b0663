package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/inkwell-press/inkwell/internal/blog/assets"
	"github.com/inkwell-press/inkwell/internal/blog/domain"
	"github.com/inkwell-press/inkwell/internal/blog/store"
	"github.com/inkwell-press/inkwell/pkg/idx"
)

// ListPageSize is the fixed cap on the public post listing.
const ListPageSize = 20

// Upload is an optional cover image attached to a create or update.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// CreatePostInput are the client-supplied fields of a new post.
type CreatePostInput struct {
	Title   string `validate:"required"`
	Summary string
	Content string
}

// PostService orchestrates the post lifecycle: every mutation runs as
// authenticate, authorize, validate, persist. The caller identity comes
// from the session guard; this service binds and enforces authorship.
type PostService struct {
	Store  store.Store
	Assets assets.Store
}

// Create persists a new post owned by authorID. A non-nil upload is stored
// first and its reference becomes the cover.
func (s *PostService) Create(ctx context.Context, authorID string, in CreatePostInput, upload *Upload) (domain.Post, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Post{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	cover, err := s.saveUpload(ctx, upload)
	if err != nil {
		return domain.Post{}, err
	}

	now := time.Now().UTC()
	post := domain.Post{
		ID:        idx.New().String(),
		Title:     in.Title,
		Summary:   in.Summary,
		Content:   in.Content,
		Cover:     cover,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Posts().CreatePost(ctx, post); err != nil {
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}

	return s.Store.Posts().GetPostByID(ctx, post.ID)
}

// Update applies a partial update to the requester's own post. The
// ownership check and the write run in one transaction so a racing update
// cannot slip between them. Authorship is never reassigned.
func (s *PostService) Update(ctx context.Context, requesterID, postID string, patch domain.PostPatch, upload *Upload) (domain.Post, error) {
	if upload != nil {
		cover, err := s.saveUpload(ctx, upload)
		if err != nil {
			return domain.Post{}, err
		}
		patch.Cover = &cover
	}

	var updated domain.Post
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		post, err := tx.Posts().GetPostByID(ctx, postID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if post.AuthorID != requesterID {
			return ErrNotOwner
		}

		patch.Apply(&post)
		post.UpdatedAt = time.Now().UTC()

		if err := tx.Posts().UpdatePost(ctx, post); err != nil {
			return err
		}
		updated = post
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}

	return updated, nil
}

// Delete removes the requester's own post.
func (s *PostService) Delete(ctx context.Context, requesterID, postID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		post, err := tx.Posts().GetPostByID(ctx, postID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if post.AuthorID != requesterID {
			return ErrNotOwner
		}

		return tx.Posts().DeletePost(ctx, postID)
	})
}

// Get returns a single post with the author joined.
func (s *PostService) Get(ctx context.Context, id string) (domain.Post, error) {
	post, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrPostNotFound
		}
		return domain.Post{}, err
	}
	return post, nil
}

// List returns the newest posts, capped at ListPageSize.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.Store.Posts().ListPosts(ctx, ListPageSize)
}

func (s *PostService) saveUpload(ctx context.Context, upload *Upload) (string, error) {
	if upload == nil {
		return "", nil
	}
	ref, err := s.Assets.Save(ctx, upload.Filename, upload.Reader)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, err)
	}
	return ref, nil
}
