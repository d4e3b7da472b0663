package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/inkwell-press/inkwell/internal/blog/domain"
	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/pkg/httpx"
)

// accountResponse is the public shape of an account. Password material is
// never part of any response.
type accountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newAccountResponse(a domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Username:  a.Username,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type postAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type postResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Content   string     `json:"content"`
	Cover     string     `json:"cover,omitempty"`
	Author    postAuthor `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:      p.ID,
		Title:   p.Title,
		Summary: p.Summary,
		Content: p.Content,
		Cover:   p.Cover,
		Author: postAuthor{
			ID:       p.AuthorID,
			Username: p.AuthorUsername,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Validation and authorization failures go out as-is; anything else is
// logged with detail and surfaced as a generic failure.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteError(w, http.StatusBadRequest, "username_taken", "username already exists")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "user_not_found", "user not found")
	case errors.Is(err, service.ErrBadCredentials):
		httpx.WriteError(w, http.StatusBadRequest, "bad_credentials", "wrong credentials")
	case errors.Is(err, service.ErrPostNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "post not found")
	case errors.Is(err, service.ErrNotOwner):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "you do not own this post")
	case errors.Is(err, service.ErrUploadFailed):
		log.Error("asset upload failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "upload_failed", "could not store the uploaded file")
	default:
		log.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
	}
}
