package http

import (
	"net/http"

	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/pkg/httpx"
	"github.com/inkwell-press/inkwell/pkg/slogx"
)

type PostCreateHandler struct {
	PostService    *service.PostService
	MaxUploadBytes int64
}

// ServeHTTP godoc
//
//	@Summary		Create a post
//	@Description	Creates a post owned by the session's account. Multipart body with title, summary, content and an optional file.
//	@Tags			Posts
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title	formData	string	true	"post title"
//	@Param			summary	formData	string	false	"short summary"
//	@Param			content	formData	string	false	"body text"
//	@Param			file	formData	file	false	"cover image"
//	@Success		200		{object}	postResponse
//	@Failure		401		{object}	httpx.ErrorBody	"unauthenticated"
//	@Router			/post [post].
func (h *PostCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "a valid session is required")
		return
	}

	if err := parseMultipart(w, r, h.MaxUploadBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed multipart body")
		return
	}

	upload, err := formUpload(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "unreadable file part")
		return
	}

	post, err := h.PostService.Create(ctx, identity.AccountID, service.CreatePostInput{
		Title:   r.FormValue("title"),
		Summary: r.FormValue("summary"),
		Content: r.FormValue("content"),
	}, upload)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("post created", "post_id", post.ID, "author_id", identity.AccountID)
	httpx.WriteJSON(w, http.StatusOK, newPostResponse(post))
}
