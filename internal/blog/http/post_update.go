package http

import (
	"net/http"

	"github.com/inkwell-press/inkwell/internal/blog/domain"
	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/pkg/httpx"
	"github.com/inkwell-press/inkwell/pkg/slogx"
)

type PostUpdateHandler struct {
	PostService    *service.PostService
	MaxUploadBytes int64
}

// ServeHTTP godoc
//
//	@Summary		Update a post
//	@Description	Partially updates the caller's own post. Only provided multipart fields overwrite stored values; a new file replaces the cover.
//	@Tags			Posts
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"post id"
//	@Param			title	formData	string	false	"post title"
//	@Param			summary	formData	string	false	"short summary"
//	@Param			content	formData	string	false	"body text"
//	@Param			file	formData	file	false	"replacement cover image"
//	@Success		200		{object}	postResponse
//	@Failure		401		{object}	httpx.ErrorBody	"unauthenticated"
//	@Failure		403		{object}	httpx.ErrorBody	"forbidden"
//	@Failure		404		{object}	httpx.ErrorBody	"not_found"
//	@Router			/post/{id} [put].
func (h *PostUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	patch := domain.PostPatch{
		Title:   formValuePtr(r, "title"),
		Summary: formValuePtr(r, "summary"),
		Content: formValuePtr(r, "content"),
	}

	post, err := h.PostService.Update(ctx, identity.AccountID, r.PathValue("id"), patch, upload)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("post updated", "post_id", post.ID, "author_id", identity.AccountID)
	httpx.WriteJSON(w, http.StatusOK, newPostResponse(post))
}
