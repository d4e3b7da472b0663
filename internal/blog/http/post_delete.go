package http

import (
	"net/http"

	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/pkg/httpx"
	"github.com/inkwell-press/inkwell/pkg/slogx"
)

type PostDeleteHandler struct {
	PostService *service.PostService
}

type postDeleteResponse struct {
	Deleted string `json:"deleted"`
}

// ServeHTTP godoc
//
//	@Summary		Delete a post
//	@Description	Removes the caller's own post.
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string	true	"post id"
//	@Success		200	{object}	postDeleteResponse
//	@Failure		401	{object}	httpx.ErrorBody	"unauthenticated"
//	@Failure		403	{object}	httpx.ErrorBody	"forbidden"
//	@Failure		404	{object}	httpx.ErrorBody	"not_found"
//	@Router			/delete/{id} [delete].
func (h *PostDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "a valid session is required")
		return
	}

	id := r.PathValue("id")
	if err := h.PostService.Delete(ctx, identity.AccountID, id); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("post deleted", "post_id", id, "author_id", identity.AccountID)
	httpx.WriteJSON(w, http.StatusOK, postDeleteResponse{Deleted: id})
}
