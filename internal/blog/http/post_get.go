package http

import (
	"net/http"

	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/pkg/httpx"
	"github.com/inkwell-press/inkwell/pkg/slogx"
)

type PostGetHandler struct {
	PostService *service.PostService
}

// ServeHTTP godoc
//
//	@Summary		Fetch a post
//	@Description	Returns one post with its author. Public, no session required.
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string	true	"post id"
//	@Success		200	{object}	postResponse
//	@Failure		404	{object}	httpx.ErrorBody	"not_found"
//	@Router			/post/{id} [get].
func (h *PostGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := h.PostService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newPostResponse(post))
}
