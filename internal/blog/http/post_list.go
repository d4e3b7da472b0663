package http

import (
	"net/http"

	"github.com/inkwell-press/inkwell/internal/blog/domain"
	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/pkg/httpx"
	"github.com/inkwell-press/inkwell/pkg/slogx"
)

type PostListHandler struct {
	PostService *service.PostService
}

type postListResponse struct {
	Posts []postResponse `json:"posts"`
}

// ServeHTTP godoc
//
//	@Summary		List recent posts
//	@Description	Returns the newest posts, at most 20, each with its author. Public, no session required.
//	@Tags			Posts
//	@Produce		json
//	@Success		200	{object}	postListResponse
//	@Router			/post [get].
func (h *PostListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.PostService.List(ctx)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newPostListResponse(posts))
}

func newPostListResponse(posts []domain.Post) postListResponse {
	out := postListResponse{Posts: make([]postResponse, 0, len(posts))}
	for _, p := range posts {
		out.Posts = append(out.Posts, newPostResponse(p))
	}
	return out
}
