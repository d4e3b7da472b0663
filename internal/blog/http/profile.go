package http

import (
	"net/http"

	"github.com/inkwell-press/inkwell/pkg/httpx"
)

type ProfileHandler struct{}

type profileResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ServeHTTP godoc
//
//	@Summary		Current identity
//	@Description	Returns the identity decoded from the session cookie.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	profileResponse
//	@Failure		401	{object}	httpx.ErrorBody	"unauthenticated"
//	@Router			/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		// The guard normally prevents this; fail closed regardless.
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "a valid session is required")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, profileResponse{
		ID:       identity.AccountID,
		Username: identity.Username,
	})
}
