package http

import (
	"net/http"

	"github.com/inkwell-press/inkwell/pkg/httpx"
)

type LogoutHandler struct {
	SecureCookies bool
}

// ServeHTTP godoc
//
//	@Summary		Log out
//	@Description	Clears the session cookie. Always succeeds.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}
