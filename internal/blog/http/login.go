package http

import (
	"encoding/json"
	"net/http"

	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/pkg/httpx"
	"github.com/inkwell-press/inkwell/pkg/slogx"
)

type LoginHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
	SecureCookies  bool
}

type loginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and sets the session token cookie.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		credentialsRequest	true	"username and password"
//	@Success		200		{object}	loginResponse
//	@Failure		400		{object}	httpx.ErrorBody	"bad_credentials"
//	@Failure		404		{object}	httpx.ErrorBody	"user_not_found"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	account, err := h.UserService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	token, expiresAt, err := h.SessionService.Issue(account.ID, account.Username)
	if err != nil {
		log.Error("failed to issue session token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	setSessionCookie(w, token, expiresAt, h.SecureCookies)
	httpx.NoCache(w)

	log.Info("login", "account_id", account.ID)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		ID:       account.ID,
		Username: account.Username,
	})
}
