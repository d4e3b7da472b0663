package http

import (
	"encoding/json"
	"net/http"

	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/pkg/httpx"
	"github.com/inkwell-press/inkwell/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account for the given username. Usernames are unique and at least four characters.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		credentialsRequest	true	"username and password"
//	@Success		200		{object}	accountResponse
//	@Failure		400		{object}	httpx.ErrorBody	"username_taken or invalid_request"
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	account, err := h.UserService.Register(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("account registered", "account_id", account.ID)
	httpx.WriteJSON(w, http.StatusOK, newAccountResponse(account))
}
