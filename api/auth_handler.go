package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
	"github.com/snsihub/showcase-portal-backend/services"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	backend   *services.Client
	issuer    tokenIssuer
}

func newAuthHandler(backend *services.Client, issuer tokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		backend:   backend,
		issuer:    issuer,
	}
}

// loginResponse extends the backend auth result with the portal session
// token the client presents on subsequent requests.
type loginResponse struct {
	Message  string      `json:"message"`
	StaffID  string      `json:"staff_id"`
	UserName string      `json:"user_name"`
	Role     models.Role `json:"role"`
	Token    string      `json:"token"`
}

// login proxies the credential exchange to the collaborator backend and
// mints a session token from the result.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
			h.responder.WriteError(w, errs.NewValidationError("email", "email and password are required"))
			return
		}

		auth, err := h.backend.Login(r.Context(), creds)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if _, ok := models.ParseRole(string(auth.Role)); !ok {
			h.logger.Error().Str("role", string(auth.Role)).Msg("backend returned unknown role")
			h.responder.WriteError(w, errs.NewInternalError("login failed"))
			return
		}

		token, err := h.issuer.mint(auth)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to mint session token")
			h.responder.WriteError(w, errs.NewInternalError("login failed"))
			return
		}

		h.responder.WriteJSON(w, loginResponse{
			Message:  auth.Message,
			StaffID:  auth.StaffID,
			UserName: auth.UserName,
			Role:     auth.Role,
			Token:    token,
		})
	}
}

// register forwards a sign-up request to the collaborator backend.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reg models.Registration
		if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if strings.TrimSpace(reg.Email) == "" || reg.Password == "" {
			h.responder.WriteError(w, errs.NewValidationError("email", "email and password are required"))
			return
		}
		if _, ok := models.ParseRole(string(reg.Role)); !ok {
			h.responder.WriteError(w, errs.NewValidationError("role", "unknown role"))
			return
		}

		auth, err := h.backend.Register(r.Context(), reg)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, auth)
	}
}
