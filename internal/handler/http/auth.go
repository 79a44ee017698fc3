package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r.Body, &user); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		status, message := responseFromError(err)
		if status == http.StatusInternalServerError {
			message = app.MsgRegistrationFailed
		}
		log.Err(err).Str("func", "*Handler.register").Msg("error registering user")
		utils.WriteError(w, message, status)
		return
	}

	h.writeSession(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r.Body, &user); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		status, message := responseFromError(err)
		if status == http.StatusInternalServerError {
			message = app.MsgLoginFailed
		}
		log.Err(err).Str("func", "*Handler.login").Str("login", user.Login).Msg("error logging in")
		utils.WriteError(w, message, status)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeSession(w, r, foundUser)
}

// writeSession issues a token for user and answers with the session body.
func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.writeSession").Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.Session{Login: user.Login, IdentityID: user.IdentityID}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := getTokenFromContext(ctx)
	if !ok {
		log.Err(ErrNoTokenInContext).Str("func", "*Handler.logout").Send()
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.RevokeToken(ctx, token); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error revoking token")
		status, message := responseFromError(err)
		utils.WriteError(w, message, status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
