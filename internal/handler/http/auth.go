package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/service"
	"github.com/thirstydigital/django/internal/store"
	"github.com/thirstydigital/django/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg("login already exists")
			http.Error(w, "login already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if err := h.services.MessageService.QueueUserMessage(ctx, registeredUser.UserID, "Welcome! Your account has been created."); err != nil {
		log.Err(err).Msg("queueing the welcome message failed")
	}

	h.issueCredentials(w, r, registeredUser)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, "invalid login/password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrUserInactive):
			log.Err(err).Msg("inactive account")
			http.Error(w, "account is inactive", http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.issueCredentials(w, r, foundUser)
	w.WriteHeader(http.StatusOK)
}

// issueCredentials hands the authenticated user both credential kinds: a
// bearer token in the Authorization response header for API clients, and a
// fresh user-bound session cookie for browser clients. Binding a new
// session rather than upgrading the old one avoids session fixation.
func (h *Handler) issueCredentials(w http.ResponseWriter, r *http.Request, user models.User) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
	} else {
		w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	}

	session, err := h.sessions.CreateSession(ctx, user.UserID, h.settings.Auth.SessionDuration)
	if err != nil {
		log.Err(err).Msg("creation of user session failed")
		return
	}
	h.setSessionCookie(w, session.Key)
}
