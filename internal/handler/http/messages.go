package http

import (
	"encoding/json"
	"net/http"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/utils"
	"github.com/thirstydigital/django/models"
)

type queueMessageRequest struct {
	Text string `json:"text"`
}

// getMessages drains and returns the messages queued for the request: the
// user's queue first, then the session's. Reading consumes the queues.
func (h *Handler) getMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.UserFromContext(ctx)
	if !ok {
		user = models.AnonymousUser()
	}
	sessionKey, _ := utils.SessionKeyFromContext(ctx)

	messages, err := h.services.MessageService.MessagesFor(ctx, user, sessionKey)
	if err != nil {
		log.Err(err).Msg("draining messages failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

// queueMessage stores a message for later delivery: on the user's queue for
// authenticated requests, on the session's queue otherwise.
func (h *Handler) queueMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req queueMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "message text is required", http.StatusBadRequest)
		return
	}

	if user, ok := utils.UserFromContext(ctx); ok {
		if err := h.services.MessageService.QueueUserMessage(ctx, user.UserID, req.Text); err != nil {
			log.Err(err).Msg("queueing user message failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusAccepted)
		return
	}

	sessionKey, ok := utils.SessionKeyFromContext(ctx)
	if !ok {
		http.Error(w, "no user or session to queue the message for", http.StatusBadRequest)
		return
	}

	if err := h.services.MessageService.QueueSessionMessage(ctx, sessionKey, req.Text); err != nil {
		log.Err(err).Msg("queueing session message failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
