package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/thirstydigital/django/internal/utils"
	"github.com/thirstydigital/django/models"
)

func TestGetMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	user := models.User{UserID: 7, IsActive: true}

	queued := []models.Message{
		{Text: "welcome back", Source: models.MessageSourceUser},
		{Text: "profile updated", Source: models.MessageSourceSession},
	}
	mocks.messages.EXPECT().MessagesFor(gomock.Any(), user, "session-key").Return(queued, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	ctx := context.WithValue(r.Context(), utils.UserCtxKey, user)
	ctx = context.WithValue(ctx, utils.SessionKeyCtxKey, "session-key")
	w := httptest.NewRecorder()
	h.getMessages(w, r.WithContext(ctx))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got []models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "welcome back", got[0].Text)
}

func TestGetMessages_EmptyQueueIsAnEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.messages.EXPECT().MessagesFor(gomock.Any(), models.AnonymousUser(), "").Return(nil, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	w := httptest.NewRecorder()
	h.getMessages(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestQueueMessage(t *testing.T) {
	t.Run("authenticated request queues on the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, mocks := newTestHandler(t, ctrl)
		user := models.User{UserID: 7, IsActive: true}
		mocks.messages.EXPECT().QueueUserMessage(gomock.Any(), int64(7), "saved").Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"text":"saved"}`))
		r = r.WithContext(context.WithValue(r.Context(), utils.UserCtxKey, user))
		w := httptest.NewRecorder()
		h.queueMessage(w, r)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("anonymous request queues on the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, mocks := newTestHandler(t, ctrl)
		mocks.messages.EXPECT().QueueSessionMessage(gomock.Any(), "session-key", "saved").Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"text":"saved"}`))
		r = r.WithContext(sessionContext(r, "session-key"))
		w := httptest.NewRecorder()
		h.queueMessage(w, r)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("no user and no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, _ := newTestHandler(t, ctrl)

		r := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"text":"saved"}`))
		w := httptest.NewRecorder()
		h.queueMessage(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, _ := newTestHandler(t, ctrl)

		r := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"text":""}`))
		w := httptest.NewRecorder()
		h.queueMessage(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetServerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	r := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	w := httptest.NewRecorder()
	h.getServerVersion(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.0.0-test", w.Body.String())
}
