package templatectx

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/service"
	"github.com/thirstydigital/django/internal/utils"
	"github.com/thirstydigital/django/models"
)

// LazyMessages is a lazy proxy for user and session messages.
//
// The underlying queues are drained at most once per instance, and only when
// one of the accessors is called: a template that never touches "messages"
// costs nothing and deletes nothing. Repeated accessor calls reuse the first
// result.
type LazyMessages struct {
	r   *http.Request
	svc service.MessageService

	once sync.Once
	msgs []models.Message
}

// NewLazyMessages builds a lazy message view for the given request. Nothing
// is fetched until an accessor is called.
func NewLazyMessages(r *http.Request, svc service.MessageService) *LazyMessages {
	return &LazyMessages{r: r, svc: svc}
}

// Messages returns the drained messages: the request user's queue first,
// then the session's. The first call drains and memoizes; draining errors
// are logged and degrade to whatever was collected before the failure.
func (l *LazyMessages) Messages() []models.Message {
	l.once.Do(func() {
		ctx := l.r.Context()

		user, ok := utils.UserFromContext(ctx)
		if !ok {
			user = models.AnonymousUser()
		}
		sessionKey, _ := utils.SessionKeyFromContext(ctx)

		msgs, err := l.svc.MessagesFor(ctx, user, sessionKey)
		if err != nil {
			logger.FromContext(ctx).Err(err).Msg("draining template messages failed")
		}
		l.msgs = msgs
	})
	return l.msgs
}

// Len returns the number of messages.
func (l *LazyMessages) Len() int {
	return len(l.Messages())
}

// Present reports whether any messages exist.
func (l *LazyMessages) Present() bool {
	return l.Len() > 0
}

// String implements [fmt.Stringer].
func (l *LazyMessages) String() string {
	return fmt.Sprintf("%v", l.Messages())
}
