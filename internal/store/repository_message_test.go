package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/models"
)

func newTestMessageRepo(t *testing.T) (*messageRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &messageRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAddMessage(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"message_id", "message", "created_at"}).
		AddRow(1, "welcome back", now)
	mock.ExpectQuery("INSERT INTO user_messages").
		WithArgs(int64(5), "welcome back").
		WillReturnRows(rows)

	msg, err := repo.AddMessage(ctx, 5, "welcome back")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Text != "welcome back" {
		t.Errorf("expected text round-trip, got %q", msg.Text)
	}
	if msg.Source != models.MessageSourceUser {
		t.Errorf("expected user source, got %q", msg.Source)
	}
}

func TestGetAndDeleteMessages_OrderedByID(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	// DELETE ... RETURNING may hand rows back in any order
	rows := sqlmock.NewRows([]string{"message_id", "message", "created_at"}).
		AddRow(3, "third", now).
		AddRow(1, "first", now).
		AddRow(2, "second", now)
	mock.ExpectQuery("DELETE FROM user_messages").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	messages, err := repo.GetAndDeleteMessages(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i, want := range []string{"first", "second", "third"} {
		if messages[i].Text != want {
			t.Errorf("message %d: expected %q, got %q", i, want, messages[i].Text)
		}
	}
}

func TestGetAndDeleteMessages_Empty(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("DELETE FROM user_messages").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"message_id", "message", "created_at"}))

	messages, err := repo.GetAndDeleteMessages(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected empty queue, got %v", messages)
	}
}
