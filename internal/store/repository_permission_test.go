package store

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/thirstydigital/django/internal/logger"
)

func newTestPermRepo(t *testing.T) (*permissionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &permissionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestUserPermissions_MergesAndSorts(t *testing.T) {
	repo, mock, db := newTestPermRepo(t)
	defer db.Close()

	ctx := context.Background()

	directRows := sqlmock.NewRows([]string{"module", "codename"}).
		AddRow("polls", "add_choice").
		AddRow("polls", "delete_choice")
	mock.ExpectQuery("JOIN user_permissions up").
		WithArgs(int64(5)).
		WillReturnRows(directRows)

	// group grants overlap with a direct grant; the union must deduplicate
	groupRows := sqlmock.NewRows([]string{"module", "codename"}).
		AddRow("polls", "add_choice").
		AddRow("auth", "change_user")
	mock.ExpectQuery("JOIN group_permissions gp").
		WithArgs(int64(5)).
		WillReturnRows(groupRows)

	perms, err := repo.UserPermissions(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"auth.change_user", "polls.add_choice", "polls.delete_choice"}
	if !reflect.DeepEqual(perms, want) {
		t.Errorf("expected %v, got %v", want, perms)
	}
}

func TestUserPermissions_NoGrants(t *testing.T) {
	repo, mock, db := newTestPermRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("JOIN user_permissions up").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"module", "codename"}))
	mock.ExpectQuery("JOIN group_permissions gp").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"module", "codename"}))

	perms, err := repo.UserPermissions(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(perms) != 0 {
		t.Errorf("expected no permissions, got %v", perms)
	}
}

func TestUserPermissions_QueryError(t *testing.T) {
	repo, mock, db := newTestPermRepo(t)
	defer db.Close()

	ctx := context.Background()
	dbErr := errors.New("connection lost")

	mock.ExpectQuery("JOIN user_permissions up").
		WithArgs(int64(5)).
		WillReturnError(dbErr)

	_, err := repo.UserPermissions(ctx, 5)
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped %v, got %v", dbErr, err)
	}
}
