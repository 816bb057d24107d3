package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/mock"
)

func TestSessionCleaner_SweepsImmediatelyAndOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mock.NewMockSessionStore(ctrl)

	swept := make(chan struct{}, 8)
	mockSessions.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			swept <- struct{}{}
			return 1, nil
		}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleaner := NewSessionCleaner(mockSessions, 10*time.Millisecond, logger.Nop())
	go cleaner.Run(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatalf("sweep %d did not happen in time", i+1)
		}
	}
}

func TestSessionCleaner_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mock.NewMockSessionStore(ctrl)
	mockSessions.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	cleaner := NewSessionCleaner(mockSessions, time.Millisecond, logger.Nop())

	done := make(chan struct{})
	go func() {
		cleaner.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleaner did not stop after cancellation")
	}
}

func TestWorkers_RunDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		(&Workers{}).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run must return immediately")
	}
}
