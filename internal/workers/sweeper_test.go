package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/mock"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/models"
)

func TestRefreshSessionSweeper_DeletesExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	repo := store.NewMemoryRefreshSessionRepository()
	require.NoError(t, repo.SaveRefreshSession(ctx, models.RefreshSession{TokenHash: "old", UserID: 1, ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, repo.SaveRefreshSession(ctx, models.RefreshSession{TokenHash: "fresh", UserID: 1, ExpiresAt: now.Add(time.Hour)}))

	sweeper := NewRefreshSessionSweeper(repo, time.Hour, logger.Nop())
	sweeper.now = func() time.Time { return now }
	sweeper.sweep(ctx)

	_, err := repo.TakeRefreshSession(ctx, "old")
	assert.ErrorIs(t, err, store.ErrRefreshSessionNotFound)

	session, err := repo.TakeRefreshSession(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.UserID)
}

func TestRefreshSessionSweeper_RunTicksUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRefreshSessionRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	repo.EXPECT().
		DeleteExpiredRefreshSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int, error) {
			cancel()
			return 2, nil
		}).
		MinTimes(1)

	done := make(chan struct{})
	go func() {
		NewRefreshSessionSweeper(repo, time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}

func TestRefreshSessionSweeper_ErrorDoesNotStopLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRefreshSessionRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		repo.EXPECT().DeleteExpiredRefreshSessions(gomock.Any(), gomock.Any()).Return(0, assert.AnError),
		repo.EXPECT().DeleteExpiredRefreshSessions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, time.Time) (int, error) {
				cancel()
				return 0, nil
			}).
			MinTimes(1),
	)

	NewRefreshSessionSweeper(repo, time.Millisecond, logger.Nop()).Run(ctx)
}

func TestNewRefreshSessionSweeper_DefaultInterval(t *testing.T) {
	sweeper := NewRefreshSessionSweeper(store.NewMemoryRefreshSessionRepository(), 0, logger.Nop())

	assert.Equal(t, DefaultSweepInterval, sweeper.interval)
}
