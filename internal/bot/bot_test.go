package bot

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgard/savdobot/internal/config"
	"github.com/edgard/savdobot/internal/database"
	"github.com/edgard/savdobot/mocks"
)

type blockingListener struct{ started atomic.Bool }

func (l *blockingListener) Start(ctx context.Context) {
	l.started.Store(true)
	<-ctx.Done()
}

type returningListener struct{}

func (returningListener) Start(context.Context) {}

type fakeScheduler struct {
	startErr error
	started  atomic.Bool
	stopped  atomic.Bool
}

func (s *fakeScheduler) Start(context.Context) error {
	s.started.Store(true)
	return s.startErr
}

func (s *fakeScheduler) Stop() error {
	s.stopped.Store(true)
	return nil
}

type recordingMuter struct {
	chats []int64
	fail  int64
}

func (m *recordingMuter) ApplyChatWideMute(_ context.Context, chatID int64) error {
	if chatID == m.fail {
		return errors.New("not enough rights")
	}
	m.chats = append(m.chats, chatID)
	return nil
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	listener := &blockingListener{}
	sched := &fakeScheduler{}
	b := NewBot(slog.New(slog.DiscardHandler), &config.Config{}, nil, listener, sched, nil)

	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	require.Eventually(t, func() bool { return listener.started.Load() && sched.started.Load() }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	require.True(t, sched.stopped.Load())
}

func TestRunFailsWhenListenerStops(t *testing.T) {
	t.Parallel()

	b := NewBot(slog.New(slog.DiscardHandler), &config.Config{}, nil, returningListener{}, &fakeScheduler{}, nil)
	require.Error(t, b.Run(context.Background()))
}

func TestRunFailsWhenSchedulerFails(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{startErr: errors.New("bad cron")}
	b := NewBot(slog.New(slog.DiscardHandler), &config.Config{}, nil, &blockingListener{}, sched, nil)
	require.ErrorContains(t, b.Run(context.Background()), "bad cron")
}

func TestRunMutesKnownChatsOnStart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().ListChats(gomock.Any()).Return([]database.Chat{{ID: -1}, {ID: -2}, {ID: -3}}, nil)

	cfg := &config.Config{Moderation: config.ModerationConfig{MuteOnStart: true}}
	muter := &recordingMuter{fail: -2}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBot(slog.New(slog.DiscardHandler), cfg, store, &blockingListener{}, &fakeScheduler{}, muter)
	require.NoError(t, b.Run(ctx))
	require.Equal(t, []int64{-1, -3}, muter.chats)
}
