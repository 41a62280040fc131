package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/reminder-dispatcher/internal/mocks/scheduler"
)

func setup(t *testing.T) (*Scheduler, *mocks.MockdueEnqueuer, *mocks.MockoverdueSweeper, time.Time) {
	ctrl := gomock.NewController(t)

	enqueue := mocks.NewMockdueEnqueuer(ctrl)
	sweep := mocks.NewMockoverdueSweeper(ctrl)
	now := time.Date(2024, time.April, 8, 9, 0, 0, 0, time.UTC)

	s := New(enqueue, sweep)
	s.now = func() time.Time { return now }

	return s, enqueue, sweep, now
}

func TestTick(t *testing.T) {
	s, enqueue, sweep, now := setup(t)
	ctx := context.Background()

	gomock.InOrder(
		enqueue.EXPECT().EnqueueDueReminders(ctx, now).Return(2, nil),
		sweep.EXPECT().SweepOverdue(ctx, now).Return(int64(1), nil),
	)

	s.Tick(ctx)
	assert.False(t, s.running.Load())
}

func TestTick_EnqueueErrorStillSweeps(t *testing.T) {
	s, enqueue, sweep, now := setup(t)
	ctx := context.Background()

	enqueue.EXPECT().EnqueueDueReminders(ctx, now).Return(0, errors.New("db down"))
	sweep.EXPECT().SweepOverdue(ctx, now).Return(int64(0), errors.New("db down"))

	s.Tick(ctx)
	assert.False(t, s.running.Load())
}

func TestTick_SkipsWhenPreviousRunning(t *testing.T) {
	s, enqueue, sweep, _ := setup(t)

	enqueue.EXPECT().EnqueueDueReminders(gomock.Any(), gomock.Any()).Times(0)
	sweep.EXPECT().SweepOverdue(gomock.Any(), gomock.Any()).Times(0)

	s.running.Store(true)
	s.Tick(context.Background())
	assert.True(t, s.running.Load())
}

func TestEvery_InvalidSpec(t *testing.T) {
	s, _, _, _ := setup(t)

	assert.Error(t, s.Every("not a cron", func() {}))
	assert.NoError(t, s.Every("@every 1m", func() {}))
}

func TestSchedule_InvalidSpec(t *testing.T) {
	s, _, _, _ := setup(t)

	assert.Error(t, s.Schedule(context.Background(), "61 * * * *"))
}

func TestStartStop_RunsRegisteredJob(t *testing.T) {
	s, _, _, _ := setup(t)

	ran := make(chan struct{}, 1)
	assert.NoError(t, s.Every("@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}))

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestStart_RecoversPanickingJob(t *testing.T) {
	s, _, _, _ := setup(t)

	var calls atomic.Int32
	recovered := make(chan struct{}, 1)
	assert.NoError(t, s.Every("@every 1s", func() {
		if calls.Add(1) == 1 {
			panic("pool stats unavailable")
		}

		select {
		case recovered <- struct{}{}:
		default:
		}
	}))

	s.Start()
	defer s.Stop()

	select {
	case <-recovered:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run again after panicking")
	}
}

func TestCronLogger(t *testing.T) {
	var l cronLogger

	assert.NotPanics(t, func() {
		l.Info("wake", "now", time.Now())
		l.Error(errors.New("boom"), "panic", "stack", "...")
	})
}
