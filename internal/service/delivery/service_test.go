package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/reminder-dispatcher/internal/mocks/service/delivery"
	"github.com/aliskhannn/reminder-dispatcher/internal/model"
	deliveryrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/delivery"
	reminderrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/reminder"
)

type testDeps struct {
	repo      *mocks.MockdeliveryRepository
	reminders *mocks.MockreminderRepository
	cache     *mocks.Mockcache
}

var (
	strategy = retry.Strategy{Attempts: 1}
	fixedNow = time.Date(2024, time.April, 8, 9, 0, 0, 0, time.UTC)
)

func setupService(t *testing.T) (*Service, testDeps) {
	ctrl := gomock.NewController(t)

	deps := testDeps{
		repo:      mocks.NewMockdeliveryRepository(ctrl),
		reminders: mocks.NewMockreminderRepository(ctrl),
		cache:     mocks.NewMockcache(ctrl),
	}

	svc := NewService(deps.repo, deps.reminders, deps.cache, strategy)
	svc.now = func() time.Time { return fixedNow }

	return svc, deps
}

func (d testDeps) expectCache(id uuid.UUID, status model.DeliveryStatus) {
	d.cache.EXPECT().SetWithRetry(gomock.Any(), strategy, "delivery:"+id.String(), string(status)).Return(nil)
}

// expectUpdate captures the delivery written by the next Update.
func (d testDeps) expectUpdate(expected model.DeliveryStatus, got *model.Delivery) {
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), expected).DoAndReturn(
		func(_ context.Context, del model.Delivery, _ model.DeliveryStatus) error {
			*got = del
			return nil
		},
	)
}

func TestService_CreateOrQueue_New(t *testing.T) {
	svc, deps := setupService(t)

	reminderID := uuid.New()
	payload := model.DeliveryPayload{ReminderID: reminderID, Message: "hi", RequestedChannel: model.ChannelSMS, ResolvedChannel: model.ChannelInApp}
	key := model.IdempotencyKey(reminderID, model.ChannelInApp)
	id := uuid.New()

	deps.repo.EXPECT().GetByIdempotencyKey(gomock.Any(), key).Return(model.Delivery{}, deliveryrepo.ErrDeliveryNotFound)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d model.Delivery) (model.Delivery, error) {
			assert.Equal(t, model.DeliveryQueued, d.Status)
			assert.Zero(t, d.Attempts)
			assert.Equal(t, 5, d.MaxAttempts)
			assert.Equal(t, key, d.IdempotencyKey)
			assert.Equal(t, &payload, d.Payload)
			d.ID = id
			return d, nil
		},
	)
	deps.expectCache(id, model.DeliveryQueued)

	d, err := svc.CreateOrQueue(context.Background(), reminderID, model.ChannelInApp, payload, 5)
	require.NoError(t, err)
	assert.Equal(t, id, d.ID)
}

func TestService_CreateOrQueue_ConcurrentInsertReturnsWinner(t *testing.T) {
	svc, deps := setupService(t)

	reminderID := uuid.New()
	key := model.IdempotencyKey(reminderID, model.ChannelInApp)
	winner := model.Delivery{ID: uuid.New(), ReminderID: reminderID, Status: model.DeliveryQueued, IdempotencyKey: key}

	gomock.InOrder(
		deps.repo.EXPECT().GetByIdempotencyKey(gomock.Any(), key).Return(model.Delivery{}, deliveryrepo.ErrDeliveryNotFound),
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Delivery{}, deliveryrepo.ErrDuplicateKey),
		deps.repo.EXPECT().GetByIdempotencyKey(gomock.Any(), key).Return(winner, nil),
	)

	d, err := svc.CreateOrQueue(context.Background(), reminderID, model.ChannelInApp, model.DeliveryPayload{}, 5)
	require.NoError(t, err)
	assert.Equal(t, winner, d)
}

func TestService_CreateOrQueue_InFlightUnchanged(t *testing.T) {
	for _, status := range []model.DeliveryStatus{model.DeliverySent, model.DeliveryProcessing} {
		t.Run(string(status), func(t *testing.T) {
			svc, deps := setupService(t)

			existing := model.Delivery{ID: uuid.New(), Status: status, Attempts: 1}
			deps.repo.EXPECT().GetByIdempotencyKey(gomock.Any(), gomock.Any()).Return(existing, nil)

			d, err := svc.CreateOrQueue(context.Background(), uuid.New(), model.ChannelInApp, model.DeliveryPayload{}, 5)
			require.NoError(t, err)
			assert.Equal(t, existing, d)
		})
	}
}

func TestService_CreateOrQueue_ResetsFailedKeepingAttempts(t *testing.T) {
	svc, deps := setupService(t)

	lastErr := "timeout"
	existing := model.Delivery{ID: uuid.New(), Status: model.DeliveryFailed, Attempts: 2, MaxAttempts: 3, LastError: &lastErr}
	deps.repo.EXPECT().GetByIdempotencyKey(gomock.Any(), gomock.Any()).Return(existing, nil)

	var written model.Delivery
	deps.expectUpdate(model.DeliveryFailed, &written)
	deps.expectCache(existing.ID, model.DeliveryQueued)

	d, err := svc.CreateOrQueue(context.Background(), uuid.New(), model.ChannelInApp, model.DeliveryPayload{Message: "new"}, 5)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryQueued, written.Status)
	assert.Equal(t, 2, written.Attempts)
	assert.Equal(t, 5, written.MaxAttempts)
	assert.Nil(t, written.LastError)
	assert.Equal(t, "new", written.Payload.Message)
	assert.Equal(t, written, d)
}

func TestService_MarkProcessing(t *testing.T) {
	svc, deps := setupService(t)

	existing := model.Delivery{ID: uuid.New(), Status: model.DeliveryQueued, Attempts: 0, MaxAttempts: 3}
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

	var written model.Delivery
	deps.expectUpdate(model.DeliveryQueued, &written)
	deps.expectCache(existing.ID, model.DeliveryProcessing)

	d, err := svc.MarkProcessing(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryProcessing, d.Status)
	assert.Equal(t, 1, d.Attempts)
	assert.Equal(t, &fixedNow, d.ProcessedAt)
}

func TestService_MarkProcessing_Finalized(t *testing.T) {
	for _, status := range []model.DeliveryStatus{model.DeliverySent, model.DeliveryDeadLetter} {
		t.Run(string(status), func(t *testing.T) {
			svc, deps := setupService(t)

			existing := model.Delivery{ID: uuid.New(), Status: status}
			deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

			_, err := svc.MarkProcessing(context.Background(), existing.ID)
			assert.ErrorIs(t, err, ErrDeliveryFinalized)
		})
	}
}

func TestService_MarkProcessing_Stale(t *testing.T) {
	svc, deps := setupService(t)

	existing := model.Delivery{ID: uuid.New(), Status: model.DeliveryQueued}
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any(), model.DeliveryQueued).Return(deliveryrepo.ErrStaleDelivery)

	_, err := svc.MarkProcessing(context.Background(), existing.ID)
	assert.ErrorIs(t, err, deliveryrepo.ErrStaleDelivery)
}

func TestService_MarkSent(t *testing.T) {
	svc, deps := setupService(t)

	lastErr := "boom"
	existing := model.Delivery{ID: uuid.New(), ReminderID: uuid.New(), Status: model.DeliveryProcessing, Attempts: 2, LastError: &lastErr}
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

	var written model.Delivery
	deps.expectUpdate(model.DeliveryProcessing, &written)
	deps.expectCache(existing.ID, model.DeliverySent)
	deps.reminders.EXPECT().UpdateStatus(gomock.Any(), existing.ReminderID, model.ReminderSent).Return(nil)

	d, err := svc.MarkSent(context.Background(), existing.ID, "in-app-1")
	require.NoError(t, err)
	assert.Equal(t, model.DeliverySent, d.Status)
	assert.Nil(t, d.LastError)
	assert.Equal(t, &fixedNow, d.SentAt)
	require.NotNil(t, d.ProviderMessageID)
	assert.Equal(t, "in-app-1", *d.ProviderMessageID)
}

func TestService_MarkSent_ReminderGone(t *testing.T) {
	svc, deps := setupService(t)

	existing := model.Delivery{ID: uuid.New(), ReminderID: uuid.New(), Status: model.DeliveryProcessing}
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any(), model.DeliveryProcessing).Return(nil)
	deps.expectCache(existing.ID, model.DeliverySent)
	deps.reminders.EXPECT().UpdateStatus(gomock.Any(), existing.ReminderID, model.ReminderSent).Return(reminderrepo.ErrReminderNotFound)

	_, err := svc.MarkSent(context.Background(), existing.ID, "")
	assert.NoError(t, err)
}

func TestService_SentIsAbsorbing(t *testing.T) {
	svc, deps := setupService(t)

	sent := model.Delivery{ID: uuid.New(), Status: model.DeliverySent, Attempts: 3, MaxAttempts: 3}
	deps.repo.EXPECT().GetByID(gomock.Any(), sent.ID).Return(sent, nil).Times(3)

	d, err := svc.MarkFailed(context.Background(), sent.ID, "late failure")
	require.NoError(t, err)
	assert.Equal(t, model.DeliverySent, d.Status)

	d, err = svc.MarkDeadLetter(context.Background(), sent.ID, "late failure")
	require.NoError(t, err)
	assert.Equal(t, model.DeliverySent, d.Status)

	d, err = svc.MarkSent(context.Background(), sent.ID, "again")
	require.NoError(t, err)
	assert.Equal(t, model.DeliverySent, d.Status)
}

func TestService_MarkFailed(t *testing.T) {
	svc, deps := setupService(t)

	existing := model.Delivery{ID: uuid.New(), Status: model.DeliveryProcessing, Attempts: 1}
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

	var written model.Delivery
	deps.expectUpdate(model.DeliveryProcessing, &written)
	deps.expectCache(existing.ID, model.DeliveryFailed)

	d, err := svc.MarkFailed(context.Background(), existing.ID, "provider down")
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryFailed, d.Status)
	assert.Equal(t, 1, d.Attempts)
	require.NotNil(t, d.LastError)
	assert.Equal(t, "provider down", *d.LastError)
}

func TestService_MarkDeadLetter_AttemptsRemaining(t *testing.T) {
	svc, deps := setupService(t)

	existing := model.Delivery{ID: uuid.New(), Status: model.DeliveryFailed, Attempts: 2, MaxAttempts: 3}
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

	_, err := svc.MarkDeadLetter(context.Background(), existing.ID, "boom")
	assert.ErrorIs(t, err, model.ErrAttemptsRemaining)
}

func TestService_MarkDeadLetter(t *testing.T) {
	svc, deps := setupService(t)

	existing := model.Delivery{ID: uuid.New(), ReminderID: uuid.New(), Status: model.DeliveryProcessing, Attempts: 3, MaxAttempts: 3}
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

	var written model.Delivery
	deps.expectUpdate(model.DeliveryProcessing, &written)
	deps.expectCache(existing.ID, model.DeliveryDeadLetter)
	deps.reminders.EXPECT().UpdateStatus(gomock.Any(), existing.ReminderID, model.ReminderOverdue).Return(nil)

	d, err := svc.MarkDeadLetter(context.Background(), existing.ID, "boom")
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryDeadLetter, d.Status)
	assert.Equal(t, &fixedNow, d.DeadLetterAt)
	assert.Equal(t, 3, d.Attempts)
}

func TestService_Requeue(t *testing.T) {
	svc, deps := setupService(t)

	lastErr := "boom"
	existing := model.Delivery{
		ID: uuid.New(), Status: model.DeliveryDeadLetter, Attempts: 3, MaxAttempts: 3,
		LastError: &lastErr, DeadLetterAt: &fixedNow,
	}
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

	var written model.Delivery
	deps.expectUpdate(model.DeliveryDeadLetter, &written)
	deps.expectCache(existing.ID, model.DeliveryQueued)

	d, err := svc.Requeue(context.Background(), existing.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryQueued, d.Status)
	assert.Zero(t, d.Attempts)
	assert.Nil(t, d.LastError)
	assert.Nil(t, d.DeadLetterAt)
}

func TestService_Requeue_InvalidTransition(t *testing.T) {
	for _, status := range []model.DeliveryStatus{model.DeliveryQueued, model.DeliveryProcessing, model.DeliverySent} {
		t.Run(string(status), func(t *testing.T) {
			svc, deps := setupService(t)

			existing := model.Delivery{ID: uuid.New(), Status: status}
			deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

			_, err := svc.Requeue(context.Background(), existing.ID, 3)
			assert.ErrorIs(t, err, model.ErrInvalidTransition)
		})
	}
}

func TestService_MarkAsSentByReminder(t *testing.T) {
	svc, deps := setupService(t)

	reminderID := uuid.New()
	sent := model.Delivery{ID: uuid.New(), Status: model.DeliverySent}
	failed := model.Delivery{ID: uuid.New(), Status: model.DeliveryFailed}
	queued := model.Delivery{ID: uuid.New(), Status: model.DeliveryQueued}

	deps.repo.EXPECT().ListByReminder(gomock.Any(), reminderID).Return([]model.Delivery{sent, failed, queued}, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any(), model.DeliveryFailed).Return(nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any(), model.DeliveryQueued).Return(nil)
	deps.expectCache(failed.ID, model.DeliverySent)
	deps.expectCache(queued.ID, model.DeliverySent)

	assert.NoError(t, svc.MarkAsSentByReminder(context.Background(), reminderID))
}

func TestService_Status_CacheHit(t *testing.T) {
	svc, deps := setupService(t)

	id := uuid.New()
	deps.cache.EXPECT().GetWithRetry(gomock.Any(), strategy, "delivery:"+id.String()).Return("SENT", nil)

	status, err := svc.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.DeliverySent, status)
}

func TestService_Status_CacheMiss(t *testing.T) {
	svc, deps := setupService(t)

	existing := model.Delivery{ID: uuid.New(), Status: model.DeliveryFailed}
	deps.cache.EXPECT().GetWithRetry(gomock.Any(), strategy, "delivery:"+existing.ID.String()).Return("", redis.Nil)
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	deps.expectCache(existing.ID, model.DeliveryFailed)

	status, err := svc.Status(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryFailed, status)
}

func TestService_Status_CacheDownFallsBackToDB(t *testing.T) {
	svc, deps := setupService(t)

	existing := model.Delivery{ID: uuid.New(), Status: model.DeliveryQueued}
	deps.cache.EXPECT().GetWithRetry(gomock.Any(), strategy, gomock.Any()).Return("", errors.New("connection refused"))
	deps.repo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	deps.cache.EXPECT().SetWithRetry(gomock.Any(), strategy, gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	status, err := svc.Status(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryQueued, status)
}
