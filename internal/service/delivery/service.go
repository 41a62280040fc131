package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
	deliveryrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/delivery"
	reminderrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/reminder"
)

// ErrDeliveryFinalized is returned when a job targets a delivery that is already SENT or DEAD_LETTER.
var ErrDeliveryFinalized = errors.New("delivery already finalized")

//go:generate mockgen -source=service.go -destination=../../mocks/service/delivery/mock.go -package=mocks
type deliveryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Delivery, error)
	GetByIdempotencyKey(ctx context.Context, key string) (model.Delivery, error)
	Create(ctx context.Context, d model.Delivery) (model.Delivery, error)
	Update(ctx context.Context, d model.Delivery, expected model.DeliveryStatus) error
	UpdateJobID(ctx context.Context, id uuid.UUID, jobID string) error
	ListByReminder(ctx context.Context, reminderID uuid.UUID) ([]model.Delivery, error)
	List(ctx context.Context, filter model.DeliveryFilter) (model.DeliveryPage, error)
	DeleteUnsentByReminders(ctx context.Context, reminderIDs []uuid.UUID) (int64, error)
}

type reminderRepository interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReminderStatus) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service is the delivery tracker: it owns the delivery lifecycle.
type Service struct {
	repo      deliveryRepository
	reminders reminderRepository
	cache     cache
	strategy  retry.Strategy
	now       func() time.Time
}

// NewService creates a delivery tracker. strategy drives the status cache retries.
func NewService(repo deliveryRepository, reminders reminderRepository, cache cache, strategy retry.Strategy) *Service {
	return &Service{
		repo:      repo,
		reminders: reminders,
		cache:     cache,
		strategy:  strategy,
		now:       time.Now,
	}
}

func cacheKey(id uuid.UUID) string {
	return "delivery:" + id.String()
}

func (s *Service) cacheStatus(ctx context.Context, d model.Delivery) {
	if err := s.cache.SetWithRetry(ctx, s.strategy, cacheKey(d.ID), string(d.Status)); err != nil {
		zlog.Logger.Warn().Err(err).Str("delivery_id", d.ID.String()).Msg("failed to cache delivery status")
	}
}

// CreateOrQueue returns the delivery of (reminderID, channel), queuing it for a new attempt.
//
// SENT and PROCESSING deliveries are returned unchanged. Any other existing delivery is
// reset to QUEUED keeping its attempts; a missing one is created. Concurrent creators
// converge on the row that won the unique idempotency key.
func (s *Service) CreateOrQueue(
	ctx context.Context,
	reminderID uuid.UUID,
	channel model.Channel,
	payload model.DeliveryPayload,
	maxAttempts int,
) (model.Delivery, error) {
	key := model.IdempotencyKey(reminderID, channel)
	now := s.now()

	d, err := s.repo.GetByIdempotencyKey(ctx, key)
	if errors.Is(err, deliveryrepo.ErrDeliveryNotFound) {
		return s.create(ctx, model.Delivery{
			ReminderID:     reminderID,
			Channel:        channel,
			Status:         model.DeliveryQueued,
			MaxAttempts:    maxAttempts,
			IdempotencyKey: key,
			QueuedAt:       &now,
			Payload:        &payload,
		})
	}
	if err != nil {
		return model.Delivery{}, fmt.Errorf("get delivery %s: %w", key, err)
	}

	if d.Status.InFlight() {
		return d, nil
	}

	expected := d.Status
	if d.Status, err = d.Status.Next(model.EventQueue); err != nil {
		return model.Delivery{}, err
	}

	d.LastError = nil
	d.DeadLetterAt = nil
	d.Payload = &payload
	d.QueuedAt = &now
	d.MaxAttempts = maxAttempts

	if err := s.repo.Update(ctx, d, expected); err != nil {
		return model.Delivery{}, fmt.Errorf("queue delivery %s: %w", d.ID, err)
	}

	s.cacheStatus(ctx, d)

	return d, nil
}

func (s *Service) create(ctx context.Context, d model.Delivery) (model.Delivery, error) {
	created, err := s.repo.Create(ctx, d)
	if errors.Is(err, deliveryrepo.ErrDuplicateKey) {
		winner, err := s.repo.GetByIdempotencyKey(ctx, d.IdempotencyKey)
		if err != nil {
			return model.Delivery{}, fmt.Errorf("get concurrent delivery %s: %w", d.IdempotencyKey, err)
		}

		return winner, nil
	}
	if err != nil {
		return model.Delivery{}, fmt.Errorf("create delivery: %w", err)
	}

	s.cacheStatus(ctx, created)

	return created, nil
}

// transition loads the delivery, fires event and persists the result guarded by the loaded status.
func (s *Service) transition(
	ctx context.Context,
	d model.Delivery,
	event model.DeliveryEvent,
	mutate func(*model.Delivery),
) (model.Delivery, error) {
	expected := d.Status

	next, err := d.Status.Next(event)
	if err != nil {
		return d, err
	}

	d.Status = next
	mutate(&d)

	if err := s.repo.Update(ctx, d, expected); err != nil {
		return model.Delivery{}, fmt.Errorf("%s delivery %s: %w", event, d.ID, err)
	}

	s.cacheStatus(ctx, d)

	return d, nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (model.Delivery, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Delivery{}, fmt.Errorf("get delivery %s: %w", id, err)
	}

	return d, nil
}

// setReminderStatus moves the owning reminder along. A reminder that was regenerated away is ignored.
func (s *Service) setReminderStatus(ctx context.Context, reminderID uuid.UUID, status model.ReminderStatus) error {
	err := s.reminders.UpdateStatus(ctx, reminderID, status)
	if errors.Is(err, reminderrepo.ErrReminderNotFound) {
		zlog.Logger.Warn().Str("reminder_id", reminderID.String()).Msg("reminder of delivery no longer exists")
		return nil
	}
	if err != nil {
		return fmt.Errorf("set reminder %s %s: %w", reminderID, status, err)
	}

	return nil
}

// MarkProcessing starts an attempt: PROCESSING, attempts+1.
func (s *Service) MarkProcessing(ctx context.Context, id uuid.UUID) (model.Delivery, error) {
	d, err := s.load(ctx, id)
	if err != nil {
		return model.Delivery{}, err
	}

	if d.Status == model.DeliverySent || d.Status == model.DeliveryDeadLetter {
		return d, fmt.Errorf("delivery %s is %s: %w", id, d.Status, ErrDeliveryFinalized)
	}

	now := s.now()

	return s.transition(ctx, d, model.EventProcess, func(d *model.Delivery) {
		d.Attempts++
		d.ProcessedAt = &now
	})
}

// MarkSent records a successful send and marks the owning reminder SENT.
func (s *Service) MarkSent(ctx context.Context, id uuid.UUID, providerMessageID string) (model.Delivery, error) {
	d, err := s.load(ctx, id)
	if err != nil {
		return model.Delivery{}, err
	}

	if d.Status == model.DeliverySent {
		return d, nil
	}

	now := s.now()

	d, err = s.transition(ctx, d, model.EventSend, func(d *model.Delivery) {
		d.SentAt = &now
		d.LastError = nil
		if providerMessageID != "" {
			d.ProviderMessageID = &providerMessageID
		}
	})
	if err != nil {
		return model.Delivery{}, err
	}

	return d, s.setReminderStatus(ctx, d.ReminderID, model.ReminderSent)
}

// MarkFailed records a failed attempt. A SENT delivery is left alone.
func (s *Service) MarkFailed(ctx context.Context, id uuid.UUID, message string) (model.Delivery, error) {
	d, err := s.load(ctx, id)
	if err != nil {
		return model.Delivery{}, err
	}

	if d.Status == model.DeliverySent {
		return d, nil
	}

	return s.transition(ctx, d, model.EventFail, func(d *model.Delivery) {
		d.LastError = &message
	})
}

// MarkDeadLetter gives up on a delivery whose attempts are exhausted and marks the reminder OVERDUE.
// A SENT delivery is left alone.
func (s *Service) MarkDeadLetter(ctx context.Context, id uuid.UUID, message string) (model.Delivery, error) {
	d, err := s.load(ctx, id)
	if err != nil {
		return model.Delivery{}, err
	}

	switch {
	case d.Status == model.DeliverySent, d.Status == model.DeliveryDeadLetter:
		return d, nil
	case !d.Exhausted():
		return d, fmt.Errorf("delivery %s used %d of %d attempts: %w", id, d.Attempts, d.MaxAttempts, model.ErrAttemptsRemaining)
	}

	now := s.now()

	d, err = s.transition(ctx, d, model.EventDeadLetter, func(d *model.Delivery) {
		d.DeadLetterAt = &now
		d.LastError = &message
	})
	if err != nil {
		return model.Delivery{}, err
	}

	return d, s.setReminderStatus(ctx, d.ReminderID, model.ReminderOverdue)
}

// Requeue resets a FAILED or DEAD_LETTER delivery for a fresh round of attempts.
func (s *Service) Requeue(ctx context.Context, id uuid.UUID, maxAttempts int) (model.Delivery, error) {
	d, err := s.load(ctx, id)
	if err != nil {
		return model.Delivery{}, err
	}

	now := s.now()

	return s.transition(ctx, d, model.EventRequeue, func(d *model.Delivery) {
		d.Attempts = 0
		d.MaxAttempts = maxAttempts
		d.LastError = nil
		d.DeadLetterAt = nil
		d.QueuedAt = &now
	})
}

// MarkAsSentByReminder forces every delivery of a reminder to SENT.
func (s *Service) MarkAsSentByReminder(ctx context.Context, reminderID uuid.UUID) error {
	deliveries, err := s.repo.ListByReminder(ctx, reminderID)
	if err != nil {
		return fmt.Errorf("list deliveries of reminder %s: %w", reminderID, err)
	}

	now := s.now()
	for _, d := range deliveries {
		if d.Status == model.DeliverySent {
			continue
		}

		_, err := s.transition(ctx, d, model.EventForceSent, func(d *model.Delivery) {
			d.SentAt = &now
			d.LastError = nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// UpdateJobID records the queue job of a delivery.
func (s *Service) UpdateJobID(ctx context.Context, id uuid.UUID, jobID string) error {
	if err := s.repo.UpdateJobID(ctx, id, jobID); err != nil {
		return fmt.Errorf("update job id of delivery %s: %w", id, err)
	}

	return nil
}

// Get returns one delivery.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.Delivery, error) {
	return s.load(ctx, id)
}

// List returns one page of deliveries.
func (s *Service) List(ctx context.Context, filter model.DeliveryFilter) (model.DeliveryPage, error) {
	page, err := s.repo.List(ctx, filter)
	if err != nil {
		return model.DeliveryPage{}, fmt.Errorf("list deliveries: %w", err)
	}

	return page, nil
}

// DeleteUnsentByReminders drops the not yet sent deliveries of replaced reminders.
func (s *Service) DeleteUnsentByReminders(ctx context.Context, reminderIDs []uuid.UUID) (int64, error) {
	n, err := s.repo.DeleteUnsentByReminders(ctx, reminderIDs)
	if err != nil {
		return 0, fmt.Errorf("delete unsent deliveries: %w", err)
	}

	return n, nil
}

// Status returns the delivery status, reading through the cache.
func (s *Service) Status(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, error) {
	status, err := s.cache.GetWithRetry(ctx, s.strategy, cacheKey(id))
	if err == nil {
		return model.DeliveryStatus(status), nil
	}

	if !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("delivery_id", id.String()).Msg("failed to get delivery status from cache")
	}

	d, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}

	s.cacheStatus(ctx, d)

	return d.Status, nil
}
