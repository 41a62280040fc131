package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/channel"
	"github.com/aliskhannn/reminder-dispatcher/internal/metrics"
	"github.com/aliskhannn/reminder-dispatcher/internal/model"
	"github.com/aliskhannn/reminder-dispatcher/internal/rabbitmq/queue"
	deliveryrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/delivery"
	reminderrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/reminder"
	deliverysvc "github.com/aliskhannn/reminder-dispatcher/internal/service/delivery"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatch/mock.go -package=mocks
type reminderRepository interface {
	FindDue(ctx context.Context, now time.Time) ([]model.Reminder, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Reminder, error)
}

type deliveryTracker interface {
	CreateOrQueue(ctx context.Context, reminderID uuid.UUID, channel model.Channel, payload model.DeliveryPayload, maxAttempts int) (model.Delivery, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) (model.Delivery, error)
	MarkSent(ctx context.Context, id uuid.UUID, providerMessageID string) (model.Delivery, error)
	MarkFailed(ctx context.Context, id uuid.UUID, message string) (model.Delivery, error)
	MarkDeadLetter(ctx context.Context, id uuid.UUID, message string) (model.Delivery, error)
	Requeue(ctx context.Context, id uuid.UUID, maxAttempts int) (model.Delivery, error)
	UpdateJobID(ctx context.Context, id uuid.UUID, jobID string) error
}

type jobQueue interface {
	EnqueueDispatch(ctx context.Context, payload queue.DispatchPayload, opts queue.JobOptions) (string, error)
	EnqueueDeadLetter(ctx context.Context, payload queue.DispatchPayload, reason string) (string, error)
}

type channelResolver interface {
	Resolve(requested model.Channel) model.Channel
	Get(requested model.Channel) (model.Channel, channel.Sender)
}

// Options tune dispatch retries.
type Options struct {
	MaxAttempts  int
	RetryDelay   time.Duration
	RetryBackoff bool
}

func (o Options) jobOptions() queue.JobOptions {
	return queue.JobOptions{
		RetryLimit:   max(0, o.MaxAttempts-1),
		RetryDelay:   o.RetryDelay,
		RetryBackoff: o.RetryBackoff,
	}
}

// Service is the dispatch orchestrator.
//
// It turns due reminders into queued deliveries and executes the jobs the
// workers hand back, recording each outcome with the delivery tracker.
type Service struct {
	reminders reminderRepository
	tracker   deliveryTracker
	queue     jobQueue
	resolver  channelResolver
	metrics   *metrics.Metrics
	opts      Options
}

// NewService creates a dispatch orchestrator.
func NewService(
	reminders reminderRepository,
	tracker deliveryTracker,
	q jobQueue,
	resolver channelResolver,
	m *metrics.Metrics,
	opts Options,
) *Service {
	return &Service{
		reminders: reminders,
		tracker:   tracker,
		queue:     q,
		resolver:  resolver,
		metrics:   m,
		opts:      opts,
	}
}

// EnqueueDueReminders queues a dispatch job for every reminder due at now.
//
// A reminder that fails is logged and skipped. The returned count covers the
// jobs actually published.
func (s *Service) EnqueueDueReminders(ctx context.Context, now time.Time) (int, error) {
	due, err := s.reminders.FindDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("find due reminders: %w", err)
	}

	count := 0
	for _, r := range due {
		enqueued, err := s.enqueueReminder(ctx, r)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("reminder_id", r.ID.String()).Msg("failed to enqueue reminder")
			continue
		}

		if enqueued {
			count++
		}
	}

	zlog.Logger.Info().Int("due", len(due)).Int("enqueued", count).Msg("due reminders scanned")

	return count, nil
}

func (s *Service) enqueueReminder(ctx context.Context, r model.Reminder) (bool, error) {
	requested := r.RequestedChannel()
	resolved := s.resolver.Resolve(requested)

	payload := model.DeliveryPayload{
		ReminderID:       r.ID,
		Message:          r.Message,
		TargetID:         r.TargetID,
		RequestedChannel: requested,
		ResolvedChannel:  resolved,
	}

	d, err := s.tracker.CreateOrQueue(ctx, r.ID, resolved, payload, s.opts.MaxAttempts)
	if err != nil {
		return false, err
	}

	if d.Status.InFlight() {
		return false, nil
	}

	if _, err := s.publish(ctx, d, requested, "scan"); err != nil {
		return false, err
	}

	return true, nil
}

func (s *Service) publish(ctx context.Context, d model.Delivery, requested model.Channel, source string) (string, error) {
	jobID, err := s.queue.EnqueueDispatch(ctx, queue.DispatchPayload{
		DeliveryID:       d.ID,
		ReminderID:       d.ReminderID,
		Channel:          d.Channel,
		RequestedChannel: requested,
	}, s.opts.jobOptions())
	if err != nil {
		return "", fmt.Errorf("enqueue delivery %s: %w", d.ID, err)
	}

	s.metrics.JobsEnqueued.WithLabelValues(string(d.Channel), source).Inc()

	if err := s.tracker.UpdateJobID(ctx, d.ID, jobID); err != nil {
		return "", err
	}

	return jobID, nil
}

// ProcessDispatchJob performs one send attempt of a delivery.
//
// Duplicate jobs for finalized or deleted deliveries are acknowledged as no-ops.
// A failed send returns the error so the queue retries it, unless the attempts are
// exhausted: then the delivery is dead-lettered and nil is returned.
func (s *Service) ProcessDispatchJob(ctx context.Context, job queue.DispatchPayload) error {
	d, err := s.tracker.MarkProcessing(ctx, job.DeliveryID)
	switch {
	case errors.Is(err, deliverysvc.ErrDeliveryFinalized):
		zlog.Logger.Info().Str("delivery_id", job.DeliveryID.String()).Msg("delivery already finalized, skipping duplicate job")
		return nil
	case errors.Is(err, deliveryrepo.ErrDeliveryNotFound):
		zlog.Logger.Warn().Str("delivery_id", job.DeliveryID.String()).Msg("delivery no longer exists, dropping job")
		return nil
	case err != nil:
		return err
	}

	reminder, err := s.reminderFor(ctx, d)
	if err != nil {
		return err
	}

	resolved, sender := s.resolver.Get(job.Channel)

	start := time.Now()
	res, sendErr := sender.Send(ctx, channel.SendInput{Reminder: reminder, Delivery: d})
	took := time.Since(start)

	if sendErr == nil {
		s.metrics.ObserveSend(string(resolved), metrics.OutcomeSent, took)

		if _, err := s.tracker.MarkSent(ctx, d.ID, res.ProviderMessageID); err != nil {
			return err
		}

		zlog.Logger.Info().
			Str("delivery_id", d.ID.String()).
			Str("channel", string(resolved)).
			Str("provider_message_id", res.ProviderMessageID).
			Msg("reminder sent")

		return nil
	}

	reason := sendErr.Error()

	if d.Exhausted() {
		s.metrics.ObserveSend(string(resolved), metrics.OutcomeDeadLetter, took)

		if _, err := s.tracker.MarkDeadLetter(ctx, d.ID, reason); err != nil {
			return err
		}

		if _, err := s.queue.EnqueueDeadLetter(ctx, job, reason); err != nil {
			zlog.Logger.Error().Err(err).Str("delivery_id", d.ID.String()).Msg("failed to publish dead letter")
		}

		zlog.Logger.Warn().
			Str("delivery_id", d.ID.String()).
			Int("attempts", d.Attempts).
			Str("reason", reason).
			Msg("delivery dead-lettered")

		return nil
	}

	s.metrics.ObserveSend(string(resolved), metrics.OutcomeFailed, took)

	if _, err := s.tracker.MarkFailed(ctx, d.ID, reason); err != nil {
		return err
	}

	zlog.Logger.Warn().
		Str("delivery_id", d.ID.String()).
		Int("attempt", d.Attempts).
		Int("max_attempts", d.MaxAttempts).
		Err(sendErr).
		Msg("send failed")

	return fmt.Errorf("send delivery %s: %w", d.ID, sendErr)
}

// reminderFor loads the reminder of d. A reminder deleted by regeneration is
// rebuilt from the snapshot stored with the delivery.
func (s *Service) reminderFor(ctx context.Context, d model.Delivery) (model.Reminder, error) {
	r, err := s.reminders.GetByID(ctx, d.ReminderID)
	if err == nil {
		return r, nil
	}

	if !errors.Is(err, reminderrepo.ErrReminderNotFound) {
		return model.Reminder{}, fmt.Errorf("get reminder %s: %w", d.ReminderID, err)
	}

	r = model.Reminder{ID: d.ReminderID}
	if d.Payload != nil {
		r.Message = d.Payload.Message
		r.TargetID = d.Payload.TargetID
		r.Channel = d.Payload.RequestedChannel
	}

	return r, nil
}

// Requeue resets a FAILED or DEAD_LETTER delivery and publishes a fresh job for it.
func (s *Service) Requeue(ctx context.Context, deliveryID uuid.UUID) (model.Delivery, error) {
	d, err := s.tracker.Requeue(ctx, deliveryID, s.opts.MaxAttempts)
	if err != nil {
		return model.Delivery{}, err
	}

	requested := d.Channel
	r, err := s.reminders.GetByID(ctx, d.ReminderID)
	switch {
	case err == nil && r.Channel != "":
		requested = r.Channel
	case err != nil && !errors.Is(err, reminderrepo.ErrReminderNotFound):
		return model.Delivery{}, fmt.Errorf("get reminder %s: %w", d.ReminderID, err)
	}

	jobID, err := s.publish(ctx, d, requested, "requeue")
	if err != nil {
		return model.Delivery{}, err
	}
	d.JobID = &jobID

	zlog.Logger.Info().Str("delivery_id", d.ID.String()).Msg("delivery requeued")

	return d, nil
}
