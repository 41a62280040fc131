package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

const (
	ExchangeName = "reminders-exchange"
	contentType  = "application/json"

	// MaxRetryDelay caps the backoff so the per-message TTL stays sane whatever the retry count.
	MaxRetryDelay   = 24 * time.Hour
	maxBackoffShift = 16
)

// Names are the queues backing reminder dispatch.
type Names struct {
	Dispatch   string
	Retry      string
	DeadLetter string
}

// DispatchPayload identifies the delivery a job has to send.
type DispatchPayload struct {
	DeliveryID       uuid.UUID     `json:"delivery_id"`
	ReminderID       uuid.UUID     `json:"reminder_id"`
	Channel          model.Channel `json:"channel"`
	RequestedChannel model.Channel `json:"requested_channel"`
}

// JobOptions is the retry budget of a job. RetryLimit counts retries, not attempts.
type JobOptions struct {
	RetryLimit   int           `json:"retry_limit"`
	RetryDelay   time.Duration `json:"retry_delay"`
	RetryBackoff bool          `json:"retry_backoff"`
}

// Envelope is the message body on the dispatch and retry queues.
type Envelope struct {
	JobID      string          `json:"job_id"`
	Payload    DispatchPayload `json:"payload"`
	RetryCount int             `json:"retry_count"`
	Options    JobOptions      `json:"options"`
}

// DeadLetter is the audit record published to the dead-letter queue.
type DeadLetter struct {
	JobID    string          `json:"job_id"`
	Payload  DispatchPayload `json:"payload"`
	Reason   string          `json:"reason"`
	FailedAt time.Time       `json:"failed_at"`
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// Job is a consumed dispatch message awaiting Complete or Retry.
type Job struct {
	Envelope
	msg acknowledger
}

// NewJob wraps an envelope with the handle used to acknowledge it.
func NewJob(env Envelope, msg acknowledger) Job {
	return Job{Envelope: env, msg: msg}
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
}

// DeclareTopology declares the exchange and the three queues.
//
// Dispatch dead-letters to the DLQ; retry dead-letters back to dispatch once a
// message's TTL expires.
func DeclareTopology(ch *rabbitmq.Channel, names Names) error {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(names.DeadLetter, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": names.Dispatch,
	}

	_, err = qm.DeclareQueue(names.Retry, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": names.DeadLetter,
	}

	mainQ, err := qm.DeclareQueue(names.Dispatch, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return fmt.Errorf("failed to declare dispatch queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, names.Dispatch, exchange.Name(), false, nil); err != nil {
		return fmt.Errorf("failed to bind the exchange to the dispatch queue: %w", err)
	}

	return nil
}

// DispatchQueue publishes and consumes reminder dispatch jobs.
type DispatchQueue struct {
	ch       amqpChannel
	names    Names
	strategy retry.Strategy
	prefetch int
	now      func() time.Time
}

// NewDispatchQueue creates the queue adapter. strategy drives publish retries;
// prefetch bounds the unacknowledged jobs held by this consumer.
func NewDispatchQueue(ch amqpChannel, names Names, strategy retry.Strategy, prefetch int) *DispatchQueue {
	return &DispatchQueue{
		ch:       ch,
		names:    names,
		strategy: strategy,
		prefetch: prefetch,
		now:      time.Now,
	}
}

func (q *DispatchQueue) publish(ctx context.Context, exchange, key, messageID string, body any, expiration string) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    q.now(),
		Expiration:   expiration,
		Body:         b,
	}

	return retry.Do(func() error {
		return q.ch.PublishWithContext(ctx, exchange, key, false, false, msg)
	}, q.strategy)
}

// EnqueueDispatch publishes a new dispatch job and returns its id.
func (q *DispatchQueue) EnqueueDispatch(ctx context.Context, payload DispatchPayload, opts JobOptions) (string, error) {
	env := Envelope{
		JobID:   uuid.NewString(),
		Payload: payload,
		Options: opts,
	}

	if err := q.publish(ctx, ExchangeName, q.names.Dispatch, env.JobID, env, ""); err != nil {
		return "", fmt.Errorf("publish dispatch job: %w", err)
	}

	return env.JobID, nil
}

// EnqueueDeadLetter publishes an audit record of a job that gave up. It is never retried.
func (q *DispatchQueue) EnqueueDeadLetter(ctx context.Context, payload DispatchPayload, reason string) (string, error) {
	record := DeadLetter{
		JobID:    uuid.NewString(),
		Payload:  payload,
		Reason:   reason,
		FailedAt: q.now(),
	}

	if err := q.publish(ctx, "", q.names.DeadLetter, record.JobID, record, ""); err != nil {
		return "", fmt.Errorf("publish dead letter: %w", err)
	}

	return record.JobID, nil
}

// Consume feeds jobs from the dispatch queue into out until ctx is done.
// Undecodable messages are rejected to the dead-letter queue.
func (q *DispatchQueue) Consume(ctx context.Context, out chan<- Job) error {
	if err := q.ch.Qos(q.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	deliveries, err := q.ch.Consume(q.names.Dispatch, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", q.names.Dispatch, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("dispatch consumer channel closed")
			}

			var env Envelope
			if err := json.Unmarshal(d.Body, &env); err != nil {
				zlog.Logger.Error().Err(err).Str("message_id", d.MessageId).Msg("failed to unmarshal message")
				_ = d.Nack(false, false)
				continue
			}

			select {
			case out <- NewJob(env, d):
			case <-ctx.Done():
				// Unacked, the broker redelivers it to the next consumer.
				return nil
			}
		}
	}
}

// Complete acknowledges a finished job.
func (q *DispatchQueue) Complete(job Job) error {
	return job.msg.Ack(false)
}

// RetryDelay returns the TTL of the next retry of job, never above MaxRetryDelay.
func RetryDelay(job Envelope) time.Duration {
	delay := job.Options.RetryDelay
	if delay <= 0 {
		return 0
	}

	if job.Options.RetryBackoff && job.RetryCount > 0 {
		shift := min(job.RetryCount, maxBackoffShift)
		if delay > MaxRetryDelay>>shift {
			return MaxRetryDelay
		}
		delay <<= shift
	}

	return min(delay, MaxRetryDelay)
}

// Retry schedules another attempt of job through the retry queue, or rejects it to
// the dead-letter queue when its retry budget is spent.
func (q *DispatchQueue) Retry(ctx context.Context, job Job, cause error) error {
	if job.RetryCount >= job.Options.RetryLimit {
		zlog.Logger.Warn().Err(cause).Str("job_id", job.JobID).Int("retries", job.RetryCount).Msg("retry budget spent, dead-lettering job")
		return job.msg.Nack(false, false)
	}

	delay := RetryDelay(job.Envelope)
	next := job.Envelope
	next.RetryCount++

	expiration := strconv.FormatInt(delay.Milliseconds(), 10)
	if err := q.publish(ctx, "", q.names.Retry, next.JobID, next, expiration); err != nil {
		// Requeue rather than lose the job.
		_ = job.msg.Nack(false, true)
		return fmt.Errorf("publish retry of job %s: %w", job.JobID, err)
	}

	zlog.Logger.Info().Err(cause).Str("job_id", job.JobID).Int("retry", next.RetryCount).Dur("delay", delay).Msg("job scheduled for retry")

	return job.msg.Ack(false)
}
