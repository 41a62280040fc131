package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the state of one channel delivery of a reminder.
type DeliveryStatus string

const (
	DeliveryQueued     DeliveryStatus = "QUEUED"
	DeliveryProcessing DeliveryStatus = "PROCESSING"
	DeliverySent       DeliveryStatus = "SENT"
	DeliveryFailed     DeliveryStatus = "FAILED"
	DeliveryDeadLetter DeliveryStatus = "DEAD_LETTER"
)

// Valid reports whether s is a known delivery status.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryQueued, DeliveryProcessing, DeliverySent, DeliveryFailed, DeliveryDeadLetter:
		return true
	}

	return false
}

// InFlight reports whether a delivery in this status must not get a new dispatch job.
func (s DeliveryStatus) InFlight() bool {
	return s == DeliverySent || s == DeliveryProcessing
}

// DeliveryEvent triggers a delivery status transition.
type DeliveryEvent string

const (
	EventQueue      DeliveryEvent = "queue"   // due reminder discovered again
	EventProcess    DeliveryEvent = "process" // worker picked up the job
	EventSend       DeliveryEvent = "send"
	EventFail       DeliveryEvent = "fail"
	EventDeadLetter DeliveryEvent = "dead_letter"
	EventRequeue    DeliveryEvent = "requeue" // administrative replay
	EventForceSent  DeliveryEvent = "force_sent"
)

var (
	// ErrInvalidTransition is returned when an event is not allowed from the current status.
	ErrInvalidTransition = errors.New("invalid delivery transition")

	// ErrAttemptsRemaining is returned when dead-lettering a delivery that still has attempts left.
	ErrAttemptsRemaining = errors.New("delivery has attempts remaining")
)

// deliveryTransitions maps status -> event -> next status. SENT has no way out.
var deliveryTransitions = map[DeliveryStatus]map[DeliveryEvent]DeliveryStatus{
	DeliveryQueued: {
		EventQueue:     DeliveryQueued,
		EventProcess:   DeliveryProcessing,
		EventForceSent: DeliverySent,
	},
	DeliveryProcessing: {
		EventProcess:    DeliveryProcessing,
		EventSend:       DeliverySent,
		EventFail:       DeliveryFailed,
		EventDeadLetter: DeliveryDeadLetter,
		EventForceSent:  DeliverySent,
	},
	DeliveryFailed: {
		EventQueue:      DeliveryQueued,
		EventProcess:    DeliveryProcessing,
		EventFail:       DeliveryFailed,
		EventDeadLetter: DeliveryDeadLetter,
		EventRequeue:    DeliveryQueued,
		EventForceSent:  DeliverySent,
	},
	DeliveryDeadLetter: {
		EventQueue:     DeliveryQueued,
		EventRequeue:   DeliveryQueued,
		EventForceSent: DeliverySent,
	},
	DeliverySent: {
		EventSend: DeliverySent,
	},
}

// Next returns the status reached by firing event from s.
func (s DeliveryStatus) Next(event DeliveryEvent) (DeliveryStatus, error) {
	next, ok := deliveryTransitions[s][event]
	if !ok {
		return s, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, s)
	}

	return next, nil
}

// DeliveryPayload is the snapshot of what is being sent, stored with the delivery.
type DeliveryPayload struct {
	ReminderID       uuid.UUID `json:"reminder_id"`
	Message          string    `json:"message"`
	TargetID         uuid.UUID `json:"target_id"`
	RequestedChannel Channel   `json:"requested_channel"`
	ResolvedChannel  Channel   `json:"resolved_channel"`
}

// Delivery represents one tracked channel delivery of a reminder.
type Delivery struct {
	ID                uuid.UUID        `json:"id"`
	ReminderID        uuid.UUID        `json:"reminder_id"`
	Channel           Channel          `json:"channel"`
	Status            DeliveryStatus   `json:"status"`
	Attempts          int              `json:"attempts"`
	MaxAttempts       int              `json:"max_attempts"`
	JobID             *string          `json:"job_id,omitempty"`
	IdempotencyKey    string           `json:"idempotency_key"`
	QueuedAt          *time.Time       `json:"queued_at,omitempty"`
	ProcessedAt       *time.Time       `json:"processed_at,omitempty"`
	SentAt            *time.Time       `json:"sent_at,omitempty"`
	DeadLetterAt      *time.Time       `json:"dead_letter_at,omitempty"`
	LastError         *string          `json:"last_error,omitempty"`
	ProviderMessageID *string          `json:"provider_message_id,omitempty"`
	Payload           *DeliveryPayload `json:"payload,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// IdempotencyKey builds the key that makes a delivery unique per reminder and channel.
func IdempotencyKey(reminderID uuid.UUID, channel Channel) string {
	return reminderID.String() + ":" + string(channel)
}

// Exhausted reports whether every allowed attempt has been used.
func (d Delivery) Exhausted() bool {
	return d.Attempts >= d.MaxAttempts
}

// DeliveryFilter narrows a delivery listing. Zero values mean "any".
type DeliveryFilter struct {
	Status     DeliveryStatus
	Channel    Channel
	ReminderID *uuid.UUID
	Page       int
	PageSize   int
}

// Offset returns the SQL offset of the filter page (pages start at 1).
func (f DeliveryFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}

	return (f.Page - 1) * f.PageSize
}

// DeliveryPage is one page of deliveries plus the total row count.
type DeliveryPage struct {
	Items []Delivery `json:"items"`
	Total int        `json:"total"`
}
