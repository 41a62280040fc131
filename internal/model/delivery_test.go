package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatus_Next_SentIsAbsorbing(t *testing.T) {
	for _, event := range []DeliveryEvent{EventQueue, EventProcess, EventFail, EventDeadLetter, EventRequeue, EventForceSent} {
		next, err := DeliverySent.Next(event)
		assert.ErrorIs(t, err, ErrInvalidTransition, "event %s", event)
		assert.Equal(t, DeliverySent, next)
	}

	next, err := DeliverySent.Next(EventSend)
	assert.NoError(t, err)
	assert.Equal(t, DeliverySent, next)
}

func TestDeliveryStatus_Next_Requeue(t *testing.T) {
	tests := []struct {
		from    DeliveryStatus
		allowed bool
	}{
		{DeliveryQueued, false},
		{DeliveryProcessing, false},
		{DeliverySent, false},
		{DeliveryFailed, true},
		{DeliveryDeadLetter, true},
	}

	for _, tt := range tests {
		next, err := tt.from.Next(EventRequeue)
		if tt.allowed {
			assert.NoError(t, err, string(tt.from))
			assert.Equal(t, DeliveryQueued, next)
			continue
		}

		assert.ErrorIs(t, err, ErrInvalidTransition, string(tt.from))
	}
}

func TestDeliveryStatus_Next_DeadLetterOnlyAfterAttempt(t *testing.T) {
	_, err := DeliveryQueued.Next(EventDeadLetter)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	next, err := DeliveryProcessing.Next(EventDeadLetter)
	assert.NoError(t, err)
	assert.Equal(t, DeliveryDeadLetter, next)
}

func TestDeliveryStatus_InFlight(t *testing.T) {
	assert.True(t, DeliverySent.InFlight())
	assert.True(t, DeliveryProcessing.InFlight())
	assert.False(t, DeliveryQueued.InFlight())
	assert.False(t, DeliveryFailed.InFlight())
	assert.False(t, DeliveryDeadLetter.InFlight())
}

func TestIdempotencyKey(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000:IN_APP", IdempotencyKey(id, ChannelInApp))
}

func TestDelivery_Exhausted(t *testing.T) {
	assert.False(t, Delivery{Attempts: 2, MaxAttempts: 3}.Exhausted())
	assert.True(t, Delivery{Attempts: 3, MaxAttempts: 3}.Exhausted())
	assert.True(t, Delivery{Attempts: 4, MaxAttempts: 3}.Exhausted())
}

func TestDeliveryFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, DeliveryFilter{Page: 0, PageSize: 10}.Offset())
	assert.Equal(t, 0, DeliveryFilter{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, DeliveryFilter{Page: 3, PageSize: 10}.Offset())
}

func TestReminderFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, ReminderFilter{Page: -1, PageSize: 20}.Offset())
	assert.Equal(t, 40, ReminderFilter{Page: 3, PageSize: 20}.Offset())
}
