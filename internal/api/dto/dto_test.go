package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

func TestCreateRuleRequest_ToModel(t *testing.T) {
	req := CreateRuleRequest{
		TargetEntityType: "MAINTENANCE",
		TargetEntityID:   uuid.New(),
		OffsetValue:      7,
		OffsetUnit:       "DAY",
	}
	require.NoError(t, validator.New().Struct(req))

	rule := req.ToModel()
	assert.True(t, rule.Active)
	assert.Equal(t, model.TargetEntityMaintenance, rule.TargetEntityType)

	inactive := false
	req.Active = &inactive
	assert.False(t, req.ToModel().Active)
}

func TestCreateRuleRequest_Validation(t *testing.T) {
	req := CreateRuleRequest{
		TargetEntityType: "VEHICLE",
		TargetEntityID:   uuid.New(),
		OffsetValue:      0,
		OffsetUnit:       "DAY",
	}

	assert.Error(t, validator.New().Struct(req))
}

func TestUpdateRuleRequest_ToPatch(t *testing.T) {
	unit := "WEEK"
	channel := "SMS"
	patch := UpdateRuleRequest{OffsetUnit: &unit, Channel: &channel}.ToPatch()

	require.NotNil(t, patch.OffsetUnit)
	assert.Equal(t, model.OffsetWeek, *patch.OffsetUnit)
	require.NotNil(t, patch.Channel)
	assert.Equal(t, model.ChannelSMS, *patch.Channel)
	assert.Nil(t, patch.Priority)
	assert.Nil(t, patch.OffsetValue)
}

func TestListDeliveriesQuery_ToFilter(t *testing.T) {
	id := uuid.New()

	filter := ListDeliveriesQuery{Status: "FAILED", ReminderID: id.String(), PageSize: 500}.ToFilter()
	assert.Equal(t, model.DeliveryFailed, filter.Status)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, maxPageSize, filter.PageSize)
	require.NotNil(t, filter.ReminderID)
	assert.Equal(t, id, *filter.ReminderID)

	filter = ListDeliveriesQuery{}.ToFilter()
	assert.Equal(t, defaultPageSize, filter.PageSize)
	assert.Nil(t, filter.ReminderID)
}

func TestNewReminderResponse(t *testing.T) {
	assert.True(t, NewReminderResponse(model.Reminder{Status: model.ReminderSent}).IsSent)
	assert.False(t, NewReminderResponse(model.Reminder{Status: model.ReminderPending}).IsSent)
	assert.NotNil(t, NewReminderResponses(nil))
}

func TestListRemindersQuery_ToFilter(t *testing.T) {
	sent := true

	filter := ListRemindersQuery{Status: "SENT", Sent: &sent, Page: 3}.ToFilter()
	assert.Equal(t, model.ReminderSent, filter.Status)
	require.NotNil(t, filter.IsSent)
	assert.True(t, *filter.IsSent)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, defaultPageSize, filter.PageSize)

	assert.Error(t, validator.New().Struct(ListRemindersQuery{Status: "ARCHIVED"}))
	assert.Nil(t, ListRemindersQuery{}.ToFilter().IsSent)
}
