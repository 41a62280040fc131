package channel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

// ErrNotImplemented is returned by channels that have no provider yet.
var ErrNotImplemented = errors.New("channel not implemented")

// SendInput is what a sender gets to deliver.
type SendInput struct {
	Reminder model.Reminder
	Delivery model.Delivery
}

// SendResult carries the provider's answer.
type SendResult struct {
	ProviderMessageID string
	Metadata          map[string]string
}

// Sender delivers a reminder through one channel.
type Sender interface {
	Send(ctx context.Context, in SendInput) (SendResult, error)
}

// InAppSender records in-app notifications. The app reads them from its own feed,
// so a send only has to be logged.
type InAppSender struct {
	now func() time.Time
}

// NewInAppSender creates the in-app sender.
func NewInAppSender() *InAppSender {
	return &InAppSender{now: time.Now}
}

func (s *InAppSender) Send(_ context.Context, in SendInput) (SendResult, error) {
	zlog.Logger.Info().
		Str("reminder_id", in.Reminder.ID.String()).
		Str("delivery_id", in.Delivery.ID.String()).
		Str("target_id", in.Reminder.TargetID.String()).
		Msg("in-app notification dispatched")

	return SendResult{
		ProviderMessageID: fmt.Sprintf("in-app-%s-%d", in.Reminder.ID, s.now().UnixMilli()),
	}, nil
}

// stubSender always fails; the channel has no provider integration.
type stubSender struct {
	channel model.Channel
}

func (s stubSender) Send(context.Context, SendInput) (SendResult, error) {
	return SendResult{}, fmt.Errorf("%s: %w", s.channel, ErrNotImplemented)
}

// NewPushSender, NewEmailSender, NewSMSSender and NewWhatsAppSender return placeholder
// senders that fail every send with ErrNotImplemented.
func NewPushSender() Sender     { return stubSender{channel: model.ChannelPush} }
func NewEmailSender() Sender    { return stubSender{channel: model.ChannelEmail} }
func NewSMSSender() Sender      { return stubSender{channel: model.ChannelSMS} }
func NewWhatsAppSender() Sender { return stubSender{channel: model.ChannelWhatsApp} }

// DefaultSenders builds the registry of every known channel.
func DefaultSenders() map[model.Channel]Sender {
	return map[model.Channel]Sender{
		model.ChannelInApp:    NewInAppSender(),
		model.ChannelPush:     NewPushSender(),
		model.ChannelEmail:    NewEmailSender(),
		model.ChannelSMS:      NewSMSSender(),
		model.ChannelWhatsApp: NewWhatsAppSender(),
	}
}
