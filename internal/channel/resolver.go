package channel

import (
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

// Resolver maps requested channels to active ones and active ones to senders.
type Resolver struct {
	active  map[model.Channel]struct{}
	senders map[model.Channel]Sender
	inApp   Sender
}

// NewResolver creates a resolver over the active allow-list and the sender registry.
// A registry without an IN_APP entry gets the built-in in-app sender.
func NewResolver(active []model.Channel, senders map[model.Channel]Sender) *Resolver {
	set := make(map[model.Channel]struct{}, len(active))
	for _, c := range active {
		set[c] = struct{}{}
	}

	inApp, ok := senders[model.ChannelInApp]
	if !ok {
		inApp = NewInAppSender()
	}

	return &Resolver{active: set, senders: senders, inApp: inApp}
}

// Resolve returns requested when it is active, IN_APP otherwise.
// IN_APP is returned even when it is not itself in the allow-list.
func (r *Resolver) Resolve(requested model.Channel) model.Channel {
	if _, ok := r.active[requested]; ok {
		return requested
	}

	return model.ChannelInApp
}

// Get resolves requested and returns the sender of the resolved channel.
func (r *Resolver) Get(requested model.Channel) (model.Channel, Sender) {
	resolved := r.Resolve(requested)
	if resolved != requested {
		zlog.Logger.Warn().
			Str("requested", string(requested)).
			Str("resolved", string(resolved)).
			Msg("channel not active, falling back")
	}

	sender, ok := r.senders[resolved]
	if !ok {
		return resolved, r.inApp
	}

	return resolved, sender
}
