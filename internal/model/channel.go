package model

import "strings"

// Channel is a notification transport.
type Channel string

const (
	ChannelInApp    Channel = "IN_APP"
	ChannelPush     Channel = "PUSH"
	ChannelEmail    Channel = "EMAIL"
	ChannelSMS      Channel = "SMS"
	ChannelWhatsApp Channel = "WHATSAPP"
)

// Channels lists every known channel.
var Channels = []Channel{ChannelInApp, ChannelPush, ChannelEmail, ChannelSMS, ChannelWhatsApp}

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	for _, known := range Channels {
		if c == known {
			return true
		}
	}

	return false
}

// ParseChannel normalizes s (trim + upper case) and reports whether it names a known channel.
func ParseChannel(s string) (Channel, bool) {
	c := Channel(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.Valid()
}
