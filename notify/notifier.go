// Package notify delivers availability alerts through a configured
// channel.
package notify

import "context"

// Urgency maps to the channel's own priority scheme.
type Urgency string

const (
	UrgencyNormal Urgency = "default"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// Notifier delivers one message. Implementations never panic or return an
// error on transport failure; they report false so the caller can retry
// on the next cycle.
type Notifier interface {
	Send(ctx context.Context, subject, body, link string, urgency Urgency) bool
}
