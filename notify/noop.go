package notify

import "context"

// Noop is a stand-in channel that reports success without sending
// anything. Useful in tests and dry runs.
type Noop struct{}

func (Noop) Send(context.Context, string, string, string, Urgency) bool {
	return true
}
