package notify

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"
)

// Ntfy posts alerts to an ntfy.sh topic. Anyone subscribed to the topic
// on their phone gets a push within seconds.
type Ntfy struct {
	url    string
	client *http.Client
}

// NtfyOption configures an Ntfy notifier.
type NtfyOption func(*Ntfy)

// WithNtfyClient sets a custom HTTP client.
func WithNtfyClient(c *http.Client) NtfyOption {
	return func(n *Ntfy) {
		n.client = c
	}
}

func NewNtfy(server, topic string, opts ...NtfyOption) *Ntfy {
	n := &Ntfy{
		url:    strings.TrimRight(server, "/") + "/" + topic,
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Ntfy) Send(ctx context.Context, subject, body, link string, urgency Urgency) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, strings.NewReader(body))
	if err != nil {
		log.Printf("ntfy: build request: %v", err)
		return false
	}
	req.Header.Set("Title", subject)
	req.Header.Set("Priority", string(urgency))
	req.Header.Set("Tags", "jp,hotel,onsen")
	if link != "" {
		req.Header.Set("Click", link)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("ntfy: send failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("ntfy: unexpected status %d", resp.StatusCode)
		return false
	}
	return true
}
