// Package slack implements the chat delivery channel.
// One authenticated chat.postMessage call per invocation, bounded by the
// configured request timeout; no retries, no queueing.
package slack

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// Notifier posts status messages to a single Slack channel
type Notifier struct {
	client  *slack.Client
	channel string
	timeout time.Duration
}

// Option customizes the Notifier (used by tests to point at a fake API)
type Option func(*options)

type options struct {
	apiURL     string
	httpClient *http.Client
}

// WithAPIURL overrides the Slack API base URL
func WithAPIURL(url string) Option {
	return func(o *options) { o.apiURL = url }
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// New creates a Notifier for the given token and channel. The timeout bounds
// both the HTTP transport and the per-call context deadline so a hung Slack
// call can never block the host's render pipeline indefinitely.
func New(token, channel string, timeout time.Duration, opts ...Option) *Notifier {
	o := options{
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(&o)
	}

	clientOpts := []slack.Option{slack.OptionHTTPClient(o.httpClient)}
	if o.apiURL != "" {
		clientOpts = append(clientOpts, slack.OptionAPIURL(o.apiURL))
	}

	return &Notifier{
		client:  slack.New(token, clientOpts...),
		channel: channel,
		timeout: timeout,
	}
}

// Send posts the message to the configured channel.
// Any API rejection, auth failure, or transport error is returned as a plain
// error value; the caller logs it and continues with the other channel.
func (n *Notifier) Send(ctx context.Context, message string) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	_, _, err := n.client.PostMessageContext(ctx, n.channel, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("slack post to %s failed: %w", n.channel, err)
	}
	return nil
}
