// internal/notify/notify.go
package notify

import "context"

// Digest is a short operational summary pushed to consultants after a
// priority scan. Subject is used for email, Body for both channels.
type Digest struct {
	Subject string
	Body    string
}

// Notifier delivers a digest over one channel. Implementations must be safe
// to call with a nil-op result: an empty digest is still a valid send.
type Notifier interface {
	Send(ctx context.Context, digest Digest) error
}

// Multi fans a digest out to every configured channel and returns the first
// failure. A partial delivery still counts as delivered to the channels that
// succeeded.
type Multi struct {
	notifiers []Notifier
}

func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) Send(ctx context.Context, digest Digest) error {
	for _, n := range m.notifiers {
		if err := n.Send(ctx, digest); err != nil {
			return err
		}
	}
	return nil
}
