package notify

import (
	"context"
	"fmt"
	"time"
)

// Dispatcher sends one desktop notification per invocation, guarded by a
// deadline so a wedged notification daemon cannot hang the host's render
// pipeline. Failures come back as error values for per-channel logging.
type Dispatcher struct {
	sender    Sender
	title     string
	sound     bool
	soundFile string
	timeout   time.Duration
}

// NewDispatcher creates a Dispatcher backed by the current platform's sender
func NewDispatcher(title string, sound bool, soundFile string, timeout time.Duration) *Dispatcher {
	return NewDispatcherWithSender(NewSender(), title, sound, soundFile, timeout)
}

// NewDispatcherWithSender creates a Dispatcher with a custom sender (for testing)
func NewDispatcherWithSender(sender Sender, title string, sound bool, soundFile string, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		sender:    sender,
		title:     title,
		sound:     sound,
		soundFile: soundFile,
		timeout:   timeout,
	}
}

// Deliver sends the notification with the composed message as body text.
// The optional chime plays after the visual when enabled.
func (d *Dispatcher) Deliver(message string, failed bool) error {
	kind := KindSuccess
	if failed {
		kind = KindFailure
	}
	n := Notification{Title: d.title, Message: message, Kind: kind}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.send(ctx, n)
	}()

	// The deadline also cancels the sender's context, which kills the
	// underlying subprocess rather than orphaning it.
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return fmt.Errorf("desktop notification timed out after %s", d.timeout)
	}
}

func (d *Dispatcher) send(ctx context.Context, n Notification) error {
	if err := d.sender.SendVisual(ctx, n); err != nil {
		return err
	}
	if d.sound {
		if err := d.sender.SendSound(ctx, d.soundFile); err != nil {
			return err
		}
	}
	return nil
}
