package sms

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"project-hub.com/project-hub/internal/logging"
)

// BreakerSender stops calling the wrapped sender after repeated failures and
// probes it again once the timeout has passed.
type BreakerSender struct {
	next Sender
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerSender(next Sender, maxFailures uint32, timeout time.Duration) *BreakerSender {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "SMSSenderCB",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Warnf("circuit breaker %s changed from %s to %s", name, from, to)
		},
	})

	return &BreakerSender{next: next, cb: cb}
}

// Send returns gobreaker.ErrOpenState while the breaker is open.
func (b *BreakerSender) Send(ctx context.Context, msg Message) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Send(ctx, msg)
	})
	return err
}

func (b *BreakerSender) State() gobreaker.State {
	return b.cb.State()
}
