package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Errors returned by the bus.
var (
	// ErrNilHandler is returned when subscribing a nil handler.
	ErrNilHandler = errors.New("event: nil handler")

	// ErrSubscriptionNotFound is returned when unsubscribing an unknown id.
	ErrSubscriptionNotFound = errors.New("event: subscription not found")

	// ErrHandlerPanic wraps a recovered handler panic.
	ErrHandlerPanic = errors.New("event: handler panic")
)

// HandlerFunc handles an event.
type HandlerFunc func(ctx context.Context, ev Event) error

// Subscription identifies a registered handler.
type Subscription struct {
	ID      uuid.UUID
	Pattern Topic
}

type subscriber struct {
	sub Subscription
	fn  HandlerFunc
}

// Bus delivers events synchronously.
type Bus struct {
	mu   sync.RWMutex
	subs []subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for topics matching pattern.
func (b *Bus) Subscribe(pattern Topic, fn HandlerFunc) (Subscription, error) {
	if fn == nil {
		return Subscription{}, ErrNilHandler
	}
	sub := Subscription{ID: uuid.New(), Pattern: pattern}

	b.mu.Lock()
	b.subs = append(b.subs, subscriber{sub: sub, fn: fn})
	b.mu.Unlock()
	return sub, nil
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.sub.ID == sub.ID {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Len returns the number of subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Publish delivers ev to every matching handler and returns their errors
// joined. A panicking handler does not stop delivery.
func (b *Bus) Publish(ctx context.Context, ev Event) error {
	b.mu.RLock()
	matched := make([]subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		if ev.Topic.Matches(s.sub.Pattern) {
			matched = append(matched, s)
		}
	}
	b.mu.RUnlock()

	var errs []error
	for _, s := range matched {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := deliver(ctx, s, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func deliver(ctx context.Context, s subscriber, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrHandlerPanic, ev.Topic, r)
		}
	}()
	return s.fn(ctx, ev)
}
