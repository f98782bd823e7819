// Package events routes domain events to the handlers that derive records
// from them, inside the transaction that raised them.
package events

import (
	"context"

	"pitch-booking/internal/domain/event"
	"pitch-booking/internal/pkg/errs"
	"pitch-booking/internal/usecase/shared"
)

type Handler interface {
	Handle(ctx context.Context, tx shared.Tx, e event.Event) error
}

type HandlerFunc func(ctx context.Context, tx shared.Tx, e event.Event) error

func (f HandlerFunc) Handle(ctx context.Context, tx shared.Tx, e event.Event) error {
	return f(ctx, tx, e)
}

type Dispatcher struct {
	handlers map[event.Name][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[event.Name][]Handler)}
}

func (d *Dispatcher) Register(name event.Name, h Handler) {
	d.handlers[name] = append(d.handlers[name], h)
}

// Dispatch runs every handler in registration order and stops at the first
// failure. Failures surface as validation errors with the original message
// so the caller's transaction is rolled back.
func (d *Dispatcher) Dispatch(ctx context.Context, tx shared.Tx, evs ...event.Event) error {
	for _, e := range evs {
		for _, h := range d.handlers[e.Name()] {
			if err := h.Handle(ctx, tx, e); err != nil {
				return errs.AsValidation(errs.Wrapf(err, "handling %s", e.Name()))
			}
		}
	}
	return nil
}

// NewDefaultDispatcher wires the status history, reschedule notification and
// club rating handlers.
func NewDefaultDispatcher() *Dispatcher {
	d := NewDispatcher()
	d.Register(event.NameBookingCreated, HandlerFunc(recordStatusHistory))
	d.Register(event.NameBookingStatusChanged, HandlerFunc(recordStatusHistory))
	d.Register(event.NameRescheduleProposed, HandlerFunc(notifyReschedule))
	d.Register(event.NameReviewCreated, HandlerFunc(updateClubRating))
	return d
}
