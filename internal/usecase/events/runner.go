package events

import (
	"context"
	"log/slog"

	"pitch-booking/internal/domain/event"
	"pitch-booking/internal/usecase/shared"
)

// Publisher forwards committed events to an external broker.
type Publisher interface {
	Publish(ctx context.Context, env event.Envelope) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, event.Envelope) error { return nil }

// Emit dispatches events inside the running transaction.
type Emit func(ctx context.Context, evs ...event.Event) error

// Runner is the write entry point used by command use cases: the callback
// runs in a unit of work, raised events are handled before commit and
// published after it.
type Runner struct {
	uow        shared.UnitOfWork
	dispatcher *Dispatcher
	publisher  Publisher
	logger     *slog.Logger
}

func NewRunner(uow shared.UnitOfWork, dispatcher *Dispatcher, publisher Publisher, logger *slog.Logger) *Runner {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{uow: uow, dispatcher: dispatcher, publisher: publisher, logger: logger}
}

func (r *Runner) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx, emit Emit) error) error {
	var raised []event.Event
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The unit of work may retry; only the last attempt's events count.
		raised = raised[:0]
		emit := func(ctx context.Context, evs ...event.Event) error {
			if err := r.dispatcher.Dispatch(ctx, tx, evs...); err != nil {
				return err
			}
			raised = append(raised, evs...)
			return nil
		}
		return fn(ctx, tx, emit)
	})
	if err != nil {
		return err
	}
	r.publish(ctx, raised)
	return nil
}

func (r *Runner) publish(ctx context.Context, evs []event.Event) {
	for _, e := range evs {
		env := event.ToEnvelope(e)
		if err := r.publisher.Publish(ctx, env); err != nil {
			r.logger.WarnContext(ctx, "failed to publish event",
				slog.String("event", string(env.Name)),
				slog.String("event_id", env.ID.String()),
				slog.String("error", err.Error()))
		}
	}
}
