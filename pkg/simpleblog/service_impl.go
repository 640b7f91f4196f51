package simpleblog

import (
	"context"
	"log/slog"
)

// service implements the Service interface
type service struct {
	initial   Snapshot
	store     *Store
	eventSink EventSink
	logger    *slog.Logger
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithSnapshot sets the state the service starts from. The snapshot is deep
// copied, so later changes to it do not reach the service.
func WithSnapshot(snapshot Snapshot) Option {
	return func(s *service) {
		s.initial = snapshot
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// WithLogger sets the logger used for event sink failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.eventSink == nil {
		s.eventSink = NewNoopEventSink()
	}
	s.store = NewStore(s.initial)
	s.initial = Snapshot{}

	return s, nil
}

func (s *service) Snapshot(ctx context.Context) Snapshot {
	return s.store.Load().Clone()
}

// notify reports a sink failure without failing the committed operation.
func (s *service) notify(ctx context.Context, event string, err error) {
	if err != nil {
		s.logger.WarnContext(ctx, "event sink failed", "event", event, "error", err)
	}
}

func opError(op, entity, id string, err error) error {
	return &BlogError{Op: op, Entity: entity, ID: id, Err: err}
}
