package simpleblog

import "context"

// NoopEventSink is a no-operation implementation of EventSink
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

func (n *NoopEventSink) AuthorCreated(ctx context.Context, author Author) error { return nil }

func (n *NoopEventSink) AuthorUpdated(ctx context.Context, author Author) error { return nil }

func (n *NoopEventSink) AuthorDeleted(ctx context.Context, report CascadeReport) error { return nil }

func (n *NoopEventSink) PostCreated(ctx context.Context, post Post) error { return nil }

func (n *NoopEventSink) PostUpdated(ctx context.Context, oldID string, post Post) error { return nil }

func (n *NoopEventSink) PostDeleted(ctx context.Context, postID string) error { return nil }

func (n *NoopEventSink) CommentAdded(ctx context.Context, postID string, index int) error {
	return nil
}

func (n *NoopEventSink) CommentUpdated(ctx context.Context, postID string, index int) error {
	return nil
}

func (n *NoopEventSink) CommentDeleted(ctx context.Context, postID string, index int) error {
	return nil
}
