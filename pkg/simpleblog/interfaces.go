package simpleblog

import "context"

// EventSink defines the interface for event handling. Events fire only after
// the change they describe has been committed.
type EventSink interface {
	// AuthorCreated is fired when an author is created
	AuthorCreated(ctx context.Context, author Author) error

	// AuthorUpdated is fired when an author is replaced
	AuthorUpdated(ctx context.Context, author Author) error

	// AuthorDeleted is fired after an author and everything they wrote is removed
	AuthorDeleted(ctx context.Context, report CascadeReport) error

	// PostCreated is fired when a post is created
	PostCreated(ctx context.Context, post Post) error

	// PostUpdated is fired when a post is replaced. oldID differs from post.ID
	// when the title changed.
	PostUpdated(ctx context.Context, oldID string, post Post) error

	// PostDeleted is fired when a post is deleted
	PostDeleted(ctx context.Context, postID string) error

	CommentAdded(ctx context.Context, postID string, index int) error
	CommentUpdated(ctx context.Context, postID string, index int) error
	CommentDeleted(ctx context.Context, postID string, index int) error
}
