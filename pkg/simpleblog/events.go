package simpleblog

import (
	"context"
	"log/slog"
)

// LogEventSink writes one structured log line per event.
type LogEventSink struct {
	logger *slog.Logger
}

// NewLogEventSink returns an EventSink logging at info level to logger.
// A nil logger uses slog.Default().
func NewLogEventSink(logger *slog.Logger) *LogEventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventSink{logger: logger.With("component", "events")}
}

func (l *LogEventSink) AuthorCreated(ctx context.Context, author Author) error {
	l.logger.InfoContext(ctx, "author created", "author_id", author.ID)
	return nil
}

func (l *LogEventSink) AuthorUpdated(ctx context.Context, author Author) error {
	l.logger.InfoContext(ctx, "author updated", "author_id", author.ID)
	return nil
}

func (l *LogEventSink) AuthorDeleted(ctx context.Context, report CascadeReport) error {
	l.logger.InfoContext(ctx, "author deleted",
		"author_id", report.AuthorID,
		"posts_removed", report.PostsRemoved,
		"comments_removed", report.CommentsRemoved)
	return nil
}

func (l *LogEventSink) PostCreated(ctx context.Context, post Post) error {
	l.logger.InfoContext(ctx, "post created", "post_id", post.ID, "author_id", post.Author)
	return nil
}

func (l *LogEventSink) PostUpdated(ctx context.Context, oldID string, post Post) error {
	l.logger.InfoContext(ctx, "post updated", "old_post_id", oldID, "post_id", post.ID)
	return nil
}

func (l *LogEventSink) PostDeleted(ctx context.Context, postID string) error {
	l.logger.InfoContext(ctx, "post deleted", "post_id", postID)
	return nil
}

func (l *LogEventSink) CommentAdded(ctx context.Context, postID string, index int) error {
	l.logger.InfoContext(ctx, "comment added", "post_id", postID, "index", index)
	return nil
}

func (l *LogEventSink) CommentUpdated(ctx context.Context, postID string, index int) error {
	l.logger.InfoContext(ctx, "comment updated", "post_id", postID, "index", index)
	return nil
}

func (l *LogEventSink) CommentDeleted(ctx context.Context, postID string, index int) error {
	l.logger.InfoContext(ctx, "comment deleted", "post_id", postID, "index", index)
	return nil
}
