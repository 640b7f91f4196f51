package simpleblog

import (
	"context"
)

// Service defines the main interface for the simple-blog library
type Service interface {
	// Post operations
	GetPost(ctx context.Context, id string) (Post, error)
	ListPosts(ctx context.Context) ([]Post, error)
	CreatePost(ctx context.Context, payload Payload) (PostRef, error)
	UpdatePost(ctx context.Context, targetID string, payload Payload) (PostRef, error)
	DeletePost(ctx context.Context, id string) error

	// Comment operations
	ListComments(ctx context.Context, postID string) ([]Comment, error)
	GetComment(ctx context.Context, postID string, index int) (Comment, error)
	AddComment(ctx context.Context, postID string, payload Payload) (CommentRef, error)
	UpdateComment(ctx context.Context, postID string, index int, payload Payload) error
	DeleteComment(ctx context.Context, postID string, index int) error

	// Author operations
	GetAuthor(ctx context.Context, id string) (Author, error)
	ListAuthors(ctx context.Context) ([]Author, error)
	CreateAuthor(ctx context.Context, payload Payload) (AuthorRef, error)
	UpdateAuthor(ctx context.Context, payload Payload) error
	DeleteAuthor(ctx context.Context, id string) (CascadeReport, error)

	// Author-scoped views
	PostsForAuthor(ctx context.Context, authorID string) ([]Post, error)
	CommentsForAuthor(ctx context.Context, authorID string) ([]Comment, error)

	// Snapshot returns a deep copy of the whole current state
	Snapshot(ctx context.Context) Snapshot
}
