package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-blog/pkg/simpleblog"
)

// Querier is the subset of a pgx connection or pool used to read a seed
type Querier interface {
	Query(context.Context, string, ...any) (pgx.Rows, error)
}

// PostgresSource reads a snapshot from the authors, posts and comments tables:
//
//	authors(id, display_name)
//	posts(id, title, body, author_id, position)
//	comments(post_id, position, author_id, body)
type PostgresSource struct {
	db   Querier
	pool *pgxpool.Pool
}

// NewPostgresSource creates a connection pool for databaseURL. Connections
// are opened lazily on the first Load.
func NewPostgresSource(ctx context.Context, databaseURL string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	return &PostgresSource{db: pool, pool: pool}, nil
}

// NewPostgresSourceWithDB reads through an existing connection or pool.
func NewPostgresSourceWithDB(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

// Close releases the pool created by NewPostgresSource.
func (p *PostgresSource) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

type authorRow struct {
	ID          string
	DisplayName string
}

type postRow struct {
	ID       string
	Title    string
	Body     string
	AuthorID string
}

type commentRow struct {
	PostID   string
	AuthorID string
	Body     string
}

const (
	selectAuthors  = `SELECT id, display_name FROM authors ORDER BY id`
	selectPosts    = `SELECT id, title, body, author_id FROM posts ORDER BY position, id`
	selectComments = `SELECT post_id, author_id, body FROM comments ORDER BY post_id, position`
)

func (p *PostgresSource) Load(ctx context.Context) (simpleblog.Snapshot, error) {
	authors, err := queryAll(ctx, p.db, selectAuthors, pgx.RowToStructByPos[authorRow])
	if err != nil {
		return simpleblog.Snapshot{}, fmt.Errorf("load authors: %w", err)
	}
	posts, err := queryAll(ctx, p.db, selectPosts, pgx.RowToStructByPos[postRow])
	if err != nil {
		return simpleblog.Snapshot{}, fmt.Errorf("load posts: %w", err)
	}
	comments, err := queryAll(ctx, p.db, selectComments, pgx.RowToStructByPos[commentRow])
	if err != nil {
		return simpleblog.Snapshot{}, fmt.Errorf("load comments: %w", err)
	}
	s, err := assemble(authors, posts, comments)
	if err != nil {
		return simpleblog.Snapshot{}, err
	}
	return finish(s)
}

func queryAll[T any](ctx context.Context, db Querier, sql string, scan pgx.RowToFunc[T]) ([]T, error) {
	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scan)
}

// assemble groups comment rows under their posts. Comment rows naming a post
// that does not exist are reported, not dropped.
func assemble(authors []authorRow, posts []postRow, comments []commentRow) (simpleblog.Snapshot, error) {
	s := simpleblog.Snapshot{
		Authors: make([]simpleblog.Author, 0, len(authors)),
		Posts:   make([]simpleblog.Post, 0, len(posts)),
	}
	for _, a := range authors {
		s.Authors = append(s.Authors, simpleblog.Author{ID: a.ID, DisplayName: a.DisplayName})
	}

	byPost := make(map[string][]simpleblog.Comment, len(posts))
	for _, p := range posts {
		byPost[p.ID] = []simpleblog.Comment{}
	}

	var orphans []error
	for i, c := range comments {
		list, ok := byPost[c.PostID]
		if !ok {
			orphans = append(orphans, fmt.Errorf("comments[%d]: %w: post %q", i, simpleblog.ErrNotFound, c.PostID))
			continue
		}
		byPost[c.PostID] = append(list, simpleblog.Comment{Author: c.AuthorID, Body: c.Body})
	}
	if len(orphans) > 0 {
		return simpleblog.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSeed, errors.Join(orphans...))
	}

	for _, p := range posts {
		s.Posts = append(s.Posts, simpleblog.Post{
			ID:       p.ID,
			Title:    p.Title,
			Body:     p.Body,
			Author:   p.AuthorID,
			Comments: byPost[p.ID],
		})
	}
	return s, nil
}
