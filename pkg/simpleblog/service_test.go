package simpleblog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/simpleblogtest"
)

func setupTestService(t *testing.T, opts ...simpleblog.Option) simpleblog.Service {
	t.Helper()
	opts = append([]simpleblog.Option{simpleblog.WithSnapshot(simpleblogtest.SiteData())}, opts...)
	svc, err := simpleblog.New(opts...)
	require.NoError(t, err)
	require.NotNil(t, svc)
	return svc
}

// assertIntegrity checks every post and comment names an existing author.
func assertIntegrity(t *testing.T, svc simpleblog.Service) {
	t.Helper()
	assert.NoError(t, svc.Snapshot(context.Background()).Validate())
}

func TestServiceCreation(t *testing.T) {
	svc, err := simpleblog.New()
	require.NoError(t, err)

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)

	seed := simpleblogtest.SiteData()
	svc, err = simpleblog.New(simpleblog.WithSnapshot(seed))
	require.NoError(t, err)
	seed.Posts[0].Title = "mutated after construction"
	got, err := svc.GetPost(context.Background(), simpleblogtest.Cyclone)
	require.NoError(t, err)
	assert.Equal(t, "The Cyclone", got.Title)
}

func TestPostLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	ref, err := svc.CreatePost(ctx, simpleblogtest.PostPayload("A New Blog Post", "Hello", "leeor"))
	require.NoError(t, err)
	assert.Equal(t, "a-new-blog-post", ref.ID)

	post, err := svc.GetPost(ctx, "a-new-blog-post")
	require.NoError(t, err)
	assert.Equal(t, "leeor", post.Author)
	assert.NotNil(t, post.Comments)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 5)
	assert.Equal(t, "a-new-blog-post", posts[4].ID, "insertion order")

	ref, err = svc.UpdatePost(ctx, "a-new-blog-post", simpleblogtest.PostPayload("A Changed Title", "Hello again", "leeor"))
	require.NoError(t, err)
	assert.Equal(t, "a-changed-title", ref.ID)

	_, err = svc.GetPost(ctx, "a-new-blog-post")
	assert.ErrorIs(t, err, simpleblog.ErrNotFound)

	posts, err = svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a-changed-title", posts[4].ID, "update keeps position")

	require.NoError(t, svc.DeletePost(ctx, "a-changed-title"))
	_, err = svc.GetPost(ctx, "a-changed-title")
	assert.ErrorIs(t, err, simpleblog.ErrNotFound)

	assertIntegrity(t, svc)
}

func TestPostFailuresLeaveStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)
	before := svc.Snapshot(ctx)

	tests := []struct {
		name string
		run  func() error
		want simpleblog.Kind
	}{
		{"create missing payload", func() error {
			_, err := svc.CreatePost(ctx, simpleblog.Payload{})
			return err
		}, simpleblog.KindMissingPayload},
		{"create collision", func() error {
			_, err := svc.CreatePost(ctx, simpleblogtest.PostPayload("The Cyclone", "again", "frank"))
			return err
		}, simpleblog.KindConflict},
		{"create unknown author", func() error {
			_, err := svc.CreatePost(ctx, simpleblogtest.PostPayload("Fresh", "x", "ghost"))
			return err
		}, simpleblog.KindUnknownAuthor},
		{"update missing post", func() error {
			_, err := svc.UpdatePost(ctx, "missing", simpleblogtest.PostPayload("Fresh", "x", "frank"))
			return err
		}, simpleblog.KindNotFound},
		{"update bad shape", func() error {
			_, err := svc.UpdatePost(ctx, simpleblogtest.Cyclone, simpleblog.Payload{"post": map[string]any{"title": 3}})
			return err
		}, simpleblog.KindInvalidShape},
		{"update unknown author", func() error {
			_, err := svc.UpdatePost(ctx, simpleblogtest.Cyclone, simpleblogtest.PostPayload("The Cyclone", "x", "ghost"))
			return err
		}, simpleblog.KindUnknownAuthor},
		{"delete missing post", func() error {
			return svc.DeletePost(ctx, "missing")
		}, simpleblog.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.Equal(t, tt.want, simpleblog.KindOf(err))

			var blogErr *simpleblog.BlogError
			require.True(t, errors.As(err, &blogErr))
			assert.Equal(t, "post", blogErr.Entity)
			assert.Equal(t, tt.want, blogErr.Kind())

			assert.Equal(t, before, svc.Snapshot(ctx))
		})
	}
}

func TestReturnedValuesDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	post, err := svc.GetPost(ctx, simpleblogtest.Council)
	require.NoError(t, err)
	post.Comments[0].Body = "rewritten"

	comments, err := svc.ListComments(ctx, simpleblogtest.Council)
	require.NoError(t, err)
	comments[1].Body = "rewritten"

	again, err := svc.GetPost(ctx, simpleblogtest.Council)
	require.NoError(t, err)
	assert.Equal(t, "Yup, I knew it!", again.Comments[0].Body)
	assert.Equal(t, "Wiseass...", again.Comments[1].Body)
}

func TestCommentLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	ref, err := svc.AddComment(ctx, simpleblogtest.Scarecrow, simpleblogtest.CommentPayload("leeor", "first"))
	require.NoError(t, err)
	assert.Equal(t, 0, ref.Index)

	ref, err = svc.AddComment(ctx, simpleblogtest.Scarecrow, simpleblogtest.CommentPayload("frank", "second"))
	require.NoError(t, err)
	assert.Equal(t, 1, ref.Index)

	c, err := svc.GetComment(ctx, simpleblogtest.Scarecrow, 1)
	require.NoError(t, err)
	assert.Equal(t, simpleblog.Comment{Author: "frank", Body: "second"}, c)

	require.NoError(t, svc.UpdateComment(ctx, simpleblogtest.Scarecrow, 0, simpleblogtest.CommentPayload("leeor", "edited")))
	c, err = svc.GetComment(ctx, simpleblogtest.Scarecrow, 0)
	require.NoError(t, err)
	assert.Equal(t, "edited", c.Body)

	comments, err := svc.ListComments(ctx, simpleblogtest.Scarecrow)
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	assertIntegrity(t, svc)
}

func TestDeleteCommentShiftsLaterIndexes(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	require.NoError(t, svc.DeleteComment(ctx, simpleblogtest.Council, 0))

	c, err := svc.GetComment(ctx, simpleblogtest.Council, 0)
	require.NoError(t, err)
	assert.Equal(t, "Wiseass...", c.Body, "former index 1 is now index 0")

	_, err = svc.GetComment(ctx, simpleblogtest.Council, 1)
	assert.ErrorIs(t, err, simpleblog.ErrNotFound)
}

func TestCommentFailures(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)
	before := svc.Snapshot(ctx)

	t.Run("unknown author leaves comments unchanged", func(t *testing.T) {
		_, err := svc.AddComment(ctx, simpleblogtest.Cyclone, simpleblogtest.CommentPayload("unknown", "hi"))
		assert.Equal(t, simpleblog.KindUnknownAuthor, simpleblog.KindOf(err))

		comments, err := svc.ListComments(ctx, simpleblogtest.Cyclone)
		require.NoError(t, err)
		assert.Equal(t, before.Posts[0].Comments, comments)
	})

	t.Run("missing post is checked before payload", func(t *testing.T) {
		_, err := svc.AddComment(ctx, "missing", simpleblog.Payload{})
		assert.Equal(t, simpleblog.KindNotFound, simpleblog.KindOf(err))
	})

	t.Run("missing payload", func(t *testing.T) {
		_, err := svc.AddComment(ctx, simpleblogtest.Cyclone, simpleblog.Payload{})
		assert.Equal(t, simpleblog.KindMissingPayload, simpleblog.KindOf(err))
	})

	t.Run("bad shape", func(t *testing.T) {
		err := svc.UpdateComment(ctx, simpleblogtest.Cyclone, 0, simpleblog.Payload{"comment": map[string]any{"body": 1}})
		assert.Equal(t, simpleblog.KindInvalidShape, simpleblog.KindOf(err))
	})

	t.Run("index out of range", func(t *testing.T) {
		for _, idx := range []int{-1, 1, 99} {
			_, err := svc.GetComment(ctx, simpleblogtest.Cyclone, idx)
			assert.Equal(t, simpleblog.KindNotFound, simpleblog.KindOf(err))

			err = svc.UpdateComment(ctx, simpleblogtest.Cyclone, idx, simpleblogtest.CommentPayload("frank", "x"))
			assert.Equal(t, simpleblog.KindNotFound, simpleblog.KindOf(err))

			err = svc.DeleteComment(ctx, simpleblogtest.Cyclone, idx)
			assert.Equal(t, simpleblog.KindNotFound, simpleblog.KindOf(err))
		}
	})

	t.Run("list on missing post", func(t *testing.T) {
		_, err := svc.ListComments(ctx, "missing")
		assert.ErrorIs(t, err, simpleblog.ErrNotFound)
	})

	assert.Equal(t, before, svc.Snapshot(ctx))
}

func TestAuthorLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	ref, err := svc.CreateAuthor(ctx, simpleblogtest.AuthorPayload("dorothy", "Dorothy Gale"))
	require.NoError(t, err)
	assert.Equal(t, "dorothy", ref.ID)

	_, err = svc.CreateAuthor(ctx, simpleblogtest.AuthorPayload("dorothy", "Again"))
	assert.ErrorIs(t, err, simpleblog.ErrConflict)
	assert.EqualError(t, err, `create author: already exists: author "dorothy"`)

	require.NoError(t, svc.UpdateAuthor(ctx, simpleblogtest.AuthorPayload("dorothy", "D. Gale")))
	a, err := svc.GetAuthor(ctx, "dorothy")
	require.NoError(t, err)
	assert.Equal(t, "D. Gale", a.DisplayName)

	err = svc.UpdateAuthor(ctx, simpleblogtest.AuthorPayload("toto", "Toto"))
	assert.ErrorIs(t, err, simpleblog.ErrNotFound)
	assert.EqualError(t, err, `update author: not found: author "toto"`)

	authors, err := svc.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 3)

	report, err := svc.DeleteAuthor(ctx, "dorothy")
	require.NoError(t, err)
	assert.Equal(t, simpleblog.CascadeReport{AuthorID: "dorothy"}, report)

	_, err = svc.DeleteAuthor(ctx, "dorothy")
	assert.ErrorIs(t, err, simpleblog.ErrNotFound)
}

func TestDeleteAuthorCascades(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	report, err := svc.DeleteAuthor(ctx, "frank")
	require.NoError(t, err)
	assert.Equal(t, simpleblog.CascadeReport{AuthorID: "frank", PostsRemoved: 3, CommentsRemoved: 1}, report)

	_, err = svc.GetAuthor(ctx, "frank")
	assert.ErrorIs(t, err, simpleblog.ErrNotFound)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, simpleblogtest.Alternate, posts[0].ID)
	assert.Equal(t, []simpleblog.Comment{
		{Author: "leeor", Body: "You just can't accept the fact that my ending is better!"},
	}, posts[0].Comments)

	byFrank, err := svc.PostsForAuthor(ctx, "frank")
	require.NoError(t, err)
	assert.Empty(t, byFrank)

	commentsByFrank, err := svc.CommentsForAuthor(ctx, "frank")
	require.NoError(t, err)
	assert.Empty(t, commentsByFrank)

	assertIntegrity(t, svc)
}

func TestCascadeAuthorIsPure(t *testing.T) {
	seed := simpleblogtest.SiteData()

	next, report, err := simpleblog.CascadeAuthor(seed, "leeor")
	require.NoError(t, err)
	assert.Equal(t, 1, report.PostsRemoved)
	assert.Equal(t, 2, report.CommentsRemoved)
	assert.Len(t, next.Posts, 3)
	assert.NoError(t, next.Validate())

	assert.Equal(t, simpleblogtest.SiteData(), seed)

	_, _, err = simpleblog.CascadeAuthor(seed, "ghost")
	assert.ErrorIs(t, err, simpleblog.ErrNotFound)
}

func TestAuthorScopedViews(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	posts, err := svc.PostsForAuthor(ctx, "frank")
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	comments, err := svc.CommentsForAuthor(ctx, "leeor")
	require.NoError(t, err)
	assert.Equal(t, []simpleblog.Comment{
		{Author: "leeor", Body: "Great start!"},
		{Author: "leeor", Body: "Yup, I knew it!"},
		{Author: "leeor", Body: "You just can't accept the fact that my ending is better!"},
	}, comments)

	none, err := svc.PostsForAuthor(ctx, "ghost")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

type mockEventSink struct {
	mock.Mock
}

func (m *mockEventSink) AuthorCreated(ctx context.Context, a simpleblog.Author) error {
	return m.Called(a).Error(0)
}

func (m *mockEventSink) AuthorUpdated(ctx context.Context, a simpleblog.Author) error {
	return m.Called(a).Error(0)
}

func (m *mockEventSink) AuthorDeleted(ctx context.Context, r simpleblog.CascadeReport) error {
	return m.Called(r).Error(0)
}

func (m *mockEventSink) PostCreated(ctx context.Context, p simpleblog.Post) error {
	return m.Called(p.ID).Error(0)
}

func (m *mockEventSink) PostUpdated(ctx context.Context, oldID string, p simpleblog.Post) error {
	return m.Called(oldID, p.ID).Error(0)
}

func (m *mockEventSink) PostDeleted(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

func (m *mockEventSink) CommentAdded(ctx context.Context, postID string, index int) error {
	return m.Called(postID, index).Error(0)
}

func (m *mockEventSink) CommentUpdated(ctx context.Context, postID string, index int) error {
	return m.Called(postID, index).Error(0)
}

func (m *mockEventSink) CommentDeleted(ctx context.Context, postID string, index int) error {
	return m.Called(postID, index).Error(0)
}

func TestEventsFireAfterCommit(t *testing.T) {
	ctx := context.Background()
	sink := &mockEventSink{}
	svc := setupTestService(t, simpleblog.WithEventSink(sink))

	sink.On("PostCreated", "new-post").Return(nil).Once()
	sink.On("PostUpdated", "new-post", "renamed").Return(errors.New("sink down")).Once()
	sink.On("CommentAdded", "renamed", 0).Return(nil).Once()
	sink.On("AuthorDeleted", simpleblog.CascadeReport{AuthorID: "leeor", PostsRemoved: 2, CommentsRemoved: 2}).Return(nil).Once()

	_, err := svc.CreatePost(ctx, simpleblogtest.PostPayload("New Post", "x", "leeor"))
	require.NoError(t, err)

	_, err = svc.UpdatePost(ctx, "new-post", simpleblogtest.PostPayload("Renamed", "x", "leeor"))
	require.NoError(t, err, "sink failures are not returned")

	_, err = svc.AddComment(ctx, "renamed", simpleblogtest.CommentPayload("frank", "nice"))
	require.NoError(t, err)

	// Failed operations fire nothing.
	_, err = svc.CreatePost(ctx, simpleblogtest.PostPayload("Renamed", "x", "leeor"))
	require.Error(t, err)

	_, err = svc.DeleteAuthor(ctx, "leeor")
	require.NoError(t, err)

	sink.AssertExpectations(t)
}
