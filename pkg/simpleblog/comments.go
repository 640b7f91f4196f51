package simpleblog

import (
	"context"
	"strconv"
)

// Comment operations. Comments are addressed by post id and 0-based index;
// deleting a comment shifts every later comment down by one.

func (s *service) ListComments(ctx context.Context, postID string) ([]Comment, error) {
	post, ok := FindByID(postID, s.store.Load().Posts)
	if !ok {
		return nil, opError("list", "comments", postID, ErrNotFound)
	}
	return post.clone().Comments, nil
}

func (s *service) GetComment(ctx context.Context, postID string, index int) (Comment, error) {
	cur := s.store.Load()
	slot, err := locateComment(cur, postID, index).Unwrap()
	if err != nil {
		return Comment{}, opError("get", "comment", commentID(postID, index), err)
	}
	return cur.Posts[slot.post].Comments[slot.index], nil
}

func (s *service) AddComment(ctx context.Context, postID string, payload Payload) (CommentRef, error) {
	var index int
	err := s.store.Update(func(cur Snapshot) (Snapshot, error) {
		p, err := locatePost(cur, postID).Unwrap()
		if err != nil {
			return cur, err
		}
		comment, err := ValidateComment(cur, payload).Unwrap()
		if err != nil {
			return cur, err
		}
		post := cur.Posts[p]
		post.Comments = appendItem(post.Comments, comment)
		index = len(post.Comments) - 1
		return withPost(cur, p, post)
	})
	if err != nil {
		return CommentRef{}, opError("add", "comment", postID, err)
	}

	s.notify(ctx, "comment_added", s.eventSink.CommentAdded(ctx, postID, index))
	return CommentRef{Index: index}, nil
}

func (s *service) UpdateComment(ctx context.Context, postID string, index int, payload Payload) error {
	err := s.store.Update(func(cur Snapshot) (Snapshot, error) {
		slot, err := locateComment(cur, postID, index).Unwrap()
		if err != nil {
			return cur, err
		}
		comment, err := ValidateComment(cur, payload).Unwrap()
		if err != nil {
			return cur, err
		}
		post := cur.Posts[slot.post]
		if post.Comments, err = replaceAt(post.Comments, slot.index, comment); err != nil {
			return cur, err
		}
		return withPost(cur, slot.post, post)
	})
	if err != nil {
		return opError("update", "comment", commentID(postID, index), err)
	}

	s.notify(ctx, "comment_updated", s.eventSink.CommentUpdated(ctx, postID, index))
	return nil
}

func (s *service) DeleteComment(ctx context.Context, postID string, index int) error {
	err := s.store.Update(func(cur Snapshot) (Snapshot, error) {
		slot, err := locateComment(cur, postID, index).Unwrap()
		if err != nil {
			return cur, err
		}
		post := cur.Posts[slot.post]
		if post.Comments, err = removeAt(post.Comments, slot.index); err != nil {
			return cur, err
		}
		return withPost(cur, slot.post, post)
	})
	if err != nil {
		return opError("delete", "comment", commentID(postID, index), err)
	}

	s.notify(ctx, "comment_deleted", s.eventSink.CommentDeleted(ctx, postID, index))
	return nil
}

// withPost returns cur with the post at position i replaced.
func withPost(cur Snapshot, i int, post Post) (Snapshot, error) {
	posts, err := replaceAt(cur.Posts, i, post)
	if err != nil {
		return cur, err
	}
	cur.Posts = posts
	return cur, nil
}

// flattenComments returns every comment of every post, in post order.
func flattenComments(posts []Post) []Comment {
	out := []Comment{}
	for _, p := range posts {
		out = append(out, p.Comments...)
	}
	return out
}

func commentID(postID string, index int) string {
	return postID + "#" + strconv.Itoa(index)
}
