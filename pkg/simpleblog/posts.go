package simpleblog

import "context"

// Post operations

func (s *service) GetPost(ctx context.Context, id string) (Post, error) {
	post, ok := FindByID(id, s.store.Load().Posts)
	if !ok {
		return Post{}, opError("get", "post", id, ErrNotFound)
	}
	return post.clone(), nil
}

func (s *service) ListPosts(ctx context.Context) ([]Post, error) {
	return clonePosts(s.store.Load().Posts), nil
}

func (s *service) CreatePost(ctx context.Context, payload Payload) (PostRef, error) {
	var created Post
	err := s.store.Update(func(cur Snapshot) (Snapshot, error) {
		post, err := ValidateNewPost(cur, payload).Unwrap()
		if err != nil {
			return cur, err
		}
		created = post
		cur.Posts = appendItem(cur.Posts, post)
		return cur, nil
	})
	if err != nil {
		return PostRef{}, opError("create", "post", "", err)
	}

	s.notify(ctx, "post_created", s.eventSink.PostCreated(ctx, created.clone()))
	return PostRef{ID: created.ID}, nil
}

// UpdatePost replaces the post stored under targetID with the payload. The
// replacement's id is derived from its title, so a new title moves the post
// to a new id and targetID stops resolving.
func (s *service) UpdatePost(ctx context.Context, targetID string, payload Payload) (PostRef, error) {
	var updated Post
	err := s.store.Update(func(cur Snapshot) (Snapshot, error) {
		post, err := ValidatePostUpdate(cur, targetID, payload).Unwrap()
		if err != nil {
			return cur, err
		}
		i, _ := FindIndexByID(targetID, cur.Posts)
		posts, err := replaceAt(cur.Posts, i, post)
		if err != nil {
			return cur, err
		}
		updated = post
		cur.Posts = posts
		return cur, nil
	})
	if err != nil {
		return PostRef{}, opError("update", "post", targetID, err)
	}

	s.notify(ctx, "post_updated", s.eventSink.PostUpdated(ctx, targetID, updated.clone()))
	return PostRef{ID: updated.ID}, nil
}

func (s *service) DeletePost(ctx context.Context, id string) error {
	err := s.store.Update(func(cur Snapshot) (Snapshot, error) {
		i, err := locatePost(cur, id).Unwrap()
		if err != nil {
			return cur, err
		}
		posts, err := removeAt(cur.Posts, i)
		if err != nil {
			return cur, err
		}
		cur.Posts = posts
		return cur, nil
	})
	if err != nil {
		return opError("delete", "post", id, err)
	}

	s.notify(ctx, "post_deleted", s.eventSink.PostDeleted(ctx, id))
	return nil
}

func clonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = p.clone()
	}
	return out
}
