package simpleblog

import (
	"context"

	"golang.org/x/exp/slices"
)

// Author operations

func (s *service) GetAuthor(ctx context.Context, id string) (Author, error) {
	author, ok := FindByID(id, s.store.Load().Authors)
	if !ok {
		return Author{}, opError("get", "author", id, ErrNotFound)
	}
	return author, nil
}

func (s *service) ListAuthors(ctx context.Context) ([]Author, error) {
	return slices.Clone(s.store.Load().Authors), nil
}

func (s *service) CreateAuthor(ctx context.Context, payload Payload) (AuthorRef, error) {
	var created Author
	err := s.store.Update(func(cur Snapshot) (Snapshot, error) {
		author, err := ValidateNewAuthor(cur, payload).Unwrap()
		if err != nil {
			return cur, err
		}
		created = author
		cur.Authors = appendItem(cur.Authors, author)
		return cur, nil
	})
	if err != nil {
		return AuthorRef{}, opError("create", "author", "", err)
	}

	s.notify(ctx, "author_created", s.eventSink.AuthorCreated(ctx, created))
	return AuthorRef{ID: created.ID}, nil
}

// UpdateAuthor replaces the author named by the payload's id. The id itself
// cannot change.
func (s *service) UpdateAuthor(ctx context.Context, payload Payload) error {
	var updated Author
	err := s.store.Update(func(cur Snapshot) (Snapshot, error) {
		author, err := ValidateAuthorUpdate(cur, payload).Unwrap()
		if err != nil {
			return cur, err
		}
		i, _ := FindIndexByID(author.ID, cur.Authors)
		authors, err := replaceAt(cur.Authors, i, author)
		if err != nil {
			return cur, err
		}
		updated = author
		cur.Authors = authors
		return cur, nil
	})
	if err != nil {
		return opError("update", "author", "", err)
	}

	s.notify(ctx, "author_updated", s.eventSink.AuthorUpdated(ctx, updated))
	return nil
}

// DeleteAuthor removes the author, every post they wrote and every comment
// they left on the remaining posts. All three changes are committed together.
func (s *service) DeleteAuthor(ctx context.Context, id string) (CascadeReport, error) {
	report := CascadeReport{AuthorID: id}
	err := s.store.Update(func(cur Snapshot) (Snapshot, error) {
		next, r, err := cascadeAuthor(cur, id)
		if err != nil {
			return cur, err
		}
		report = r
		return next, nil
	})
	if err != nil {
		return CascadeReport{}, opError("delete", "author", id, err)
	}

	s.notify(ctx, "author_deleted", s.eventSink.AuthorDeleted(ctx, report))
	return report, nil
}

// CascadeAuthor computes the state after deleting author id from cur without
// committing it anywhere. cur is not modified.
func CascadeAuthor(cur Snapshot, id string) (Snapshot, CascadeReport, error) {
	next, report, err := cascadeAuthor(cur, id)
	if err != nil {
		return Snapshot{}, CascadeReport{}, opError("delete", "author", id, err)
	}
	return next, report, nil
}

func cascadeAuthor(cur Snapshot, id string) (Snapshot, CascadeReport, error) {
	report := CascadeReport{AuthorID: id}

	i, err := locateAuthor(cur, id).Unwrap()
	if err != nil {
		return cur, report, err
	}
	authors, err := removeAt(cur.Authors, i)
	if err != nil {
		return cur, report, err
	}

	posts, removed := rejectItems(cur.Posts, MatchAuthor[Post](id))
	report.PostsRemoved = removed
	for j, p := range posts {
		kept, n := rejectItems(p.Comments, MatchAuthor[Comment](id))
		if n > 0 {
			posts[j].Comments = kept
			report.CommentsRemoved += n
		}
	}

	return Snapshot{Authors: authors, Posts: posts}, report, nil
}

// Author-scoped views. An unknown author yields an empty result.

func (s *service) PostsForAuthor(ctx context.Context, authorID string) ([]Post, error) {
	return clonePosts(Filter(s.store.Load().Posts, MatchAuthor[Post](authorID))), nil
}

func (s *service) CommentsForAuthor(ctx context.Context, authorID string) ([]Comment, error) {
	return Filter(flattenComments(s.store.Load().Posts), MatchAuthor[Comment](authorID)), nil
}
