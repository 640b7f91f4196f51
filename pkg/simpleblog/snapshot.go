package simpleblog

import (
	"errors"
	"fmt"
)

// Validate checks that s satisfies the invariants the store maintains:
// author ids are non-empty and unique, every post id is the slug of its title
// and unique, and every post and comment names an existing author. All
// violations are reported together.
func (s Snapshot) Validate() error {
	var errs []error

	authors := make(map[string]struct{}, len(s.Authors))
	for i, a := range s.Authors {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("authors[%d]: %w: empty id", i, ErrInvalidShape))
			continue
		}
		if _, dup := authors[a.ID]; dup {
			errs = append(errs, fmt.Errorf("authors[%d]: %w: author %q", i, ErrConflict, a.ID))
			continue
		}
		authors[a.ID] = struct{}{}
	}

	posts := make(map[string]struct{}, len(s.Posts))
	for i, p := range s.Posts {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("posts[%d]: %w: empty title", i, ErrInvalidShape))
		}
		if want := DerivePostID(p.Title); p.ID != want {
			errs = append(errs, fmt.Errorf("posts[%d]: %w: id %q, want %q", i, ErrInvalidShape, p.ID, want))
		}
		if _, dup := posts[p.ID]; dup {
			errs = append(errs, fmt.Errorf("posts[%d]: %w: post %q", i, ErrConflict, p.ID))
		}
		posts[p.ID] = struct{}{}

		if _, ok := authors[p.Author]; !ok {
			errs = append(errs, fmt.Errorf("posts[%d]: %w: %q", i, ErrUnknownAuthor, p.Author))
		}
		for j, c := range p.Comments {
			if _, ok := authors[c.Author]; !ok {
				errs = append(errs, fmt.Errorf("posts[%d].comments[%d]: %w: %q", i, j, ErrUnknownAuthor, c.Author))
			}
		}
	}

	return errors.Join(errs...)
}
