package simpleblog

import "fmt"

// Payload is a parsed request body: a JSON object whose single top-level key
// ("post", "author" or "comment") holds the entity fields.
type Payload map[string]any

const (
	keyPost    = "post"
	keyAuthor  = "author"
	keyComment = "comment"
)

// requireKey extracts the object stored under key.
func requireKey(p Payload, key string) Result[map[string]any] {
	raw, ok := p[key]
	if !ok || raw == nil {
		return Fail[map[string]any](fmt.Errorf("%w: %q", ErrMissingPayload, key))
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return Fail[map[string]any](shapeError("%q must be an object", key))
	}
	return Ok(obj)
}

func stringField(obj map[string]any, name string) (string, error) {
	raw, ok := obj[name]
	if !ok {
		return "", shapeError("%q is required", name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", shapeError("%q must be a string", name)
	}
	return s, nil
}

// optionalString returns "" for an absent field. The author field is decoded
// this way so a missing author surfaces as ErrUnknownAuthor, not a shape error.
func optionalString(obj map[string]any, name string) (string, error) {
	if _, ok := obj[name]; !ok {
		return "", nil
	}
	return stringField(obj, name)
}

func decodeComment(obj map[string]any) Result[Comment] {
	return Chain(Try(stringField(obj, "body")), func(body string) Result[Comment] {
		return Map(Try(optionalString(obj, "author")), func(author string) Comment {
			return Comment{Author: author, Body: body}
		})
	})
}

func decodeComments(obj map[string]any) ([]Comment, error) {
	raw, ok := obj["comments"]
	if !ok || raw == nil {
		return []Comment{}, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, shapeError("%q must be an array", "comments")
	}
	comments := make([]Comment, 0, len(list))
	for i, item := range list {
		cobj, ok := item.(map[string]any)
		if !ok {
			return nil, shapeError("comments[%d] must be an object", i)
		}
		c, err := decodeComment(cobj).Unwrap()
		if err != nil {
			return nil, fmt.Errorf("comments[%d]: %w", i, err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// decodePost builds a Post from its payload object. The id is always derived
// from the title; any id in the payload is ignored.
func decodePost(obj map[string]any) Result[Post] {
	title, err := stringField(obj, "title")
	if err != nil {
		return Fail[Post](err)
	}
	if title == "" {
		return Fail[Post](shapeError("%q must not be empty", "title"))
	}
	body, err := stringField(obj, "body")
	if err != nil {
		return Fail[Post](err)
	}
	author, err := optionalString(obj, "author")
	if err != nil {
		return Fail[Post](err)
	}
	comments, err := decodeComments(obj)
	if err != nil {
		return Fail[Post](err)
	}
	return Ok(Post{
		ID:       DerivePostID(title),
		Title:    title,
		Body:     body,
		Author:   author,
		Comments: comments,
	})
}

func decodeAuthor(obj map[string]any) Result[Author] {
	id, err := stringField(obj, "id")
	if err != nil {
		return Fail[Author](err)
	}
	if id == "" {
		return Fail[Author](shapeError("%q must not be empty", "id"))
	}
	name, err := stringField(obj, "displayName")
	if err != nil {
		return Fail[Author](err)
	}
	return Ok(Author{ID: id, DisplayName: name})
}

// authorExists is the referential integrity check shared by posts and comments.
func authorExists(s Snapshot, id string) error {
	if !locateAuthor(s, id).IsOk() {
		return fmt.Errorf("%w: %q", ErrUnknownAuthor, id)
	}
	return nil
}

func commentAuthorExists(s Snapshot) func(Comment) error {
	return func(c Comment) error { return authorExists(s, c.Author) }
}

func postAuthorsExist(s Snapshot) func(Post) error {
	return func(p Post) error {
		if err := authorExists(s, p.Author); err != nil {
			return err
		}
		for _, c := range p.Comments {
			if err := authorExists(s, c.Author); err != nil {
				return err
			}
		}
		return nil
	}
}

func postIDFree(s Snapshot) func(Post) error {
	return func(p Post) error {
		if locatePost(s, p.ID).IsOk() {
			return fmt.Errorf("%w: post %q", ErrConflict, p.ID)
		}
		return nil
	}
}

// postIDFreeExcept allows the replacement to keep targetID but not to take
// over the id of another post.
func postIDFreeExcept(s Snapshot, targetID string) func(Post) error {
	return func(p Post) error {
		if p.ID == targetID {
			return nil
		}
		return postIDFree(s)(p)
	}
}

func authorIDFree(s Snapshot) func(Author) error {
	return func(a Author) error {
		if locateAuthor(s, a.ID).IsOk() {
			return fmt.Errorf("%w: author %q", ErrConflict, a.ID)
		}
		return nil
	}
}

func authorIDKnown(s Snapshot) func(Author) error {
	return func(a Author) error { return locateAuthor(s, a.ID).Err() }
}

func locatePost(s Snapshot, id string) Result[int] {
	i, ok := FindIndexByID(id, s.Posts)
	if !ok {
		return Fail[int](fmt.Errorf("%w: post %q", ErrNotFound, id))
	}
	return Ok(i)
}

func locateAuthor(s Snapshot, id string) Result[int] {
	i, ok := FindIndexByID(id, s.Authors)
	if !ok {
		return Fail[int](fmt.Errorf("%w: author %q", ErrNotFound, id))
	}
	return Ok(i)
}

// commentSlot addresses one comment by post id and position.
type commentSlot struct {
	post  int
	index int
}

func locateComment(s Snapshot, postID string, index int) Result[commentSlot] {
	return Chain(locatePost(s, postID), func(p int) Result[commentSlot] {
		if index < 0 || index >= len(s.Posts[p].Comments) {
			return Fail[commentSlot](fmt.Errorf("%w: comment %d on post %q", ErrNotFound, index, postID))
		}
		return Ok(commentSlot{post: p, index: index})
	})
}

// ValidateNewPost runs the create pipeline for a post payload against s.
func ValidateNewPost(s Snapshot, p Payload) Result[Post] {
	return Chain(requireKey(p, keyPost), decodePost).
		Then(postIDFree(s), postAuthorsExist(s))
}

// ValidatePostUpdate runs the update pipeline for the post currently stored
// under targetID.
func ValidatePostUpdate(s Snapshot, targetID string, p Payload) Result[Post] {
	return Chain(requireKey(p, keyPost), decodePost).
		Then(
			func(Post) error { return locatePost(s, targetID).Err() },
			postIDFreeExcept(s, targetID),
			postAuthorsExist(s),
		)
}

// ValidateComment runs the shape and author checks for a comment payload.
func ValidateComment(s Snapshot, p Payload) Result[Comment] {
	return Chain(requireKey(p, keyComment), decodeComment).
		Then(commentAuthorExists(s))
}

// ValidateNewAuthor runs the create pipeline for an author payload.
func ValidateNewAuthor(s Snapshot, p Payload) Result[Author] {
	return Chain(requireKey(p, keyAuthor), decodeAuthor).
		Then(authorIDFree(s))
}

// ValidateAuthorUpdate runs the update pipeline for an author payload.
func ValidateAuthorUpdate(s Snapshot, p Payload) Result[Author] {
	return Chain(requireKey(p, keyAuthor), decodeAuthor).
		Then(authorIDKnown(s))
}
