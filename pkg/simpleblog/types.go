package simpleblog

// Author is a blog author. ID is caller-supplied and immutable once created.
type Author struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"displayName"`
}

// Comment is a comment on a post. Comments have no identity of their own and
// are addressed by their position in the owning post's Comments.
type Comment struct {
	Author string `json:"author" yaml:"author"`
	Body   string `json:"body" yaml:"body"`
}

// Post is a blog post. ID is always DerivePostID(Title).
type Post struct {
	ID       string    `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Body     string    `json:"body" yaml:"body"`
	Author   string    `json:"author" yaml:"author"`
	Comments []Comment `json:"comments" yaml:"comments"`
}

// GetID implements Identified.
func (a Author) GetID() string { return a.ID }

// GetID implements Identified.
func (p Post) GetID() string { return p.ID }

// AuthorID implements Authored.
func (p Post) AuthorID() string { return p.Author }

// AuthorID implements Authored.
func (c Comment) AuthorID() string { return c.Author }

// Snapshot is the whole blog state: every author and every post, in insertion order.
type Snapshot struct {
	Authors []Author `json:"authors" yaml:"authors"`
	Posts   []Post   `json:"posts" yaml:"posts"`
}

// Clone returns a deep copy of the snapshot. Comment slices are copied too, so
// the result shares no memory with s. Slices in the copy are never nil.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Authors: make([]Author, len(s.Authors)),
		Posts:   make([]Post, len(s.Posts)),
	}
	copy(out.Authors, s.Authors)
	for i, p := range s.Posts {
		out.Posts[i] = p.clone()
	}
	return out
}

func (p Post) clone() Post {
	comments := make([]Comment, len(p.Comments))
	copy(comments, p.Comments)
	p.Comments = comments
	return p
}

// PostRef is returned by post create/update operations.
type PostRef struct {
	ID string `json:"id"`
}

// AuthorRef is returned by author create operations.
type AuthorRef struct {
	ID string `json:"id"`
}

// CommentRef is returned by comment add operations.
type CommentRef struct {
	Index int `json:"index"`
}

// CascadeReport describes what a single author delete removed.
type CascadeReport struct {
	AuthorID        string `json:"authorId"`
	PostsRemoved    int    `json:"postsRemoved"`
	CommentsRemoved int    `json:"commentsRemoved"`
}
