// Package simpleblogtest provides fixtures shared by the simpleblog tests.
package simpleblogtest

import "github.com/tendant/simple-blog/pkg/simpleblog"

// Post ids in SiteData.
const (
	Cyclone   = "the-cyclone"
	Council   = "the-council-with-the-munchkins"
	Scarecrow = "how-dorothy-saved-the-scarecrow"
	Alternate = "alternate-ending"
)

// SiteData returns a small blog: two authors, three posts by frank and one by
// leeor, with comments from both. Each call returns fresh memory.
func SiteData() simpleblog.Snapshot {
	return simpleblog.Snapshot{
		Authors: []simpleblog.Author{
			{ID: "frank", DisplayName: "Frank Lyman Baum"},
			{ID: "leeor", DisplayName: "Leeor Aharon"},
		},
		Posts: []simpleblog.Post{
			{
				ID:     Cyclone,
				Title:  "The Cyclone",
				Body:   "Dorothy lived in the midst of the great Kansas prairies.",
				Author: "frank",
				Comments: []simpleblog.Comment{
					{Author: "leeor", Body: "Great start!"},
				},
			},
			{
				ID:     Council,
				Title:  "The Council with the Munchkins",
				Body:   "She was awakened by a shock, so sudden and severe.",
				Author: "frank",
				Comments: []simpleblog.Comment{
					{Author: "leeor", Body: "Yup, I knew it!"},
					{Author: "frank", Body: "Wiseass..."},
				},
			},
			{
				ID:       Scarecrow,
				Title:    "How Dorothy Saved the Scarecrow",
				Body:     "When Dorothy was left alone she began to feel hungry.",
				Author:   "frank",
				Comments: []simpleblog.Comment{},
			},
			{
				ID:     Alternate,
				Title:  "Alternate Ending",
				Body:   "",
				Author: "leeor",
				Comments: []simpleblog.Comment{
					{Author: "frank", Body: "You, sir, are a troll"},
					{Author: "leeor", Body: "You just can't accept the fact that my ending is better!"},
				},
			},
		},
	}
}

// PostPayload builds a post create/update payload.
func PostPayload(title, body, author string) simpleblog.Payload {
	return simpleblog.Payload{"post": map[string]any{
		"title":  title,
		"body":   body,
		"author": author,
	}}
}

// CommentPayload builds a comment payload.
func CommentPayload(author, body string) simpleblog.Payload {
	return simpleblog.Payload{"comment": map[string]any{
		"author": author,
		"body":   body,
	}}
}

// AuthorPayload builds an author payload.
func AuthorPayload(id, displayName string) simpleblog.Payload {
	return simpleblog.Payload{"author": map[string]any{
		"id":          id,
		"displayName": displayName,
	}}
}
