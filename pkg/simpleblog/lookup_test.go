package simpleblog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePostID(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"A New Blog Post", "a-new-blog-post"},
		{"A Changed Title", "a-changed-title"},
		{"already-a-slug", "already-a-slug"},
		{"Two  Spaces", "two--spaces"},
		{" Leading", "-leading"},
		{"Tabs\tstay", "tabs\tstay"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := DerivePostID(tt.title)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, DerivePostID(tt.title))
		})
	}
}

func TestFindByID(t *testing.T) {
	authors := []Author{
		{ID: "frank", DisplayName: "Frank"},
		{ID: "leeor", DisplayName: "Leeor"},
	}

	t.Run("found", func(t *testing.T) {
		a, ok := FindByID("leeor", authors)
		assert.True(t, ok)
		assert.Equal(t, "Leeor", a.DisplayName)

		i, ok := FindIndexByID("leeor", authors)
		assert.True(t, ok)
		assert.Equal(t, 1, i)
	})

	t.Run("not found", func(t *testing.T) {
		a, ok := FindByID("nobody", authors)
		assert.False(t, ok)
		assert.Equal(t, Author{}, a)

		i, ok := FindIndexByID("nobody", authors)
		assert.False(t, ok)
		assert.Equal(t, -1, i)
	})

	t.Run("empty collection", func(t *testing.T) {
		_, ok := FindByID[Post]("x", nil)
		assert.False(t, ok)
	})
}

func TestFilterPredicates(t *testing.T) {
	comments := []Comment{
		{Author: "frank", Body: "one"},
		{Author: "leeor", Body: "two"},
		{Author: "frank", Body: "three"},
	}

	byFrank := Filter(comments, MatchAuthor[Comment]("frank"))
	assert.Equal(t, []Comment{comments[0], comments[2]}, byFrank)

	none := Filter(comments, MatchAuthor[Comment]("nobody"))
	assert.NotNil(t, none)
	assert.Empty(t, none)

	posts := []Post{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, []Post{{ID: "b"}}, Filter(posts, MatchID[Post]("b")))
}
