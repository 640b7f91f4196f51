package simpleblog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotValidate(t *testing.T) {
	assert.NoError(t, testSnapshot().Validate())
	assert.NoError(t, Snapshot{}.Validate())

	t.Run("reports every problem", func(t *testing.T) {
		s := testSnapshot()
		s.Authors = append(s.Authors, Author{ID: "frank"}, Author{ID: ""})
		s.Posts = append(s.Posts,
			Post{ID: "wrong", Title: "Right Title", Author: "frank"},
			Post{ID: "the-cyclone", Title: "The Cyclone", Author: "ghost",
				Comments: []Comment{{Author: "nobody", Body: "x"}}},
		)

		err := s.Validate()
		assert.ErrorIs(t, err, ErrConflict)
		assert.ErrorIs(t, err, ErrInvalidShape)
		assert.ErrorIs(t, err, ErrUnknownAuthor)
		assert.Contains(t, err.Error(), `"wrong"`)
		assert.Contains(t, err.Error(), `"ghost"`)
		assert.Contains(t, err.Error(), `"nobody"`)
	})
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	s := testSnapshot()
	c := s.Clone()

	c.Posts[0].Comments[0].Body = "edited"
	c.Authors[0].ID = "edited"

	assert.Equal(t, "c", s.Posts[0].Comments[0].Body)
	assert.Equal(t, "frank", s.Authors[0].ID)
}
