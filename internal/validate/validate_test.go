package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookInput struct {
	Title         string `validate:"required,max=200"`
	Author        string `validate:"required,max=100"`
	Description   string `validate:"required,max=2000"`
	PublishedYear int    `validate:"required,gte=1000,currentyear"`
}

type reviewInput struct {
	ReviewerName string `validate:"required,max=50"`
	Rating       int    `validate:"required,gte=1,lte=5"`
	Comment      string `validate:"required,min=3,max=1000"`
}

func validBook() bookInput {
	return bookInput{
		Title:         "The Great Gatsby",
		Author:        "F. Scott Fitzgerald",
		Description:   "A classic American novel set in the Jazz Age.",
		PublishedYear: 1925,
	}
}

func validReview() reviewInput {
	return reviewInput{
		ReviewerName: "Alice Johnson",
		Rating:       5,
		Comment:      "A masterpiece.",
	}
}

func TestStruct_ValidInputs(t *testing.T) {
	assert.NoError(t, Struct(validBook()))
	assert.NoError(t, Struct(validReview()))
}

func TestStruct_BookConstraints(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		in := validBook()
		in.Title = ""
		err := Struct(in)
		require.Error(t, err)
		assert.Equal(t, "Title is required", err.Error())
	})

	t.Run("title too long", func(t *testing.T) {
		in := validBook()
		in.Title = strings.Repeat("a", 201)
		err := Struct(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 200 characters")
	})

	t.Run("author too long", func(t *testing.T) {
		in := validBook()
		in.Author = strings.Repeat("a", 101)
		assert.Error(t, Struct(in))
	})

	t.Run("description too long", func(t *testing.T) {
		in := validBook()
		in.Description = strings.Repeat("a", 2001)
		assert.Error(t, Struct(in))
	})

	t.Run("year below 1000", func(t *testing.T) {
		in := validBook()
		in.PublishedYear = 999
		err := Struct(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 1000")
	})

	t.Run("year in the future", func(t *testing.T) {
		in := validBook()
		in.PublishedYear = time.Now().Year() + 1
		err := Struct(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be in the future")
	})

	t.Run("current year allowed", func(t *testing.T) {
		in := validBook()
		in.PublishedYear = time.Now().Year()
		assert.NoError(t, Struct(in))
	})

	t.Run("missing year", func(t *testing.T) {
		in := validBook()
		in.PublishedYear = 0
		err := Struct(in)
		require.Error(t, err)
		assert.Equal(t, "PublishedYear is required", err.Error())
	})
}

func TestStruct_ReviewConstraints(t *testing.T) {
	t.Run("rating bounds", func(t *testing.T) {
		for _, rating := range []int{1, 2, 3, 4, 5} {
			in := validReview()
			in.Rating = rating
			assert.NoError(t, Struct(in), "rating %d should be valid", rating)
		}

		in := validReview()
		in.Rating = 6
		assert.Error(t, Struct(in))

		in.Rating = 0
		assert.Error(t, Struct(in))
	})

	t.Run("comment too short", func(t *testing.T) {
		in := validReview()
		in.Comment = "ok"
		err := Struct(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 3 characters")
	})

	t.Run("comment too long", func(t *testing.T) {
		in := validReview()
		in.Comment = strings.Repeat("a", 1001)
		assert.Error(t, Struct(in))
	})

	t.Run("reviewer name too long", func(t *testing.T) {
		in := validReview()
		in.ReviewerName = strings.Repeat("a", 51)
		assert.Error(t, Struct(in))
	})
}

func TestStruct_CollectsAllViolations(t *testing.T) {
	err := Struct(bookInput{})
	require.Error(t, err)

	errs, ok := err.(Errors)
	require.True(t, ok)
	assert.Len(t, errs, 4)

	// Fields are reported in declaration order with lowercased names.
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "publishedYear", errs[3].Field)

	// The error string is the first violation, which is what goes on the wire.
	assert.Equal(t, "Title is required", err.Error())
}
