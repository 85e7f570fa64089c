package review

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookreviews/internal/validate"
)

func newTestService(t *testing.T) (*Service, *MockRepository, *MockBookChecker) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockRepository(ctrl)
	mockBooks := NewMockBookChecker(ctrl)
	return NewService(mockRepo, mockBooks), mockRepo, mockBooks
}

func validInput() CreateInput {
	return CreateInput{
		ReviewerName: "Alice Johnson",
		Rating:       5,
		Comment:      "A masterpiece.",
	}
}

func TestService_Create_Precedence(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id fails before any storage call", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Create(ctx, "not-a-valid-id", validInput())
		assert.ErrorIs(t, err, ErrInvalidBookID)
	})

	t.Run("nonexistent book fails before body validation", func(t *testing.T) {
		service, _, mockBooks := newTestService(t)
		id := primitive.NewObjectID()
		mockBooks.EXPECT().Exists(gomock.Any(), id).Return(false, nil)

		// The body is invalid too; existence still wins.
		_, err := service.Create(ctx, id.Hex(), CreateInput{Rating: 99})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("existing book with invalid body fails validation", func(t *testing.T) {
		service, _, mockBooks := newTestService(t)
		id := primitive.NewObjectID()
		mockBooks.EXPECT().Exists(gomock.Any(), id).Return(true, nil)

		in := validInput()
		in.Rating = 6
		_, err := service.Create(ctx, id.Hex(), in)

		var verrs validate.Errors
		require.ErrorAs(t, err, &verrs)
	})

	t.Run("existence check failure propagates", func(t *testing.T) {
		service, _, mockBooks := newTestService(t)
		id := primitive.NewObjectID()
		storageErr := errors.New("connection reset")
		mockBooks.EXPECT().Exists(gomock.Any(), id).Return(false, storageErr)

		_, err := service.Create(ctx, id.Hex(), validInput())
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestService_Create_RatingBounds(t *testing.T) {
	ctx := context.Background()

	for _, rating := range []int{1, 5} {
		t.Run("boundary rating accepted", func(t *testing.T) {
			service, mockRepo, mockBooks := newTestService(t)
			id := primitive.NewObjectID()
			in := validInput()
			in.Rating = rating

			mockBooks.EXPECT().Exists(gomock.Any(), id).Return(true, nil)
			mockRepo.EXPECT().Create(gomock.Any(), id, in).Return(Review{Rating: rating}, nil)

			created, err := service.Create(ctx, id.Hex(), in)
			require.NoError(t, err)
			assert.Equal(t, rating, created.Rating)
		})
	}

	for _, rating := range []int{0, 6} {
		t.Run("out of range rating rejected", func(t *testing.T) {
			service, _, mockBooks := newTestService(t)
			id := primitive.NewObjectID()
			in := validInput()
			in.Rating = rating

			mockBooks.EXPECT().Exists(gomock.Any(), id).Return(true, nil)

			_, err := service.Create(ctx, id.Hex(), in)
			var verrs validate.Errors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestService_ListByBook(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		service, _, _ := newTestService(t)
		_, err := service.ListByBook(ctx, "abc")
		assert.ErrorIs(t, err, ErrInvalidBookID)
	})

	t.Run("nonexistent book", func(t *testing.T) {
		service, _, mockBooks := newTestService(t)
		id := primitive.NewObjectID()
		mockBooks.EXPECT().Exists(gomock.Any(), id).Return(false, nil)

		_, err := service.ListByBook(ctx, id.Hex())
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("returns repository result", func(t *testing.T) {
		service, mockRepo, mockBooks := newTestService(t)
		id := primitive.NewObjectID()
		summaries := []Summary{
			{ReviewerName: "Bob Smith", Rating: 4, Comment: "Great read."},
		}

		mockBooks.EXPECT().Exists(gomock.Any(), id).Return(true, nil)
		mockRepo.EXPECT().ListByBook(gomock.Any(), id).Return(summaries, nil)

		got, err := service.ListByBook(ctx, id.Hex())
		require.NoError(t, err)
		assert.Equal(t, summaries, got)
	})
}
