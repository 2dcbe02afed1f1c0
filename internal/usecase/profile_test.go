package usecase_test

import (
	"context"
	"errors"
	"testing"

	"booknest/internal/store/mocks"
	"booknest/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestProfileUsecase_GetBookProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookRepo := mocks.NewMockBookRepository(ctrl)
	mockAuthorRepo := mocks.NewMockAuthorRepository(ctrl)

	uc := usecase.NewProfileUsecase(mockBookRepo, mockAuthorRepo)
	ctx := context.Background()
	bookID := "0975438212"

	t.Run("success - recommendations formatted", func(t *testing.T) {
		profile := usecase.BookProfile{BookID: bookID, Title: "The Journey of Wisdom", AverageRating: 4.7}
		recs := []usecase.RecommendedBook{
			{Title: "The Light of Time", AverageRating: 4.5},
			{Title: "Secrets of Nature", AverageRating: 3.2},
		}
		mockBookRepo.EXPECT().GetProfile(ctx, bookID).Return(profile, nil)
		mockBookRepo.EXPECT().Recommendations(ctx, bookID, 5).Return(recs, nil)

		got, err := uc.GetBookProfile(ctx, bookID)

		assert.NoError(t, err)
		assert.Equal(t, bookID, got.BookID)
		assert.Equal(t, "The Light of Time (Rating: 4.50), Secrets of Nature (Rating: 3.20)", got.Recommendations)
	})

	t.Run("success - no same-genre titles", func(t *testing.T) {
		mockBookRepo.EXPECT().GetProfile(ctx, bookID).Return(usecase.BookProfile{BookID: bookID}, nil)
		mockBookRepo.EXPECT().Recommendations(ctx, bookID, 5).Return(nil, nil)

		got, err := uc.GetBookProfile(ctx, bookID)

		assert.NoError(t, err)
		assert.Equal(t, "No recommendations available", got.Recommendations)
	})

	t.Run("error - unknown book", func(t *testing.T) {
		mockBookRepo.EXPECT().GetProfile(ctx, bookID).Return(usecase.BookProfile{}, usecase.ErrNotFound)

		_, err := uc.GetBookProfile(ctx, bookID)

		assert.True(t, errors.Is(err, usecase.ErrNotFound))
	})

	t.Run("error - recommendations query failed", func(t *testing.T) {
		mockBookRepo.EXPECT().GetProfile(ctx, bookID).Return(usecase.BookProfile{BookID: bookID}, nil)
		mockBookRepo.EXPECT().Recommendations(ctx, bookID, 5).Return(nil, errors.New("db error"))

		_, err := uc.GetBookProfile(ctx, bookID)

		assert.Error(t, err)
	})
}

func TestProfileUsecase_GetAuthorProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookRepo := mocks.NewMockBookRepository(ctrl)
	mockAuthorRepo := mocks.NewMockAuthorRepository(ctrl)

	uc := usecase.NewProfileUsecase(mockBookRepo, mockAuthorRepo)
	ctx := context.Background()

	t.Run("success - rows carry matching window aggregates", func(t *testing.T) {
		rows := []usecase.AuthorBookRow{
			{AuthorID: 42, AuthorName: "Nature Hope", BookID: "b1", BookRating: 4.8, TotalBooks: 2, AuthorAverageRating: 4.3},
			{AuthorID: 42, AuthorName: "Nature Hope", BookID: "b2", BookRating: 3.8, TotalBooks: 2, AuthorAverageRating: 4.3},
		}
		mockAuthorRepo.EXPECT().Profile(ctx, 42).Return(rows, nil)

		got, err := uc.GetAuthorProfile(ctx, 42)

		assert.NoError(t, err)
		assert.Len(t, got, got[0].TotalBooks)
		assert.Equal(t, got[0].AuthorAverageRating, got[1].AuthorAverageRating)
	})

	t.Run("error - zero rows means unknown author", func(t *testing.T) {
		mockAuthorRepo.EXPECT().Profile(ctx, 7).Return([]usecase.AuthorBookRow{}, nil)

		_, err := uc.GetAuthorProfile(ctx, 7)

		assert.True(t, errors.Is(err, usecase.ErrNotFound))
	})

	t.Run("error - repository failure", func(t *testing.T) {
		mockAuthorRepo.EXPECT().Profile(ctx, 7).Return(nil, errors.New("db error"))

		_, err := uc.GetAuthorProfile(ctx, 7)

		assert.Error(t, err)
		assert.False(t, errors.Is(err, usecase.ErrNotFound))
	})
}
