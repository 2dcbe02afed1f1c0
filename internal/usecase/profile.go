package usecase

import (
	"context"
	"fmt"
	"strings"
)

// noRecommendations is what the UI checks for verbatim, so it is part
// of the response contract.
const noRecommendations = "No recommendations available"

type ProfileUsecase struct {
	bookRepo   BookRepository
	authorRepo AuthorRepository
}

func NewProfileUsecase(bookRepo BookRepository, authorRepo AuthorRepository) *ProfileUsecase {
	return &ProfileUsecase{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
	}
}

// GetBookProfile assembles a book's detail record together with its
// same-genre recommendations, rendered as one human-readable string.
func (u *ProfileUsecase) GetBookProfile(ctx context.Context, bookID string) (BookProfile, error) {
	profile, err := u.bookRepo.GetProfile(ctx, bookID)
	if err != nil {
		return BookProfile{}, err
	}

	recs, err := u.bookRepo.Recommendations(ctx, bookID, 5)
	if err != nil {
		return BookProfile{}, err
	}
	profile.Recommendations = formatRecommendations(recs)

	return profile, nil
}

// GetAuthorProfile returns one row per book by the author, best rated
// first. Zero rows means the author does not exist.
func (u *ProfileUsecase) GetAuthorProfile(ctx context.Context, authorID int) ([]AuthorBookRow, error) {
	rows, err := u.authorRepo.Profile(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

func formatRecommendations(recs []RecommendedBook) string {
	if len(recs) == 0 {
		return noRecommendations
	}
	parts := make([]string, 0, len(recs))
	for _, rec := range recs {
		parts = append(parts, fmt.Sprintf("%s (Rating: %.2f)", rec.Title, rec.AverageRating))
	}
	return strings.Join(parts, ", ")
}
