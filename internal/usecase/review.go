package usecase

import "context"

// ReviewSummary aggregates a book's reviews plus two randomly sampled
// summaries. The two picks are independent draws and may coincide.
type ReviewSummary struct {
	BookID          string  `json:"book_id"`
	Title           string  `json:"title"`
	AverageRating   float64 `json:"average_rating"`
	NumberOfRatings int     `json:"number_of_ratings"`
	RandomReview1   string  `json:"random_review_1"`
	RandomReview2   string  `json:"random_review_2"`
}

type ReviewRepository interface {
	// Summary returns the review aggregate for one book, or
	// ErrNotFound when the book has no reviews.
	Summary(ctx context.Context, bookID string) (ReviewSummary, error)
}
