package usecase

import (
	"context"
	"time"
)

// SearchParams carries the /search_books filters. Substring filters are
// case-sensitive; empty strings match everything. Range bounds are
// inclusive.
type SearchParams struct {
	Title      string
	Author     string
	Genre      string
	PriceLow   float64 `validate:"gte=0"`
	PriceHigh  float64 `validate:"gtefield=PriceLow"`
	RatingLow  float64 `validate:"gte=0,lte=5"`
	RatingHigh float64 `validate:"gte=0,lte=5,gtefield=RatingLow"`
}

// DefaultSearchParams returns the bounds the original UI assumes when
// the user leaves the sliders alone.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		PriceLow:   0,
		PriceHigh:  1000,
		RatingLow:  0,
		RatingHigh: 5,
	}
}

// SearchRow is one /search_books result. One row per
// (book, genre, author) combination, mirroring the catalog join.
type SearchRow struct {
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	InfoLink      string  `json:"infolink"`
	PreviewLink   string  `json:"previewlink"`
	AverageRating float64 `json:"averagerating"`
	Genre         string  `json:"genre"`
	AuthorName    string  `json:"authorname"`
}

type TopBookRow struct {
	BookID          string  `json:"bookid"`
	Title           string  `json:"title"`
	AverageRating   float64 `json:"averagerating"`
	NumberOfRatings int     `json:"numberofratings"`
}

type DailyBook struct {
	BookID string `json:"book_id"`
	Title  string `json:"title"`
}

// BookProfile is the detail record behind /profile/book. Recommendations
// is filled in by ProfileUsecase, not by the repository.
type BookProfile struct {
	BookID          string    `json:"bookid"`
	Title           string    `json:"title"`
	Price           float64   `json:"price"`
	Image           string    `json:"image"`
	InfoLink        string    `json:"infolink"`
	PreviewLink     string    `json:"previewlink"`
	PublishedDate   time.Time `json:"publisheddate"`
	PublisherName   string    `json:"publishername"`
	Authors         string    `json:"authors"`
	Genres          string    `json:"genres"`
	AverageRating   float64   `json:"averagerating"`
	ReviewCount     int       `json:"reviewcount"`
	Recommendations string    `json:"recommendations"`
}

// RecommendedBook is a same-genre title sampled for a book profile.
type RecommendedBook struct {
	Title         string
	AverageRating float64
}

// BookRepository defines the catalog reads keyed on books.
type BookRepository interface {
	// Search returns books matching the filters, best rated first.
	Search(ctx context.Context, p SearchParams) ([]SearchRow, error)
	// TopBooks returns the ten best rated books.
	TopBooks(ctx context.Context) ([]TopBookRow, error)
	// DailyBook picks one random book with price > 10 and more than
	// 50 ratings.
	DailyBook(ctx context.Context) (DailyBook, error)
	// GetProfile returns the detail record for one book.
	GetProfile(ctx context.Context, bookID string) (BookProfile, error)
	// Recommendations samples up to limit random titles sharing a
	// genre with the given book.
	Recommendations(ctx context.Context, bookID string, limit int) ([]RecommendedBook, error)
}
