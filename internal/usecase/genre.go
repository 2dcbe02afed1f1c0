package usecase

import "context"

type GenreStatsRow struct {
	Genre          string  `json:"genre"`
	BookCount      int     `json:"bookcount"`
	UserEngagement int     `json:"userengagement"`
	AverageRating  float64 `json:"averagerating"`
}

type GenreRepository interface {
	// PopularGenres returns genres whose book count, distinct reviewer
	// count and average rating all strictly exceed the cross-genre
	// means, best rated first.
	PopularGenres(ctx context.Context, limit int) ([]GenreStatsRow, error)
}
