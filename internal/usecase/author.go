package usecase

import "context"

type TopAuthorRow struct {
	AuthorName         string  `json:"authorname"`
	TopBook            string  `json:"topbook"`
	AverageRating      float64 `json:"averagerating"`
	NumberOfRatings    int     `json:"numberofratings"`
	AverageHelpfulness float64 `json:"averagehelpfulness"`
}

// AuthorBookRow is one book of an author profile. The author-level
// aggregates are window values repeated on every row; the UI reads them
// off the first row.
type AuthorBookRow struct {
	AuthorID            int     `json:"authorid"`
	AuthorName          string  `json:"authorname"`
	BookID              string  `json:"bookid"`
	Title               string  `json:"title"`
	Image               string  `json:"image"`
	BookRating          float64 `json:"bookrating"`
	ReviewCount         int     `json:"reviewcount"`
	TotalBooks          int     `json:"totalbooks"`
	AuthorAverageRating float64 `json:"authoraveragerating"`
}

type DailyAuthor struct {
	AuthorID int    `json:"author_id"`
	Name     string `json:"name"`
}

// AuthorRepository defines the catalog reads keyed on authors.
type AuthorRepository interface {
	// TopAuthors returns the ten best authors among those beating the
	// cross-author means for rating, helpfulness and rating count,
	// each paired with their highest rated book.
	TopAuthors(ctx context.Context) ([]TopAuthorRow, error)
	// Profile returns one row per book by the author, including books
	// nobody reviewed yet.
	Profile(ctx context.Context, authorID int) ([]AuthorBookRow, error)
	// DailyAuthor picks one random author with above-mean rating and
	// rating count.
	DailyAuthor(ctx context.Context) (DailyAuthor, error)
}
