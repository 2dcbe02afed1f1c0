package usecase

import "context"

type TopPublisherRow struct {
	PublisherName      string  `json:"publishername"`
	AverageRating      float64 `json:"averagerating"`
	NumberOfRatings    int     `json:"numberofratings"`
	AverageHelpfulness float64 `json:"averagehelpfulness"`
}

type PublisherRepository interface {
	// TopPublishers returns the ten best publishers among those
	// beating the cross-publisher means.
	TopPublishers(ctx context.Context) ([]TopPublisherRow, error)
}
