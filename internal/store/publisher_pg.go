package store

// Repository implementation (Postgres)

import (
	"context"

	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PublisherPG struct {
	db *pgxpool.Pool
}

func NewPublisherPG(db *pgxpool.Pool) *PublisherPG {
	return &PublisherPG{db: db}
}

func (r *PublisherPG) TopPublishers(ctx context.Context) ([]usecase.TopPublisherRow, error) {
	query := `
	WITH publisher_rating AS (
		SELECT
			p.publisherid,
			p.publishername,
			AVG(r.score) AS averagerating,
			AVG(r.helpfulness) AS averagehelpfulness,
			COUNT(DISTINCT r.userid) AS numberofratings
		FROM book b
		JOIN review r ON b.bookid = r.bookid
		JOIN publisher p ON b.publisherid = p.publisherid
		WHERE r.score IS NOT NULL
		GROUP BY p.publisherid, p.publishername
	)
	SELECT
		publishername,
		averagerating,
		numberofratings,
		averagehelpfulness
	FROM publisher_rating
	WHERE averagehelpfulness > (SELECT AVG(averagehelpfulness) FROM publisher_rating)
		AND numberofratings > (SELECT AVG(numberofratings) FROM publisher_rating)
		AND averagerating > (SELECT AVG(averagerating) FROM publisher_rating)
	ORDER BY averagerating DESC, numberofratings DESC, averagehelpfulness DESC
	LIMIT 10
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []usecase.TopPublisherRow{}
	for rows.Next() {
		var row usecase.TopPublisherRow
		if err := rows.Scan(&row.PublisherName, &row.AverageRating, &row.NumberOfRatings, &row.AverageHelpfulness); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
