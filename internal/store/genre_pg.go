package store

// Repository implementation (Postgres)

import (
	"context"

	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GenrePG struct {
	db *pgxpool.Pool
}

func NewGenrePG(db *pgxpool.Pool) *GenrePG {
	return &GenrePG{db: db}
}

func (r *GenrePG) PopularGenres(ctx context.Context, limit int) ([]usecase.GenreStatsRow, error) {
	query := `
	WITH genre_stats AS (
		SELECT
			c.categoryid,
			c.genre,
			COUNT(DISTINCT bc.bookid) AS bookcount,
			COUNT(DISTINCT r.userid) AS userengagement,
			AVG(r.score) AS averagerating
		FROM category c
		JOIN book_category bc ON c.categoryid = bc.categoryid
		JOIN review r ON bc.bookid = r.bookid
		WHERE r.score IS NOT NULL
		GROUP BY c.categoryid, c.genre
	)
	SELECT
		genre,
		bookcount,
		userengagement,
		averagerating
	FROM genre_stats
	WHERE bookcount > (SELECT AVG(bookcount) FROM genre_stats)
		AND userengagement > (SELECT AVG(userengagement) FROM genre_stats)
		AND averagerating > (SELECT AVG(averagerating) FROM genre_stats)
	ORDER BY averagerating DESC, userengagement DESC, bookcount DESC
	LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []usecase.GenreStatsRow{}
	for rows.Next() {
		var row usecase.GenreStatsRow
		if err := rows.Scan(&row.Genre, &row.BookCount, &row.UserEngagement, &row.AverageRating); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
