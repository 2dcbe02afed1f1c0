package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"

	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthorPG struct {
	db *pgxpool.Pool
}

func NewAuthorPG(db *pgxpool.Pool) *AuthorPG {
	return &AuthorPG{db: db}
}

func (r *AuthorPG) TopAuthors(ctx context.Context) ([]usecase.TopAuthorRow, error) {
	// The above-mean filters are strict: an author sitting exactly on
	// a cross-author mean is excluded.
	query := `
	WITH author_rating AS (
		SELECT
			a.authorid,
			a.name AS authorname,
			AVG(r.score) AS averagerating,
			AVG(r.helpfulness) AS averagehelpfulness,
			COUNT(DISTINCT r.userid) AS numberofratings
		FROM book_author ba
		JOIN review r ON ba.bookid = r.bookid
		JOIN author a ON ba.authorid = a.authorid
		WHERE r.score IS NOT NULL
		GROUP BY a.authorid, a.name
	),
	top_books AS (
		SELECT
			authorid,
			title AS topbook
		FROM (
			SELECT
				authorid,
				title,
				score,
				ROW_NUMBER() OVER (PARTITION BY authorid ORDER BY score DESC) AS rank
			FROM (
				SELECT
					ba.authorid,
					b.title,
					AVG(r.score) AS score
				FROM book_author ba
				JOIN review r ON ba.bookid = r.bookid
				JOIN book b ON ba.bookid = b.bookid
				WHERE r.score IS NOT NULL
				GROUP BY ba.authorid, b.title
			) AS author_title_mapping
		) AS ranked_books
		WHERE rank = 1
	)
	SELECT
		ar.authorname,
		tb.topbook,
		ar.averagerating,
		ar.numberofratings,
		ar.averagehelpfulness
	FROM author_rating ar
	JOIN top_books tb ON ar.authorid = tb.authorid
	WHERE ar.averagehelpfulness > (SELECT AVG(averagehelpfulness) FROM author_rating)
		AND ar.numberofratings > (SELECT AVG(numberofratings) FROM author_rating)
		AND ar.averagerating > (SELECT AVG(averagerating) FROM author_rating)
	ORDER BY ar.averagerating DESC, ar.numberofratings DESC, ar.averagehelpfulness DESC
	LIMIT 10
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []usecase.TopAuthorRow{}
	for rows.Next() {
		var row usecase.TopAuthorRow
		if err := rows.Scan(&row.AuthorName, &row.TopBook, &row.AverageRating, &row.NumberOfRatings, &row.AverageHelpfulness); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *AuthorPG) Profile(ctx context.Context, authorID int) ([]usecase.AuthorBookRow, error) {
	// Books without reviews are kept (LEFT JOIN, rating 0) so the row
	// count always equals totalbooks.
	query := `
	WITH author_books AS (
		SELECT
			a.authorid,
			a.name AS authorname,
			b.bookid,
			b.title,
			b.image,
			COALESCE(AVG(r.score), 0) AS bookrating,
			COUNT(DISTINCT r.userid) AS reviewcount
		FROM author a
		JOIN book_author ba ON a.authorid = ba.authorid
		JOIN book b ON ba.bookid = b.bookid
		LEFT JOIN review r ON b.bookid = r.bookid
		WHERE a.authorid = $1
		GROUP BY a.authorid, a.name, b.bookid, b.title, b.image
	)
	SELECT
		authorid,
		authorname,
		bookid,
		title,
		image,
		bookrating,
		reviewcount,
		COUNT(*) OVER () AS totalbooks,
		AVG(bookrating) OVER () AS authoraveragerating
	FROM author_books
	ORDER BY bookrating DESC, title
	`
	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []usecase.AuthorBookRow{}
	for rows.Next() {
		var row usecase.AuthorBookRow
		if err := rows.Scan(&row.AuthorID, &row.AuthorName, &row.BookID, &row.Title, &row.Image, &row.BookRating, &row.ReviewCount, &row.TotalBooks, &row.AuthorAverageRating); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *AuthorPG) DailyAuthor(ctx context.Context) (usecase.DailyAuthor, error) {
	query := `
	WITH author_rating AS (
		SELECT
			a.authorid,
			a.name AS authorname,
			AVG(r.score) AS averagerating,
			COUNT(DISTINCT r.userid) AS numberofratings
		FROM book_author ba
		JOIN review r ON ba.bookid = r.bookid
		JOIN author a ON ba.authorid = a.authorid
		WHERE r.score IS NOT NULL
		GROUP BY a.authorid, a.name
	)
	SELECT
		authorid,
		authorname
	FROM author_rating
	WHERE numberofratings > (SELECT AVG(numberofratings) FROM author_rating)
		AND averagerating > (SELECT AVG(averagerating) FROM author_rating)
	ORDER BY RANDOM()
	LIMIT 1
	`
	var pick usecase.DailyAuthor
	err := r.db.QueryRow(ctx, query).Scan(&pick.AuthorID, &pick.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.DailyAuthor{}, usecase.ErrNotFound
	}
	if err != nil {
		return usecase.DailyAuthor{}, err
	}
	return pick, nil
}
