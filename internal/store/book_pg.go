package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"

	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) Search(ctx context.Context, p usecase.SearchParams) ([]usecase.SearchRow, error) {
	query := `
	WITH book_info AS (
		SELECT
			b.title,
			b.price,
			b.image,
			b.infolink,
			b.previewlink,
			bc.categoryid,
			ba.authorid,
			AVG(r.score) AS averagerating
		FROM book b
		JOIN book_category bc ON b.bookid = bc.bookid
		JOIN book_author ba ON b.bookid = ba.bookid
		JOIN review r ON b.bookid = r.bookid
		GROUP BY
			b.title,
			b.price,
			b.image,
			b.infolink,
			b.previewlink,
			bc.categoryid,
			ba.authorid
	)
	SELECT
		bi.title,
		bi.price,
		bi.image,
		bi.infolink,
		bi.previewlink,
		bi.averagerating,
		c.genre,
		a.name AS authorname
	FROM book_info bi
	JOIN category c ON bi.categoryid = c.categoryid
	JOIN author a ON bi.authorid = a.authorid
	WHERE bi.title LIKE '%' || $1 || '%'
		AND a.name LIKE '%' || $2 || '%'
		AND c.genre LIKE '%' || $3 || '%'
		AND bi.price BETWEEN $4 AND $5
		AND bi.averagerating BETWEEN $6 AND $7
	ORDER BY bi.averagerating DESC
	`
	rows, err := r.db.Query(ctx, query,
		p.Title, p.Author, p.Genre,
		p.PriceLow, p.PriceHigh,
		p.RatingLow, p.RatingHigh,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []usecase.SearchRow{}
	for rows.Next() {
		var row usecase.SearchRow
		if err := rows.Scan(&row.Title, &row.Price, &row.Image, &row.InfoLink, &row.PreviewLink, &row.AverageRating, &row.Genre, &row.AuthorName); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *BookPG) TopBooks(ctx context.Context) ([]usecase.TopBookRow, error) {
	query := `
	SELECT
		b.bookid,
		b.title,
		AVG(r.score) AS averagerating,
		COUNT(r.userid) AS numberofratings
	FROM book b
	JOIN review r ON b.bookid = r.bookid
	GROUP BY b.bookid, b.title
	ORDER BY averagerating DESC, numberofratings DESC
	LIMIT 10
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []usecase.TopBookRow{}
	for rows.Next() {
		var row usecase.TopBookRow
		if err := rows.Scan(&row.BookID, &row.Title, &row.AverageRating, &row.NumberOfRatings); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *BookPG) DailyBook(ctx context.Context) (usecase.DailyBook, error) {
	query := `
	SELECT bookid, title
	FROM book
	WHERE price > 10 AND ratingscount > 50
	ORDER BY RANDOM()
	LIMIT 1
	`
	var pick usecase.DailyBook
	err := r.db.QueryRow(ctx, query).Scan(&pick.BookID, &pick.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.DailyBook{}, usecase.ErrNotFound
	}
	if err != nil {
		return usecase.DailyBook{}, err
	}
	return pick, nil
}

func (r *BookPG) GetProfile(ctx context.Context, bookID string) (usecase.BookProfile, error) {
	// The review join is fanned out by the author and category joins,
	// but each review is duplicated uniformly, so AVG is unaffected
	// and the reviewer count stays DISTINCT.
	query := `
	SELECT
		b.bookid,
		b.title,
		b.price,
		b.image,
		b.infolink,
		b.previewlink,
		b.publisheddate,
		COALESCE(p.publishername, '') AS publishername,
		COALESCE(string_agg(DISTINCT a.name, ', '), '') AS authors,
		COALESCE(string_agg(DISTINCT c.genre, ', '), '') AS genres,
		COALESCE(AVG(r.score), 0) AS averagerating,
		COUNT(DISTINCT r.userid) AS reviewcount
	FROM book b
	LEFT JOIN publisher p ON b.publisherid = p.publisherid
	LEFT JOIN book_author ba ON b.bookid = ba.bookid
	LEFT JOIN author a ON ba.authorid = a.authorid
	LEFT JOIN book_category bc ON b.bookid = bc.bookid
	LEFT JOIN category c ON bc.categoryid = c.categoryid
	LEFT JOIN review r ON b.bookid = r.bookid
	WHERE b.bookid = $1
	GROUP BY b.bookid, b.title, b.price, b.image, b.infolink, b.previewlink, b.publisheddate, p.publishername
	`
	var profile usecase.BookProfile
	err := r.db.QueryRow(ctx, query, bookID).Scan(
		&profile.BookID,
		&profile.Title,
		&profile.Price,
		&profile.Image,
		&profile.InfoLink,
		&profile.PreviewLink,
		&profile.PublishedDate,
		&profile.PublisherName,
		&profile.Authors,
		&profile.Genres,
		&profile.AverageRating,
		&profile.ReviewCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.BookProfile{}, usecase.ErrNotFound
	}
	if err != nil {
		return usecase.BookProfile{}, err
	}
	return profile, nil
}

func (r *BookPG) Recommendations(ctx context.Context, bookID string, limit int) ([]usecase.RecommendedBook, error) {
	query := `
	SELECT
		b2.title,
		COALESCE(AVG(r.score), 0) AS averagerating
	FROM book_category bc
	JOIN book_category bc2 ON bc.categoryid = bc2.categoryid AND bc2.bookid <> bc.bookid
	JOIN book b2 ON bc2.bookid = b2.bookid
	LEFT JOIN review r ON b2.bookid = r.bookid
	WHERE bc.bookid = $1
	GROUP BY b2.bookid, b2.title
	ORDER BY RANDOM()
	LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, bookID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []usecase.RecommendedBook
	for rows.Next() {
		var rec usecase.RecommendedBook
		if err := rows.Scan(&rec.Title, &rec.AverageRating); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
