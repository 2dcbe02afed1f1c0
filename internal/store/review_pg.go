package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"

	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewPG struct {
	db *pgxpool.Pool
}

func NewReviewPG(db *pgxpool.Pool) *ReviewPG {
	return &ReviewPG{db: db}
}

func (r *ReviewPG) Summary(ctx context.Context, bookID string) (usecase.ReviewSummary, error) {
	// The two sampled summaries are independent draws on purpose; they
	// can come back identical.
	query := `
	SELECT
		b.bookid,
		b.title,
		AVG(r.score) AS averagerating,
		COUNT(DISTINCT r.userid) AS numberofratings,
		(SELECT summary
		 FROM review
		 WHERE bookid = $1
		 ORDER BY RANDOM()
		 LIMIT 1) AS randomreview1,
		(SELECT summary
		 FROM review
		 WHERE bookid = $1
		 ORDER BY RANDOM()
		 LIMIT 1) AS randomreview2
	FROM book b
	JOIN review r ON b.bookid = r.bookid
	WHERE r.score IS NOT NULL
		AND b.bookid = $1
	GROUP BY b.bookid, b.title
	`
	var summary usecase.ReviewSummary
	err := r.db.QueryRow(ctx, query, bookID).Scan(
		&summary.BookID,
		&summary.Title,
		&summary.AverageRating,
		&summary.NumberOfRatings,
		&summary.RandomReview1,
		&summary.RandomReview2,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ReviewSummary{}, usecase.ErrNotFound
	}
	if err != nil {
		return usecase.ReviewSummary{}, err
	}
	return summary, nil
}
