package http

import "net/http"

// NewRouter registers every catalog endpoint on a fresh ServeMux.
// Probes and middleware are wired by the caller.
func NewRouter(
	search *SearchHandler,
	top *TopHandler,
	profile *ProfileHandler,
	daily *DailyHandler,
	genre *GenreHandler,
	review *ReviewHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /search_books", search.Search)
	mux.HandleFunc("GET /top/{type}", top.Top)
	mux.HandleFunc("GET /profile/{type}", profile.Profile)
	mux.HandleFunc("GET /daily/{type}", daily.Daily)
	mux.HandleFunc("GET /popular_genre", genre.Popular)
	mux.HandleFunc("GET /review/{bookId}", review.Summary)

	return mux
}
