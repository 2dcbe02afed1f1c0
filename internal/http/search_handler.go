package http

import (
	"net/http"
	"strconv"

	"booknest/internal/usecase"
)

type SearchHandler struct {
	repo usecase.BookRepository
}

func NewSearchHandler(repo usecase.BookRepository) *SearchHandler {
	return &SearchHandler{repo: repo}
}

// @Summary Search books
// @Description Filter books by title/author/genre substrings and price/rating ranges
// @Tags search
// @Produce json
// @Param title query string false "Title substring (case-sensitive)"
// @Param author query string false "Author substring (case-sensitive)"
// @Param genre query string false "Genre substring (case-sensitive)"
// @Param price_low query number false "Minimum price" default(0)
// @Param price_high query number false "Maximum price" default(1000)
// @Param rating_low query number false "Minimum average rating" default(0)
// @Param rating_high query number false "Maximum average rating" default(5)
// @Success 200 {array} usecase.SearchRow
// @Failure 400 {object} ErrorBody
// @Router /search_books [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := usecase.DefaultSearchParams()
	params.Title = r.URL.Query().Get("title")
	params.Author = r.URL.Query().Get("author")
	params.Genre = r.URL.Query().Get("genre")

	for _, bound := range []struct {
		name string
		dst  *float64
	}{
		{"price_low", &params.PriceLow},
		{"price_high", &params.PriceHigh},
		{"rating_low", &params.RatingLow},
		{"rating_high", &params.RatingHigh},
	} {
		raw := r.URL.Query().Get(bound.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			JSONError(w, http.StatusBadRequest, "Invalid "+bound.name+" parameter.")
			return
		}
		*bound.dst = v
	}

	if errs := ValidateStruct(params); errs != nil {
		JSONError(w, http.StatusBadRequest, joinValidationErrors(errs))
		return
	}

	results, err := h.repo.Search(ctx, params)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}

	// No matches is an empty list, not an error.
	JSON(w, http.StatusOK, results)
}
