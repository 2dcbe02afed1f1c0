package http

import (
	"net/http"

	"booknest/internal/usecase"
)

const popularGenreLimit = 5

type GenreHandler struct {
	repo usecase.GenreRepository
}

func NewGenreHandler(repo usecase.GenreRepository) *GenreHandler {
	return &GenreHandler{repo: repo}
}

// @Summary Popular genres
// @Description Genres beating the cross-genre means for book count, engagement and rating
// @Tags genres
// @Produce json
// @Success 200 {array} usecase.GenreStatsRow
// @Failure 500 {object} ErrorBody
// @Router /popular_genre [get]
func (h *GenreHandler) Popular(w http.ResponseWriter, r *http.Request) {
	results, err := h.repo.PopularGenres(r.Context(), popularGenreLimit)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	JSON(w, http.StatusOK, results)
}
