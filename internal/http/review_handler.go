package http

import (
	"errors"
	"net/http"

	"booknest/internal/usecase"
)

type ReviewHandler struct {
	repo usecase.ReviewRepository
}

func NewReviewHandler(repo usecase.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

// @Summary Review summary
// @Description Aggregate rating plus two randomly sampled review summaries
// @Tags reviews
// @Produce json
// @Param bookId path string true "Book identifier"
// @Success 200 {object} usecase.ReviewSummary
// @Failure 404 {object} ErrorBody
// @Router /review/{bookId} [get]
func (h *ReviewHandler) Summary(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("bookId")
	if bookID == "" {
		JSONError(w, http.StatusBadRequest, "Missing required bookId parameter.")
		return
	}

	summary, err := h.repo.Summary(r.Context(), bookID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			// A book with zero reviews is a 404, never a 200 of nulls.
			JSONError(w, http.StatusNotFound, "No reviews found for the specified book.")
		default:
			JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}
	JSON(w, http.StatusOK, summary)
}
