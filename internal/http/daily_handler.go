package http

import (
	"errors"
	"net/http"

	"booknest/internal/usecase"
)

type DailyHandler struct {
	bookRepo   usecase.BookRepository
	authorRepo usecase.AuthorRepository
}

func NewDailyHandler(bookRepo usecase.BookRepository, authorRepo usecase.AuthorRepository) *DailyHandler {
	return &DailyHandler{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
	}
}

// @Summary Daily recommendation
// @Description One randomly selected book or author; re-randomized on every call
// @Tags daily
// @Produce json
// @Param type path string true "book | author"
// @Success 200 {object} object
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /daily/{type} [get]
func (h *DailyHandler) Daily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.PathValue("type") {
	case "book":
		pick, err := h.bookRepo.DailyBook(ctx)
		if err != nil {
			h.writeDailyError(w, err)
			return
		}
		JSON(w, http.StatusOK, pick)
	case "author":
		pick, err := h.authorRepo.DailyAuthor(ctx)
		if err != nil {
			h.writeDailyError(w, err)
			return
		}
		JSON(w, http.StatusOK, pick)
	default:
		JSONError(w, http.StatusBadRequest, `Invalid type parameter. Use "book" or "author".`)
	}
}

func (h *DailyHandler) writeDailyError(w http.ResponseWriter, err error) {
	if errors.Is(err, usecase.ErrNotFound) {
		JSONError(w, http.StatusNotFound, "No recommendations found.")
		return
	}
	JSONError(w, http.StatusInternalServerError, "Failed to fetch recommendation.")
}
