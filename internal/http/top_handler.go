package http

import (
	"net/http"

	"booknest/internal/usecase"
)

type TopHandler struct {
	bookRepo      usecase.BookRepository
	authorRepo    usecase.AuthorRepository
	publisherRepo usecase.PublisherRepository
}

func NewTopHandler(bookRepo usecase.BookRepository, authorRepo usecase.AuthorRepository, publisherRepo usecase.PublisherRepository) *TopHandler {
	return &TopHandler{
		bookRepo:      bookRepo,
		authorRepo:    authorRepo,
		publisherRepo: publisherRepo,
	}
}

// @Summary Leaderboards
// @Description Top 10 books, authors or publishers by review aggregates
// @Tags top
// @Produce json
// @Param type path string true "authors | books | publishers"
// @Success 200 {array} object
// @Failure 400 {object} ErrorBody
// @Router /top/{type} [get]
func (h *TopHandler) Top(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.PathValue("type") {
	case "authors":
		results, err := h.authorRepo.TopAuthors(ctx)
		if err != nil {
			JSONError(w, http.StatusInternalServerError, "server error")
			return
		}
		JSON(w, http.StatusOK, results)
	case "books":
		results, err := h.bookRepo.TopBooks(ctx)
		if err != nil {
			JSONError(w, http.StatusInternalServerError, "server error")
			return
		}
		JSON(w, http.StatusOK, results)
	case "publishers":
		results, err := h.publisherRepo.TopPublishers(ctx)
		if err != nil {
			JSONError(w, http.StatusInternalServerError, "server error")
			return
		}
		JSON(w, http.StatusOK, results)
	default:
		JSONError(w, http.StatusBadRequest, `Invalid type parameter. Use "authors", "books", or "publishers".`)
	}
}
