package http

import (
	"errors"
	"net/http"
	"strconv"

	"booknest/internal/usecase"
)

type ProfileHandler struct {
	profiles *usecase.ProfileUsecase
}

func NewProfileHandler(profiles *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// @Summary Author or book profile
// @Description Full detail record for one author or book, as an array of rows
// @Tags profile
// @Produce json
// @Param type path string true "author | book"
// @Param id query string true "Author or book identifier"
// @Success 200 {array} object
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /profile/{type} [get]
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		JSONError(w, http.StatusBadRequest, "Missing required id parameter.")
		return
	}

	switch r.PathValue("type") {
	case "author":
		authorID, err := strconv.Atoi(id)
		if err != nil {
			JSONError(w, http.StatusBadRequest, "Invalid id parameter.")
			return
		}
		rows, err := h.profiles.GetAuthorProfile(ctx, authorID)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrNotFound):
				JSONError(w, http.StatusNotFound, "No author found for the specified id.")
			default:
				JSONError(w, http.StatusInternalServerError, "server error")
			}
			return
		}
		JSON(w, http.StatusOK, rows)
	case "book":
		profile, err := h.profiles.GetBookProfile(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrNotFound):
				JSONError(w, http.StatusNotFound, "No book found for the specified id.")
			default:
				JSONError(w, http.StatusInternalServerError, "server error")
			}
			return
		}
		// The UI reads the profile off element zero.
		JSON(w, http.StatusOK, []usecase.BookProfile{profile})
	default:
		JSONError(w, http.StatusBadRequest, `Invalid type parameter. Use "author" or "book".`)
	}
}
