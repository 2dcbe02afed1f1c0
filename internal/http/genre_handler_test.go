package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booknest/internal/store/mocks"
	"booknest/internal/testutil"
	"booknest/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestGenreHandler_Popular(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockGenreRepository(ctrl)
	handler := NewGenreHandler(mockRepo)

	t.Run("success - at most five genres, best rated first", func(t *testing.T) {
		rows := []usecase.GenreStatsRow{
			{Genre: "Philosophy", BookCount: 120, UserEngagement: 900, AverageRating: 4.6},
			{Genre: "Fiction", BookCount: 400, UserEngagement: 2100, AverageRating: 4.2},
		}
		mockRepo.EXPECT().PopularGenres(gomock.Any(), 5).Return(rows, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/popular_genre", nil)

		handler.Popular(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)

		var got []usecase.GenreStatsRow
		testutil.DecodeJSONArray(t, resp.Raw, &got)
		assert.LessOrEqual(t, len(got), 5)
		assert.Equal(t, "Philosophy", got[0].Genre)
	})

	t.Run("success - no genre beats every mean", func(t *testing.T) {
		mockRepo.EXPECT().PopularGenres(gomock.Any(), 5).Return([]usecase.GenreStatsRow{}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/popular_genre", nil)

		handler.Popular(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "[]\n", string(resp.Raw))
	})

	t.Run("server error", func(t *testing.T) {
		mockRepo.EXPECT().PopularGenres(gomock.Any(), 5).Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/popular_genre", nil)

		handler.Popular(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		testutil.AssertErrorBody(t, resp.Body)
	})
}
