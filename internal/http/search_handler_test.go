package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"booknest/internal/store/mocks"
	"booknest/internal/testutil"
	"booknest/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSearchHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewSearchHandler(mockRepo)

	tests := []struct {
		name           string
		queryParams    string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:        "success - defaults applied when no params given",
			queryParams: "",
			setupMock: func() {
				mockRepo.EXPECT().
					Search(gomock.Any(), usecase.DefaultSearchParams()).
					Return([]usecase.SearchRow{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success - with matches",
			queryParams: "?title=Journey&genre=Philosophy",
			setupMock: func() {
				expected := usecase.DefaultSearchParams()
				expected.Title = "Journey"
				expected.Genre = "Philosophy"
				mockRepo.EXPECT().
					Search(gomock.Any(), expected).
					Return([]usecase.SearchRow{testutil.TestSearchRow}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success - explicit narrow bounds forwarded",
			queryParams: "?price_low=10&price_high=50&rating_low=3&rating_high=4.5",
			setupMock: func() {
				expected := usecase.SearchParams{PriceLow: 10, PriceHigh: 50, RatingLow: 3, RatingHigh: 4.5}
				mockRepo.EXPECT().
					Search(gomock.Any(), expected).
					Return([]usecase.SearchRow{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - non-numeric price",
			queryParams:    "?price_low=cheap",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - rating above scale",
			queryParams:    "?rating_high=9",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - inverted rating range",
			queryParams:    "?rating_low=4&rating_high=2",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "server error",
			queryParams: "?title=Journey",
			setupMock: func() {
				mockRepo.EXPECT().
					Search(gomock.Any(), gomock.Any()).
					Return(nil, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/search_books"+tt.queryParams, nil)

			handler.Search(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSearchHandler_EmptyResultIsEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewSearchHandler(mockRepo)

	mockRepo.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]usecase.SearchRow{}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/search_books?title=nosuchbook", nil)

	handler.Search(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)

	var rows []usecase.SearchRow
	testutil.DecodeJSONArray(t, resp.Raw, &rows)
	assert.Empty(t, rows)
	assert.Equal(t, "[]\n", string(resp.Raw))
}
