package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"booknest/internal/usecase"
)

// TestTopBook is a mock leaderboard row for testing
var TestTopBook = usecase.TopBookRow{
	BookID:          "0975438212",
	Title:           "The Journey of Wisdom",
	AverageRating:   4.7,
	NumberOfRatings: 312,
}

// TestSearchRow is a mock search result for testing
var TestSearchRow = usecase.SearchRow{
	Title:         "The Journey of Wisdom",
	Price:         24.99,
	Image:         "https://covers.example.com/0975438212.jpg",
	InfoLink:      "https://books.example.com/info/0975438212",
	PreviewLink:   "https://books.example.com/preview/0975438212",
	AverageRating: 4.7,
	Genre:         "Philosophy",
	AuthorName:    "Nature Hope",
}

// TestAuthorBookRow is a mock author-profile row for testing
var TestAuthorBookRow = usecase.AuthorBookRow{
	AuthorID:            42,
	AuthorName:          "Nature Hope",
	BookID:              "0975438212",
	Title:               "The Journey of Wisdom",
	Image:               "https://covers.example.com/0975438212.jpg",
	BookRating:          4.7,
	ReviewCount:         312,
	TotalBooks:          3,
	AuthorAverageRating: 4.2,
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// RecordResponse holds a recorded HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Raw    []byte
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response. Body is only populated
// when the payload is a JSON object; array payloads stay in Raw.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Raw:    bodyBytes,
		Body:   bodyMap,
	}
}

// DecodeJSONArray decodes an array payload into out for testing
func DecodeJSONArray(t interface {
	Fatalf(format string, args ...any)
}, raw []byte, out interface{}) {
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode array response: %v", err)
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertErrorBody checks that the response carries the standard error shape
func AssertErrorBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}) {
	if _, ok := body["error"]; !ok {
		t.Errorf("response body missing key %q", "error")
	}
}
