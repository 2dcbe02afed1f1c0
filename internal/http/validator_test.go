package http

import (
	"strings"
	"testing"

	"booknest/internal/usecase"
)

func TestValidateStruct_ValidBounds(t *testing.T) {
	params := usecase.SearchParams{
		Title:      "wisdom",
		PriceLow:   5,
		PriceHigh:  50,
		RatingLow:  2,
		RatingHigh: 4.5,
	}

	errs := ValidateStruct(params)
	if len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateStruct_DefaultsAreValid(t *testing.T) {
	errs := ValidateStruct(usecase.DefaultSearchParams())
	if len(errs) != 0 {
		t.Errorf("Expected defaults to validate, got %v", errs)
	}
}

func TestValidateStruct_NegativePrice(t *testing.T) {
	params := usecase.DefaultSearchParams()
	params.PriceLow = -1

	errs := ValidateStruct(params)
	hasPriceError := false
	for _, err := range errs {
		if err.Field == "priceLow" && strings.Contains(err.Message, "at least") {
			hasPriceError = true
		}
	}
	if !hasPriceError {
		t.Errorf("Expected priceLow error, got %v", errs)
	}
}

func TestValidateStruct_RatingAboveScale(t *testing.T) {
	params := usecase.DefaultSearchParams()
	params.RatingHigh = 5.5

	errs := ValidateStruct(params)
	hasRatingError := false
	for _, err := range errs {
		if err.Field == "ratingHigh" && strings.Contains(err.Message, "at most") {
			hasRatingError = true
		}
	}
	if !hasRatingError {
		t.Errorf("Expected ratingHigh error, got %v", errs)
	}
}

func TestValidateStruct_InvertedRanges(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*usecase.SearchParams)
		field  string
	}{
		{
			name:   "price high below price low",
			mutate: func(p *usecase.SearchParams) { p.PriceLow = 100; p.PriceHigh = 10 },
			field:  "priceHigh",
		},
		{
			name:   "rating high below rating low",
			mutate: func(p *usecase.SearchParams) { p.RatingLow = 4; p.RatingHigh = 2 },
			field:  "ratingHigh",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := usecase.DefaultSearchParams()
			tc.mutate(&params)

			errs := ValidateStruct(params)
			found := false
			for _, err := range errs {
				if err.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected error on %s, got %v", tc.field, errs)
			}
		})
	}
}

func TestJoinValidationErrors(t *testing.T) {
	errs := []ValidationError{
		{Field: "priceLow", Message: "PriceLow must be at least 0"},
		{Field: "ratingHigh", Message: "RatingHigh must be at most 5"},
	}

	got := joinValidationErrors(errs)
	want := "PriceLow must be at least 0; RatingHigh must be at most 5"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
