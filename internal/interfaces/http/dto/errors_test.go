package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"not found maps to 404", ErrCodeNotFound, http.StatusNotFound},
		{"main option conflict maps to 409", ErrCodeMainOptionConflict, http.StatusConflict},
		{"category mismatch maps to 422", ErrCodeCategoryMismatch, http.StatusUnprocessableEntity},
		{"empty draft patch maps to 400", ErrCodeEmptyDraftPatch, http.StatusBadRequest},
		{"draft product missing maps to 422", ErrCodeDraftProductMissing, http.StatusUnprocessableEntity},
		{"invalid input maps to 400", ErrCodeInvalidInput, http.StatusBadRequest},
		{"unknown code falls back to 500", "ERR_SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("GROUP_NOT_FOUND"))
	assert.Equal(t, ErrCodeMainOptionConflict, NormalizeErrorCode("MAIN_OPTION_CONFLICT"))
	assert.Equal(t, ErrCodeInvalidState, NormalizeErrorCode("MISSING_MANUAL_VALUE"))

	// domain validation codes collapse to invalid input
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("INVALID_CATEGORY"))
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("UNKNOWN_GROUP_OPTION"))
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Project not found", "req-123")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Project not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "category", Message: "must be one of TILE, GUTTER, ACCESSORY"},
	}

	resp := NewValidationErrorResponse("Request validation failed", "req-456", details)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "category", resp.Error.Details[0].Field)
}

func TestListRequest_ToFilter(t *testing.T) {
	filter := ListRequest{}.ToFilter()
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.PageSize)

	filter = ListRequest{Page: 3, PageSize: 50, Search: "Braas"}.ToFilter()
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 50, filter.PageSize)
	assert.Equal(t, "Braas", filter.Search)
}
