package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Pricing rule error codes
const (
	// ErrCodeMainOptionConflict is used when a save would leave two MAIN
	// groups for one manufacturer within a category
	ErrCodeMainOptionConflict = "ERR_MAIN_OPTION_CONFLICT"
	// ErrCodeCategoryMismatch is used when a draft targets a product
	// outside its declared category
	ErrCodeCategoryMismatch = "ERR_CATEGORY_MISMATCH"
	// ErrCodeEmptyDraftPatch is used when an edit event carries no fields
	ErrCodeEmptyDraftPatch = "ERR_EMPTY_DRAFT_PATCH"
	// ErrCodeDraftProductMissing is used when a drafted product no longer
	// exists in the catalog at save time
	ErrCodeDraftProductMissing = "ERR_DRAFT_PRODUCT_MISSING"
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// Pricing rule errors
	ErrCodeMainOptionConflict:  http.StatusConflict,
	ErrCodeCategoryMismatch:    http.StatusUnprocessableEntity,
	ErrCodeEmptyDraftPatch:     http.StatusBadRequest,
	ErrCodeDraftProductMissing: http.StatusUnprocessableEntity,
	ErrCodeInvalidState:        http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes.
// Domain codes not listed here are treated as invalid input.
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":              ErrCodeNotFound,
	"GROUP_NOT_FOUND":        ErrCodeNotFound,
	"MANUFACTURER_NOT_FOUND": ErrCodeNotFound,
	"ALREADY_EXISTS":         ErrCodeAlreadyExists,
	"MAIN_OPTION_CONFLICT":   ErrCodeMainOptionConflict,
	"CATEGORY_MISMATCH":      ErrCodeCategoryMismatch,
	"EMPTY_DRAFT_PATCH":      ErrCodeEmptyDraftPatch,
	"DRAFT_PRODUCT_MISSING":  ErrCodeDraftProductMissing,
	"MISSING_MANUAL_VALUE":   ErrCodeInvalidState,
	"MISSING_MARGIN":         ErrCodeInvalidState,
	"MISSING_DISCOUNT":       ErrCodeInvalidState,
	"INVALID_STATE":          ErrCodeInvalidState,
	"INTERNAL_ERROR":         ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Unmapped domain codes (INVALID_*, UNKNOWN_*) carry field-level detail
// the caller already understands, so they map to invalid input.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return ErrCodeInvalidInput
}
