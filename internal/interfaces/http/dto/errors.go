package dto

import "net/http"

// General error codes used directly by the HTTP layer
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes. Domain
// codes not listed here are client faults and fall back to 400.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,

	"NOT_FOUND":        http.StatusNotFound,
	"RECIPE_NOT_FOUND": http.StatusNotFound,
	"ITEM_NOT_FOUND":   http.StatusNotFound,

	"ALREADY_EXISTS": http.StatusConflict,
	"INVALID_STATE":  http.StatusConflict,
	"HAS_DEPENDENTS": http.StatusConflict,

	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
