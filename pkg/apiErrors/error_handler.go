package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients.
const (
	// Authentication (AUTH_*)
	ErrInvalidToken    = "AUTH_001"
	ErrExpiredToken    = "AUTH_002"
	ErrUserNotFound    = "AUTH_003"
	ErrUnknownProvider = "AUTH_004"

	// Validation (VAL_*)
	ErrInvalidRequest    = "VAL_001"
	ErrSubmissionInvalid = "VAL_002"

	// Resources (RES_*)
	ErrDealNotFound         = "RES_001"
	ErrNotificationNotFound = "RES_002"
	ErrViewSessionNotFound  = "RES_003"
	ErrUnknownPanel         = "RES_004"

	// Server (SRV_*)
	ErrInternalServer = "SRV_001"
	ErrPreferences    = "SRV_002"
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrExpiredToken:         http.StatusUnauthorized,
	ErrUserNotFound:         http.StatusNotFound,
	ErrUnknownProvider:      http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrSubmissionInvalid:    http.StatusUnprocessableEntity,
	ErrDealNotFound:         http.StatusNotFound,
	ErrNotificationNotFound: http.StatusNotFound,
	ErrViewSessionNotFound:  http.StatusNotFound,
	ErrUnknownPanel:         http.StatusBadRequest,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrPreferences:          http.StatusInternalServerError,
}

// APIError is the standard error envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
