// Package handler holds the HTTP surface: request decoding, routing and
// response encoding. Business rules live in internal/usecases.
package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/topraklif/deals-api/pkg/apiErrors"
	"github.com/topraklif/deals-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// decodeJSON reads the request body into dst, answering 400 itself on
// malformed payloads. Returns false when the handler should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
		return false
	}
	return true
}

// respondJSON encodes v with the given status. Encoding failures are only
// loggable at this point, the status line is already gone.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("failed to encode response")
	}
}
