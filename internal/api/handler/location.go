package handler

import (
	"net/http"

	"github.com/topraklif/deals-api/internal/usecases/locating"
)

// GetLocation resolves the requester's position. Never errors: the
// locator degrades to the city-center fallback internally.
func GetLocation(locator locating.Locator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, locator.Resolve(r.Context()))
	})
}
