package handler

import (
	"net/http"

	"github.com/topraklif/deals-api/infrastructure/preferences"
	"github.com/topraklif/deals-api/pkg/apiErrors"
	"github.com/topraklif/deals-api/pkg/log"
)

func GetPreferences(store preferences.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, store.Get())
	})
}

// UpdatePreferences merges a partial patch over the stored blob; keys the
// patch does not carry keep their current values.
func UpdatePreferences(store preferences.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if !decodeJSON(w, r, &patch) {
			return
		}

		updated, err := store.Merge(patch)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("failed to update preferences")
			apiErrors.WriteError(w, apiErrors.ErrPreferences, "Could not save preferences", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, updated)
	})
}

func ResetPreferences(store preferences.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defaults, err := store.Reset()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("failed to reset preferences")
			apiErrors.WriteError(w, apiErrors.ErrPreferences, "Could not reset preferences", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, defaults)
	})
}
