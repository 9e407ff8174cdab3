package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/internal/usecases/authenticating"
	"github.com/topraklif/deals-api/pkg/apiErrors"
	"github.com/topraklif/deals-api/pkg/log"
	"github.com/topraklif/deals-api/pkg/middleware"
)

type SessionResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// CreateSession exchanges a provider-asserted profile for a session
// token. This endpoint trusts its caller; provider signature checks
// happen upstream.
func CreateSession(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var profile authenticating.ProviderProfile
		if !decodeJSON(w, r, &profile) {
			return
		}

		token, user, err := service.Establish(profile)
		if err != nil {
			if errors.Is(err, authenticating.ErrUnknownProvider) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownProvider, "Unknown identity provider", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("session establishment failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not establish session", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, SessionResponse{Token: token, User: user})
	})
}

// GetMe returns the profile behind the session token.
func GetMe(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		user, err := service.GetUser(claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "User not found", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("failed to load user profile")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not load profile", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, user)
	})
}
