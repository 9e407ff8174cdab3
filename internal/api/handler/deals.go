package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/internal/usecases/filtering"
	"github.com/topraklif/deals-api/internal/usecases/statistics"
	"github.com/topraklif/deals-api/internal/usecases/submitting"
	"github.com/topraklif/deals-api/internal/usecases/suggesting"
	"github.com/topraklif/deals-api/pkg/apiErrors"
	"github.com/topraklif/deals-api/pkg/log"
	"github.com/topraklif/deals-api/pkg/middleware"
)

type DealListResponse struct {
	Deals []domain.Deal `json:"deals"`
	Count int           `json:"count"`
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// ListDeals serves the filtered, sorted deal collection.
func ListDeals(filterer filtering.Filterer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, criteria, err := parseFilterParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		deals := filterer.Filtered(query, criteria)

		respondJSON(w, r, http.StatusOK, DealListResponse{
			Deals: deals,
			Count: len(deals),
		})
	})
}

// GetDealStats summarizes the same filtered view ListDeals serves, so the
// numbers always agree with what the user is looking at.
func GetDealStats(filterer filtering.Filterer, summarizer statistics.Summarizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, criteria, err := parseFilterParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		stats := summarizer.Summarize(filterer.Filtered(query, criteria))

		respondJSON(w, r, http.StatusOK, stats)
	})
}

func SuggestDeals(suggester suggesting.Suggester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suggestions := suggester.Suggestions(r.URL.Query().Get("q"))
		if suggestions == nil {
			suggestions = []string{}
		}

		respondJSON(w, r, http.StatusOK, SuggestResponse{Suggestions: suggestions})
	})
}

// SubmitDeal accepts the multi-step host form. Requires authentication;
// the submitter identity is taken from the session claims.
func SubmitDeal(submitter submitting.Submitter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		var form submitting.Form
		if !decodeJSON(w, r, &form) {
			return
		}

		deal, err := submitter.Submit(form, &domain.User{
			ID:          claims.UserID,
			Email:       claims.UserEmail,
			DisplayName: claims.UserName,
			Provider:    claims.UserProvider,
		})
		if err != nil {
			var validationErr *submitting.ValidationError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrSubmissionInvalid, validationErr.Message, nil)
				return
			}

			logger.WithError(err).Error("deal submission failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not store submission", nil)
			return
		}

		logger.WithField("deal_id", deal.ID).Info("deal submitted")
		respondJSON(w, r, http.StatusCreated, deal)
	})
}

// parseFilterParams maps query parameters onto the filter criteria. Bad
// numeric values are a client error, not a silently ignored filter.
func parseFilterParams(r *http.Request) (string, domain.FilterOptions, error) {
	values := r.URL.Query()

	criteria := domain.FilterOptions{
		SortBy: domain.SortBy(values.Get("sort_by")),
	}

	if raw := values.Get("category"); raw != "" {
		category := domain.Category(raw)
		criteria.Category = &category
	}

	if raw := values.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", criteria, errors.Errorf("invalid max_price %q", raw)
		}
		criteria.MaxPrice = &maxPrice
	}

	if raw := values.Get("min_discount"); raw != "" {
		minDiscount, err := strconv.Atoi(raw)
		if err != nil {
			return "", criteria, errors.Errorf("invalid min_discount %q", raw)
		}
		criteria.MinDiscount = &minDiscount
	}

	if raw := values.Get("district"); raw != "" {
		district := raw
		criteria.District = &district
	}

	if raw := values.Get("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", criteria, errors.Errorf("invalid radius %q", raw)
		}
		criteria.Radius = &radius
	}

	return values.Get("query"), criteria, nil
}
