package handler

import (
	"net/http"

	"github.com/topraklif/deals-api/infrastructure/preferences"
	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/api/handler/router"
	"github.com/topraklif/deals-api/internal/usecases/authenticating"
	"github.com/topraklif/deals-api/internal/usecases/filtering"
	"github.com/topraklif/deals-api/internal/usecases/locating"
	"github.com/topraklif/deals-api/internal/usecases/notifying"
	"github.com/topraklif/deals-api/internal/usecases/statistics"
	"github.com/topraklif/deals-api/internal/usecases/submitting"
	"github.com/topraklif/deals-api/internal/usecases/suggesting"
	"github.com/topraklif/deals-api/internal/usecases/viewstate"
	"github.com/topraklif/deals-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Deals exposes the browse pipeline publicly; only submission needs an
// authenticated user.
func Deals(
	filterer filtering.Filterer,
	summarizer statistics.Summarizer,
	suggester suggesting.Suggester,
	submitter submitting.Submitter,
	authService authenticating.Authenticator,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/deals",
			Method:  http.MethodGet,
			Handler: ListDeals(filterer),
		},
		{
			Path:    "/v1/deals/stats",
			Method:  http.MethodGet,
			Handler: GetDealStats(filterer, summarizer),
		},
		{
			Path:    "/v1/deals/suggest",
			Method:  http.MethodGet,
			Handler: SuggestDeals(suggester),
		},
		{
			Path:        "/v1/deals",
			Method:      http.MethodPost,
			Handler:     SubmitDeal(submitter),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth(authService)},
		},
	}
}

func Notifications(notifier notifying.Notifier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/notifications",
			Method:  http.MethodGet,
			Handler: ListNotifications(notifier),
		},
		{
			Path:    "/v1/notifications/:id/read",
			Method:  http.MethodPost,
			Handler: MarkNotificationRead(notifier),
		},
		{
			Path:    "/v1/notifications",
			Method:  http.MethodDelete,
			Handler: ClearNotifications(notifier),
		},
	}
}

func Session(authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/session",
			Method:  http.MethodPost,
			Handler: CreateSession(authService),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(authService),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth(authService)},
		},
	}
}

func Preferences(store preferences.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/preferences",
			Method:  http.MethodGet,
			Handler: GetPreferences(store),
		},
		{
			Path:    "/v1/preferences",
			Method:  http.MethodPut,
			Handler: UpdatePreferences(store),
		},
		{
			Path:    "/v1/preferences",
			Method:  http.MethodDelete,
			Handler: ResetPreferences(store),
		},
	}
}

func Location(locator locating.Locator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/location",
			Method:  http.MethodGet,
			Handler: GetLocation(locator),
		},
	}
}

func ViewSessions(sessions *viewstate.Service, deals repository.DealRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/view/sessions",
			Method:  http.MethodPost,
			Handler: CreateViewSession(sessions),
		},
		{
			Path:    "/v1/view/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetViewSession(sessions),
		},
		{
			Path:    "/v1/view/sessions/:id/select",
			Method:  http.MethodPost,
			Handler: SelectViewDeal(sessions, deals),
		},
		{
			Path:    "/v1/view/sessions/:id/view-mode",
			Method:  http.MethodPost,
			Handler: ToggleViewMode(sessions),
		},
		{
			Path:    "/v1/view/sessions/:id/fullscreen",
			Method:  http.MethodPost,
			Handler: RequestFullscreen(sessions),
		},
		{
			Path:    "/v1/view/sessions/:id/panels/:name",
			Method:  http.MethodPost,
			Handler: ToggleViewPanel(sessions),
		},
		{
			Path:    "/v1/view/sessions/:id/search",
			Method:  http.MethodPost,
			Handler: SetViewSearch(sessions),
		},
		{
			Path:    "/v1/view/sessions/:id/dismiss",
			Method:  http.MethodPost,
			Handler: DismissOverlays(sessions),
		},
	}
}
