package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/usecases/viewstate"
	"github.com/topraklif/deals-api/pkg/apiErrors"
	"github.com/topraklif/deals-api/pkg/log"
)

type CreateViewSessionResponse struct {
	SessionID string          `json:"session_id"`
	State     viewstate.State `json:"state"`
}

type SelectDealRequest struct {
	DealID string `json:"deal_id"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type DismissRequest struct {
	Containers []string `json:"containers"`
}

func CreateViewSession(sessions *viewstate.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, coordinator, err := sessions.Create()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("failed to create view session")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not create view session", nil)
			return
		}

		respondJSON(w, r, http.StatusCreated, CreateViewSessionResponse{
			SessionID: id,
			State:     coordinator.State(),
		})
	})
}

func GetViewSession(sessions *viewstate.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coordinator, ok := sessionFromRequest(w, r, sessions)
		if !ok {
			return
		}

		respondJSON(w, r, http.StatusOK, coordinator.State())
	})
}

// SelectViewDeal records a deal pick, switching the session from grid to
// map view when needed.
func SelectViewDeal(sessions *viewstate.Service, deals repository.DealRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coordinator, ok := sessionFromRequest(w, r, sessions)
		if !ok {
			return
		}

		var req SelectDealRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		deal, err := deals.GetByID(req.DealID)
		if err != nil {
			if errors.Is(err, repository.ErrDealNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrDealNotFound, "Deal not found", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("failed to load deal for selection")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not select deal", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, coordinator.SelectDeal(*deal))
	})
}

func ToggleViewMode(sessions *viewstate.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coordinator, ok := sessionFromRequest(w, r, sessions)
		if !ok {
			return
		}

		respondJSON(w, r, http.StatusOK, coordinator.ToggleViewMode())
	})
}

func RequestFullscreen(sessions *viewstate.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coordinator, ok := sessionFromRequest(w, r, sessions)
		if !ok {
			return
		}

		respondJSON(w, r, http.StatusOK, coordinator.RequestFullscreen())
	})
}

func ToggleViewPanel(sessions *viewstate.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coordinator, ok := sessionFromRequest(w, r, sessions)
		if !ok {
			return
		}

		panel := viewstate.Panel(httprouter.ParamsFromContext(r.Context()).ByName("name"))
		if !viewstate.IsValidPanel(panel) {
			apiErrors.WriteError(w, apiErrors.ErrUnknownPanel, "Unknown panel", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, coordinator.TogglePanel(panel))
	})
}

// SetViewSearch updates the session search query, which also shows the
// suggestion list.
func SetViewSearch(sessions *viewstate.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coordinator, ok := sessionFromRequest(w, r, sessions)
		if !ok {
			return
		}

		var req SearchRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		respondJSON(w, r, http.StatusOK, coordinator.SetSearchQuery(req.Query))
	})
}

// DismissOverlays is the outside-click surrogate: the client reports the
// containers under the pointer and the coordinator closes whatever the
// pointer missed.
func DismissOverlays(sessions *viewstate.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coordinator, ok := sessionFromRequest(w, r, sessions)
		if !ok {
			return
		}

		var req DismissRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		respondJSON(w, r, http.StatusOK, coordinator.PointerDown(viewstate.PointerTarget{
			Containers: req.Containers,
		}))
	})
}

func sessionFromRequest(w http.ResponseWriter, r *http.Request, sessions *viewstate.Service) (*viewstate.Coordinator, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	coordinator, err := sessions.Get(id)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrViewSessionNotFound, "View session not found", nil)
		return nil, false
	}

	return coordinator, true
}
