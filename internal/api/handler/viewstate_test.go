package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/api/handler/router"
	"github.com/topraklif/deals-api/internal/usecases/viewstate"
)

func viewTestRouter(t *testing.T) (router.Router, string) {
	t.Helper()

	dealRepo := repository.NewDealRepository(repository.SeedDeals())
	sessions := viewstate.NewService()

	id, _, err := sessions.Create()
	require.NoError(t, err)

	rt := router.New(
		router.WithRoutes(ViewSessions(sessions, dealRepo)...),
	)

	return rt, id
}

func doView(t *testing.T, rt router.Router, method, path, body string) (*httptest.ResponseRecorder, viewstate.State) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	var state viewstate.State
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	}

	return rec, state
}

func TestSelectDealEndpointSwitchesToMap(t *testing.T) {
	rt, id := viewTestRouter(t)

	rec, state := doView(t, rt, http.MethodPost, "/v1/view/sessions/"+id+"/select", `{"deal_id": "1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, viewstate.ViewModeMap, state.ViewMode)
	require.NotNil(t, state.SelectedDeal)
	assert.Equal(t, "1", state.SelectedDeal.ID)
}

func TestSelectDealEndpointUnknownDeal(t *testing.T) {
	rt, id := viewTestRouter(t)

	rec, _ := doView(t, rt, http.MethodPost, "/v1/view/sessions/"+id+"/select", `{"deal_id": "999"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTogglePanelEndpoint(t *testing.T) {
	rt, id := viewTestRouter(t)

	rec, state := doView(t, rt, http.MethodPost, "/v1/view/sessions/"+id+"/panels/filter", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []viewstate.Panel{viewstate.PanelFilter}, state.OpenPanels)
}

func TestTogglePanelEndpointUnknownPanel(t *testing.T) {
	rt, id := viewTestRouter(t)

	rec, _ := doView(t, rt, http.MethodPost, "/v1/view/sessions/"+id+"/panels/sidebar", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDismissEndpointClosesPanels(t *testing.T) {
	rt, id := viewTestRouter(t)

	doView(t, rt, http.MethodPost, "/v1/view/sessions/"+id+"/panels/filter", "")
	rec, state := doView(t, rt, http.MethodPost, "/v1/view/sessions/"+id+"/dismiss", `{"containers": []}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, state.OpenPanels)
}

func TestViewSessionNotFound(t *testing.T) {
	rt, _ := viewTestRouter(t)

	rec, _ := doView(t, rt, http.MethodGet, "/v1/view/sessions/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
