package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topraklif/deals-api/internal/domain"
)

func TestSelectDealSwitchesGridToMap(t *testing.T) {
	c := NewCoordinator()
	deal := domain.Deal{ID: "1", Title: "Samsung Galaxy S24 Ultra"}

	state := c.SelectDeal(deal)

	assert.Equal(t, ViewModeMap, state.ViewMode)
	require.NotNil(t, state.SelectedDeal)
	assert.Equal(t, "1", state.SelectedDeal.ID)
}

func TestSelectDealInMapViewStaysInMapView(t *testing.T) {
	c := NewCoordinator()
	c.ToggleViewMode()

	state := c.SelectDeal(domain.Deal{ID: "2"})

	assert.Equal(t, ViewModeMap, state.ViewMode)
}

func TestToggleViewMode(t *testing.T) {
	c := NewCoordinator()

	assert.Equal(t, ViewModeMap, c.ToggleViewMode().ViewMode)
	assert.Equal(t, ViewModeGrid, c.ToggleViewMode().ViewMode)
}

func TestToggleViewModeIgnoredInFullscreen(t *testing.T) {
	c := NewCoordinator()
	c.ToggleViewMode()
	state := c.RequestFullscreen()
	require.True(t, state.Fullscreen)

	state = c.ToggleViewMode()

	assert.Equal(t, ViewModeMap, state.ViewMode)
	assert.True(t, state.Fullscreen)
}

func TestRequestFullscreen(t *testing.T) {
	c := NewCoordinator()

	// In grid view the button only switches to map view.
	state := c.RequestFullscreen()
	assert.Equal(t, ViewModeMap, state.ViewMode)
	assert.False(t, state.Fullscreen)

	// In map view it toggles fullscreen.
	state = c.RequestFullscreen()
	assert.True(t, state.Fullscreen)

	state = c.RequestFullscreen()
	assert.False(t, state.Fullscreen)
}

func TestTogglePanelIsIndependent(t *testing.T) {
	c := NewCoordinator()

	c.TogglePanel(PanelFilter)
	state := c.TogglePanel(PanelNotification)

	// Opening one panel never closes another.
	assert.Equal(t, []Panel{PanelFilter, PanelNotification}, state.OpenPanels)

	state = c.TogglePanel(PanelFilter)
	assert.Equal(t, []Panel{PanelNotification}, state.OpenPanels)
}

func TestSetSearchQueryShowsSuggestions(t *testing.T) {
	c := NewCoordinator()

	state := c.SetSearchQuery("plov")

	assert.Equal(t, "plov", state.SearchQuery)
	assert.True(t, state.ShowSuggestions)
}

func TestPointerDownDismissesOutsideOverlays(t *testing.T) {
	tests := []struct {
		name            string
		target          PointerTarget
		wantOpen        []Panel
		wantSuggestions bool
	}{
		{
			name:            "click on empty space closes everything",
			target:          PointerTarget{},
			wantOpen:        []Panel{},
			wantSuggestions: false,
		},
		{
			name:            "click inside filter panel keeps it open",
			target:          PointerTarget{Containers: []string{ContainerFilterPanel}},
			wantOpen:        []Panel{PanelFilter},
			wantSuggestions: false,
		},
		{
			name:            "click on filter button keeps the panel open",
			target:          PointerTarget{Containers: []string{ContainerFilterButton}},
			wantOpen:        []Panel{PanelFilter},
			wantSuggestions: false,
		},
		{
			name:            "click in search keeps suggestions only",
			target:          PointerTarget{Containers: []string{ContainerSearch}},
			wantOpen:        []Panel{},
			wantSuggestions: true,
		},
		{
			name: "click in notification panel keeps it and closes the rest",
			target: PointerTarget{
				Containers: []string{ContainerNotificationPanel},
			},
			wantOpen:        []Panel{PanelNotification},
			wantSuggestions: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoordinator()
			c.TogglePanel(PanelFilter)
			c.TogglePanel(PanelNotification)
			c.SetSearchQuery("plov")

			state := c.PointerDown(tt.target)

			assert.Equal(t, tt.wantOpen, state.OpenPanels)
			assert.Equal(t, tt.wantSuggestions, state.ShowSuggestions)
		})
	}
}

func TestPointerDownLeavesSettingsPanelAlone(t *testing.T) {
	c := NewCoordinator()
	c.TogglePanel(PanelSettings)

	state := c.PointerDown(PointerTarget{})

	// Settings only closes via its own toggle.
	assert.Equal(t, []Panel{PanelSettings}, state.OpenPanels)
}

func TestSelectedDealReturnsCopy(t *testing.T) {
	c := NewCoordinator()
	c.SelectDeal(domain.Deal{ID: "1", Title: "original"})

	selected := c.SelectedDeal()
	require.NotNil(t, selected)
	selected.Title = "mutated"

	assert.Equal(t, "original", c.SelectedDeal().Title)
}

func TestIsValidPanel(t *testing.T) {
	assert.True(t, IsValidPanel(PanelFilter))
	assert.True(t, IsValidPanel(PanelAccount))
	assert.False(t, IsValidPanel(Panel("sidebar")))
}
