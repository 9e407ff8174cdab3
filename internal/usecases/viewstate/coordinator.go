// Package viewstate owns per-session view coordination: the selected deal,
// grid/map mode, fullscreen, open overlay panels and the search box.
package viewstate

import (
	"sync"

	"github.com/topraklif/deals-api/internal/domain"
)

type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeMap  ViewMode = "map"
)

type Panel string

const (
	PanelFilter       Panel = "filter"
	PanelNotification Panel = "notification"
	PanelSettings     Panel = "settings"
	PanelAccount      Panel = "account"
)

func IsValidPanel(panel Panel) bool {
	switch panel {
	case PanelFilter, PanelNotification, PanelSettings, PanelAccount:
		return true
	}
	return false
}

// Container identifiers reported by the rendering client in pointer
// targets.
const (
	ContainerFilterPanel        = "panel:filter"
	ContainerFilterButton       = "button:filter"
	ContainerNotificationPanel  = "panel:notification"
	ContainerNotificationButton = "button:notification"
	ContainerSearch             = "search"
)

// outsideDismissable lists the overlays the outside-click rule closes.
// Settings and account panels only close via their own toggles.
var outsideDismissable = []Panel{PanelFilter, PanelNotification}

// State is a snapshot of the coordinator, safe to serialize.
type State struct {
	ViewMode        ViewMode     `json:"view_mode"`
	Fullscreen      bool         `json:"fullscreen"`
	SelectedDeal    *domain.Deal `json:"selected_deal,omitempty"`
	OpenPanels      []Panel      `json:"open_panels"`
	SearchQuery     string       `json:"search_query"`
	ShowSuggestions bool         `json:"show_suggestions"`
}

// Coordinator is the view state machine. It runs for the life of the
// session; there is no terminal state.
type Coordinator struct {
	mu              sync.Mutex
	viewMode        ViewMode
	fullscreen      bool
	selected        *domain.Deal
	panels          map[Panel]bool
	searchQuery     string
	showSuggestions bool
	overlays        *OverlayManager
}

func NewCoordinator() *Coordinator {
	overlays := NewOverlayManager()
	overlays.Register(string(PanelFilter), ContainerFilterPanel, ContainerFilterButton)
	overlays.Register(string(PanelNotification), ContainerNotificationPanel, ContainerNotificationButton)
	overlays.Register(ContainerSearch, ContainerSearch)

	return &Coordinator{
		viewMode: ViewModeGrid,
		panels:   make(map[Panel]bool),
		overlays: overlays,
	}
}

// SelectDeal records the pick; selecting from the grid switches to map
// view. The reverse transition never happens on selection.
func (c *Coordinator) SelectDeal(deal domain.Deal) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = &deal
	if c.viewMode == ViewModeGrid {
		c.viewMode = ViewModeMap
	}

	return c.stateLocked()
}

// ToggleViewMode flips grid/map. Ignored while the map is fullscreen.
func (c *Coordinator) ToggleViewMode() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fullscreen {
		if c.viewMode == ViewModeGrid {
			c.viewMode = ViewModeMap
		} else {
			c.viewMode = ViewModeGrid
		}
	}

	return c.stateLocked()
}

// RequestFullscreen mirrors the map button: in map view it toggles
// fullscreen, in grid view it only switches to map view.
func (c *Coordinator) RequestFullscreen() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.viewMode == ViewModeMap {
		c.fullscreen = !c.fullscreen
	} else {
		c.viewMode = ViewModeMap
	}

	return c.stateLocked()
}

// TogglePanel opens or closes one panel. Deliberately does not close
// sibling panels; exclusivity comes only from the outside-click rule.
func (c *Coordinator) TogglePanel(panel Panel) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.panels[panel] {
		delete(c.panels, panel)
	} else {
		c.panels[panel] = true
	}

	return c.stateLocked()
}

// SetSearchQuery updates the query and shows suggestions, as typing does.
func (c *Coordinator) SetSearchQuery(query string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchQuery = query
	c.showSuggestions = true

	return c.stateLocked()
}

// PointerDown applies the outside-click dismissal rule. Each condition is
// evaluated independently: filter panel, notification panel, suggestion
// visibility.
func (c *Coordinator) PointerDown(target PointerTarget) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, panel := range outsideDismissable {
		if c.panels[panel] && c.overlays.Outside(string(panel), target) {
			delete(c.panels, panel)
		}
	}

	if c.overlays.Outside(ContainerSearch, target) {
		c.showSuggestions = false
	}

	return c.stateLocked()
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Coordinator) SelectedDeal() *domain.Deal {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selected == nil {
		return nil
	}
	deal := *c.selected
	return &deal
}

func (c *Coordinator) stateLocked() State {
	state := State{
		ViewMode:        c.viewMode,
		Fullscreen:      c.fullscreen,
		OpenPanels:      c.openPanelsLocked(),
		SearchQuery:     c.searchQuery,
		ShowSuggestions: c.showSuggestions,
	}

	if c.selected != nil {
		deal := *c.selected
		state.SelectedDeal = &deal
	}

	return state
}

// openPanelsLocked returns the open set in a fixed order so snapshots
// compare deterministically.
func (c *Coordinator) openPanelsLocked() []Panel {
	ordered := []Panel{PanelFilter, PanelNotification, PanelSettings, PanelAccount}

	open := make([]Panel, 0, len(c.panels))
	for _, panel := range ordered {
		if c.panels[panel] {
			open = append(open, panel)
		}
	}
	return open
}
