package viewstate

// PointerTarget describes where a pointer-down landed, as the set of
// container identifiers under the pointer. It replaces DOM traversal so
// dismissal is testable without a real pointer event system.
type PointerTarget struct {
	Containers []string
}

func (t PointerTarget) Within(containerID string) bool {
	for _, id := range t.Containers {
		if id == containerID {
			return true
		}
	}
	return false
}

// OverlayManager keeps the registry of overlays and the containers that
// count as "inside" each of them (the overlay itself plus its trigger
// button).
type OverlayManager struct {
	guards map[string][]string
}

func NewOverlayManager() *OverlayManager {
	return &OverlayManager{guards: make(map[string][]string)}
}

func (m *OverlayManager) Register(overlayID string, containerIDs ...string) {
	m.guards[overlayID] = containerIDs
}

// Outside reports whether the pointer target misses every container
// registered for the overlay. Unregistered overlays are never outside.
func (m *OverlayManager) Outside(overlayID string, target PointerTarget) bool {
	containers, ok := m.guards[overlayID]
	if !ok {
		return false
	}

	for _, id := range containers {
		if target.Within(id) {
			return false
		}
	}
	return true
}
