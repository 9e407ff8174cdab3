package viewstate

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/pkg/utils"
)

var ErrSessionNotFound = errors.New("view session not found")

// Service keys one Coordinator per rendering client session.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Coordinator
}

func NewService() *Service {
	return &Service{sessions: make(map[string]*Coordinator)}
}

func (s *Service) Create() (string, *Coordinator, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", nil, errors.Wrap(err, "generate session id")
	}

	coordinator := NewCoordinator()

	s.mu.Lock()
	s.sessions[id] = coordinator
	s.mu.Unlock()

	return id, coordinator, nil
}

func (s *Service) Get(sessionID string) (*Coordinator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coordinator, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "id %q", sessionID)
	}
	return coordinator, nil
}
