// Package preferences persists the UI preference blob, the server-side
// counterpart of the client's local storage.
package preferences

import (
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is an explicit configuration store: load on construction, save on
// every change, reset to hard-coded defaults, observable changes. No
// ambient singleton.
type Store interface {
	Get() domain.Preferences
	Merge(patch map[string]any) (domain.Preferences, error)
	Update(mutate func(*domain.Preferences)) (domain.Preferences, error)
	Reset() (domain.Preferences, error)
	Subscribe(fn func(domain.Preferences)) (unsubscribe func())
}

type fileStore struct {
	mu          sync.Mutex
	path        string
	prefs       domain.Preferences
	subscribers map[int]func(domain.Preferences)
	nextSubID   int
}

// NewFileStore loads the blob at path. An absent or corrupt file yields the
// defaults; that is the normal first-run path, not an error.
func NewFileStore(path string) Store {
	store := &fileStore{
		path:        path,
		prefs:       domain.DefaultPreferences(),
		subscribers: make(map[int]func(domain.Preferences)),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.L.WithError(err).Warn("preferences: unreadable file, using defaults")
		}
		return store
	}

	var saved map[string]any
	if err := json.Unmarshal(raw, &saved); err != nil {
		log.L.WithError(err).Warn("preferences: corrupt file, using defaults")
		return store
	}

	// Saved keys override defaults; keys the blob does not carry keep
	// their default values.
	if err := mapstructure.Decode(saved, &store.prefs); err != nil {
		log.L.WithError(err).Warn("preferences: undecodable file, using defaults")
		store.prefs = domain.DefaultPreferences()
	}

	return store
}

func (s *fileStore) Get() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *fileStore) Merge(patch map[string]any) (domain.Preferences, error) {
	s.mu.Lock()

	updated := s.prefs
	if err := mapstructure.Decode(patch, &updated); err != nil {
		s.mu.Unlock()
		return s.prefs, errors.Wrap(err, "decode preferences patch")
	}

	s.prefs = updated
	if err := s.saveLocked(); err != nil {
		s.mu.Unlock()
		return updated, err
	}

	subscribers := s.snapshotSubscribersLocked()
	s.mu.Unlock()

	notify(subscribers, updated)
	return updated, nil
}

func (s *fileStore) Update(mutate func(*domain.Preferences)) (domain.Preferences, error) {
	s.mu.Lock()

	mutate(&s.prefs)
	updated := s.prefs
	if err := s.saveLocked(); err != nil {
		s.mu.Unlock()
		return updated, err
	}

	subscribers := s.snapshotSubscribersLocked()
	s.mu.Unlock()

	notify(subscribers, updated)
	return updated, nil
}

func (s *fileStore) Reset() (domain.Preferences, error) {
	s.mu.Lock()

	s.prefs = domain.DefaultPreferences()
	updated := s.prefs
	if err := s.saveLocked(); err != nil {
		s.mu.Unlock()
		return updated, err
	}

	subscribers := s.snapshotSubscribersLocked()
	s.mu.Unlock()

	notify(subscribers, updated)
	return updated, nil
}

func (s *fileStore) Subscribe(fn func(domain.Preferences)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *fileStore) saveLocked() error {
	raw, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode preferences")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create preferences dir")
		}
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return errors.Wrap(err, "write preferences")
	}

	return nil
}

func (s *fileStore) snapshotSubscribersLocked() []func(domain.Preferences) {
	out := make([]func(domain.Preferences), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		out = append(out, fn)
	}
	return out
}

// notify runs outside the store lock so a subscriber can call back into
// the store.
func notify(subscribers []func(domain.Preferences), prefs domain.Preferences) {
	for _, fn := range subscribers {
		fn(prefs)
	}
}
