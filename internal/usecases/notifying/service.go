// Package notifying keeps the bounded, newest-first notification feed.
package notifying

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"

	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/pkg/metrics"
)

// maxFeedLength caps the feed; entries beyond it are dropped oldest-first.
const maxFeedLength = 10

var ErrNotificationNotFound = errors.New("notification not found")

type Notifier interface {
	Notify(notificationType domain.NotificationType, deal domain.Deal) domain.Notification
	List() []domain.Notification
	UnreadCount() int
	MarkAsRead(notificationID string) error
	ClearAll()
}

type Service struct {
	mu    sync.Mutex
	items []domain.Notification
	now   func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Notify prepends a new entry and trims the feed to its cap. xid IDs are
// time-derived, so IDs sort with the feed.
func (s *Service) Notify(notificationType domain.NotificationType, deal domain.Deal) domain.Notification {
	notification := domain.Notification{
		ID:        xid.New().String(),
		Type:      notificationType,
		Deal:      deal,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.items = append([]domain.Notification{notification}, s.items...)
	if len(s.items) > maxFeedLength {
		s.items = s.items[:maxFeedLength]
	}
	s.mu.Unlock()

	metrics.FeedEventsTotal.WithLabelValues(string(notificationType)).Inc()

	return notification
}

// List returns the feed newest-first.
func (s *Service) List() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Service) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkAsRead flips the only mutable bit of a notification.
func (s *Service) MarkAsRead(notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == notificationID {
			s.items[i].IsRead = true
			return nil
		}
	}

	return errors.Wrapf(ErrNotificationNotFound, "id %q", notificationID)
}

func (s *Service) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}
