package notifying

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topraklif/deals-api/internal/domain"
)

func TestNotifyPrependsNewestFirst(t *testing.T) {
	service := NewService()

	service.Notify(domain.NotificationNewDeal, domain.Deal{ID: "1"})
	service.Notify(domain.NotificationPriceDrop, domain.Deal{ID: "2"})

	feed := service.List()
	require.Len(t, feed, 2)
	assert.Equal(t, "2", feed[0].Deal.ID)
	assert.Equal(t, "1", feed[1].Deal.ID)
}

func TestNotifyCapsFeedAtTen(t *testing.T) {
	service := NewService()

	for i := 0; i < 15; i++ {
		service.Notify(domain.NotificationNewDeal, domain.Deal{ID: fmt.Sprint(i)})
	}

	feed := service.List()
	require.Len(t, feed, maxFeedLength)
	// Oldest entries fell off the end.
	assert.Equal(t, "14", feed[0].Deal.ID)
	assert.Equal(t, "5", feed[len(feed)-1].Deal.ID)
}

func TestNotifyUsesInjectedClock(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	service := NewService().WithClock(func() time.Time { return now })

	notification := service.Notify(domain.NotificationExpiringSoon, domain.Deal{ID: "1"})

	assert.Equal(t, now, notification.Timestamp)
	assert.NotEmpty(t, notification.ID)
}

func TestMarkAsRead(t *testing.T) {
	service := NewService()
	notification := service.Notify(domain.NotificationNewDeal, domain.Deal{ID: "1"})

	require.Equal(t, 1, service.UnreadCount())

	err := service.MarkAsRead(notification.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, service.UnreadCount())
	assert.True(t, service.List()[0].IsRead)
}

func TestMarkAsReadUnknownID(t *testing.T) {
	service := NewService()

	err := service.MarkAsRead("missing")

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestClearAll(t *testing.T) {
	service := NewService()
	service.Notify(domain.NotificationNewDeal, domain.Deal{ID: "1"})
	service.Notify(domain.NotificationNewDeal, domain.Deal{ID: "2"})

	service.ClearAll()

	assert.Empty(t, service.List())
	assert.Equal(t, 0, service.UnreadCount())
}

func TestListReturnsCopy(t *testing.T) {
	service := NewService()
	service.Notify(domain.NotificationNewDeal, domain.Deal{ID: "1"})

	feed := service.List()
	feed[0].IsRead = true

	assert.False(t, service.List()[0].IsRead)
}
