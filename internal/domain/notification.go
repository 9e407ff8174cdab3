package domain

import "time"

type NotificationType string

const (
	NotificationNewDeal      NotificationType = "new-deal"
	NotificationPriceDrop    NotificationType = "price-drop"
	NotificationExpiringSoon NotificationType = "expiring-soon"
)

// Notification is one entry of the bounded feed. Only IsRead is ever
// mutated after creation.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Deal      Deal             `json:"deal"`
	Timestamp time.Time        `json:"timestamp"`
	IsRead    bool             `json:"is_read"`
}
