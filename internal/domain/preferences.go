package domain

// NotificationPreferences are the per-type feed toggles.
type NotificationPreferences struct {
	NewDeals     bool `json:"new_deals" mapstructure:"new_deals"`
	PriceDrops   bool `json:"price_drops" mapstructure:"price_drops"`
	ExpiringSoon bool `json:"expiring_soon" mapstructure:"expiring_soon"`
}

type PrivacyPreferences struct {
	ShareLocation bool `json:"share_location" mapstructure:"share_location"`
	Analytics     bool `json:"analytics" mapstructure:"analytics"`
}

// Preferences is the persisted UI preference blob. Unknown or missing keys
// fall back to DefaultPreferences on load.
type Preferences struct {
	DarkMode      bool                    `json:"dark_mode" mapstructure:"dark_mode"`
	CompactView   bool                    `json:"compact_view" mapstructure:"compact_view"`
	Language      string                  `json:"language" mapstructure:"language"`
	Notifications NotificationPreferences `json:"notifications" mapstructure:"notifications"`
	Privacy       PrivacyPreferences      `json:"privacy" mapstructure:"privacy"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:    false,
		CompactView: false,
		Language:    "en",
		Notifications: NotificationPreferences{
			NewDeals:     true,
			PriceDrops:   true,
			ExpiringSoon: true,
		},
		Privacy: PrivacyPreferences{
			ShareLocation: true,
			Analytics:     false,
		},
	}
}
