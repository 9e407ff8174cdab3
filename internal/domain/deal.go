package domain

import (
	"math"
	"time"
)

type Category string

const (
	CategoryProducts   Category = "products"
	CategoryRealEstate Category = "real-estate"
	CategoryCourses    Category = "courses"
)

type Platform string

const (
	PlatformTelegram  Platform = "telegram"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
)

type SortBy string

const (
	SortByNewest   SortBy = "newest"
	SortByDiscount SortBy = "discount"
	SortByPrice    SortBy = "price"
	SortByDistance SortBy = "distance"
)

// Location is the spatial part of a deal. District must come from
// TashkentDistricts for filter compatibility; the repository only warns
// on unknown values, it never rejects them.
type Location struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Address  string  `json:"address"`
	District string  `json:"district"`
}

// Source records where the deal was scraped from.
type Source struct {
	Platform  Platform  `json:"platform"`
	Username  string    `json:"username"`
	PostURL   string    `json:"post_url"`
	Timestamp time.Time `json:"timestamp"`
}

// Deal is a discounted listing. Immutable once loaded into the repository.
type Deal struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           Category  `json:"category"`
	OriginalPrice      float64   `json:"original_price"`
	DiscountedPrice    float64   `json:"discounted_price"`
	DiscountPercentage int       `json:"discount_percentage"`
	Location           Location  `json:"location"`
	Source             Source    `json:"source"`
	Image              string    `json:"image,omitempty"`
	ExpiresAt          time.Time `json:"expires_at"`
	IsVerified         bool      `json:"is_verified"`
	Tags               []string  `json:"tags"`
}

// TimeLeft reports how long until the deal expires. Negative means expired.
// Staleness is advisory only: expired deals stay in the collection.
func (d Deal) TimeLeft(now time.Time) time.Duration {
	return d.ExpiresAt.Sub(now)
}

// ComputeDiscountPercent derives the integer discount percentage a price
// pair implies.
func ComputeDiscountPercent(originalPrice, discountedPrice float64) int {
	if originalPrice <= 0 {
		return 0
	}
	return int(math.Round(100 * (1 - discountedPrice/originalPrice)))
}

// FilterOptions are the user-selected constraints narrowing the visible
// deal set. Nil fields are inactive. Radius is accepted for API
// compatibility but no computation uses it yet.
type FilterOptions struct {
	Category    *Category `json:"category,omitempty"`
	MaxPrice    *float64  `json:"max_price,omitempty"`
	MinDiscount *int      `json:"min_discount,omitempty"`
	District    *string   `json:"district,omitempty"`
	Radius      *float64  `json:"radius,omitempty"`
	SortBy      SortBy    `json:"sort_by,omitempty"`
}

// DealStats is the summary derived from a filtered deal set.
type DealStats struct {
	Count              int `json:"count"`
	AvgDiscountPercent int `json:"avg_discount_percent"`
	RecentCount        int `json:"recent_count"`
}

// TashkentDistricts is the enumerated district list used by filters and the
// submission form.
var TashkentDistricts = []string{
	"Bektemir",
	"Chilanzar",
	"Mirzo Ulugbek",
	"Mirobod",
	"Olmazor",
	"Sergeli",
	"Shaykhantahur",
	"Uchtepa",
	"Yashnobod",
	"Yunusobod",
	"Yakkasaray",
}

func IsKnownDistrict(district string) bool {
	for _, d := range TashkentDistricts {
		if d == district {
			return true
		}
	}
	return false
}
