package repository

import (
	"time"

	"github.com/topraklif/deals-api/internal/domain"
)

// SeedDeals returns the six launch listings scraped from Tashkent
// social-media channels. They double as the test fixture.
func SeedDeals() []domain.Deal {
	return []domain.Deal{
		{
			ID:                 "1",
			Title:              "Samsung Galaxy S24 Ultra",
			Description:        "Brand new Samsung Galaxy S24 Ultra with 256GB storage. Original box, warranty included.",
			Category:           domain.CategoryProducts,
			OriginalPrice:      15000000,
			DiscountedPrice:    11500000,
			DiscountPercentage: 23,
			Location: domain.Location{
				Lat:      41.2995,
				Lng:      69.2401,
				Address:  "Amir Temur Square, Tashkent",
				District: "Yunusobod",
			},
			Source: domain.Source{
				Platform:  domain.PlatformTelegram,
				Username:  "@tech_deals_uz",
				PostURL:   "https://t.me/tech_deals_uz/1234",
				Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			},
			Image:      "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg?auto=compress&cs=tinysrgb&w=400",
			ExpiresAt:  time.Date(2024, 1, 20, 23, 59, 59, 0, time.UTC),
			IsVerified: true,
			Tags:       []string{"smartphone", "samsung", "electronics", "new"},
		},
		{
			ID:                 "2",
			Title:              "2-Room Apartment in Chilanzar",
			Description:        "Cozy 2-room apartment, 5th floor, fully furnished. Perfect for small family.",
			Category:           domain.CategoryRealEstate,
			OriginalPrice:      50000,
			DiscountedPrice:    42000,
			DiscountPercentage: 16,
			Location: domain.Location{
				Lat:      41.2755,
				Lng:      69.2037,
				Address:  "Chilanzar District, Tashkent",
				District: "Chilanzar",
			},
			Source: domain.Source{
				Platform:  domain.PlatformInstagram,
				Username:  "@tashkent_realty",
				PostURL:   "https://instagram.com/p/abc123",
				Timestamp: time.Date(2024, 1, 15, 14, 20, 0, 0, time.UTC),
			},
			Image:      "https://images.pexels.com/photos/106399/pexels-photo-106399.jpeg?auto=compress&cs=tinysrgb&w=400",
			ExpiresAt:  time.Date(2024, 1, 25, 23, 59, 59, 0, time.UTC),
			IsVerified: true,
			Tags:       []string{"apartment", "furnished", "chilanzar", "rent"},
		},
		{
			ID:                 "3",
			Title:              "Full-Stack Web Development Course",
			Description:        "Complete web development course with React, Node.js, and MongoDB. 6 months program.",
			Category:           domain.CategoryCourses,
			OriginalPrice:      3000000,
			DiscountedPrice:    2100000,
			DiscountPercentage: 30,
			Location: domain.Location{
				Lat:      41.3111,
				Lng:      69.2797,
				Address:  "Mirzo Ulugbek District, Tashkent",
				District: "Mirzo Ulugbek",
			},
			Source: domain.Source{
				Platform:  domain.PlatformFacebook,
				Username:  "CodeAcademyUz",
				PostURL:   "https://facebook.com/CodeAcademyUz/posts/123",
				Timestamp: time.Date(2024, 1, 15, 9, 15, 0, 0, time.UTC),
			},
			Image:      "https://images.pexels.com/photos/574071/pexels-photo-574071.jpeg?auto=compress&cs=tinysrgb&w=400",
			ExpiresAt:  time.Date(2024, 1, 18, 23, 59, 59, 0, time.UTC),
			IsVerified: true,
			Tags:       []string{"programming", "course", "web-development", "react"},
		},
		{
			ID:                 "4",
			Title:              "MacBook Pro M3 14\"",
			Description:        "MacBook Pro 14\" with M3 chip, 16GB RAM, 512GB SSD. Barely used, excellent condition.",
			Category:           domain.CategoryProducts,
			OriginalPrice:      25000000,
			DiscountedPrice:    19500000,
			DiscountPercentage: 22,
			Location: domain.Location{
				Lat:      41.2646,
				Lng:      69.2163,
				Address:  "Shaykhantahur District, Tashkent",
				District: "Shaykhantahur",
			},
			Source: domain.Source{
				Platform:  domain.PlatformTelegram,
				Username:  "@apple_store_uz",
				PostURL:   "https://t.me/apple_store_uz/5678",
				Timestamp: time.Date(2024, 1, 15, 16, 45, 0, 0, time.UTC),
			},
			Image:      "https://images.pexels.com/photos/18105/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=400",
			ExpiresAt:  time.Date(2024, 1, 19, 23, 59, 59, 0, time.UTC),
			IsVerified: true,
			Tags:       []string{"laptop", "apple", "macbook", "used"},
		},
		{
			ID:                 "5",
			Title:              "English Language Course",
			Description:        "IELTS preparation course with native speakers. Small groups, intensive program.",
			Category:           domain.CategoryCourses,
			OriginalPrice:      2500000,
			DiscountedPrice:    1750000,
			DiscountPercentage: 30,
			Location: domain.Location{
				Lat:      41.3195,
				Lng:      69.2519,
				Address:  "Yashnobod District, Tashkent",
				District: "Yashnobod",
			},
			Source: domain.Source{
				Platform:  domain.PlatformInstagram,
				Username:  "@english_center_uz",
				PostURL:   "https://instagram.com/p/def456",
				Timestamp: time.Date(2024, 1, 15, 11, 30, 0, 0, time.UTC),
			},
			Image:      "https://images.pexels.com/photos/159581/dictionary-reference-book-learning-meaning-159581.jpeg?auto=compress&cs=tinysrgb&w=400",
			ExpiresAt:  time.Date(2024, 1, 22, 23, 59, 59, 0, time.UTC),
			IsVerified: false,
			Tags:       []string{"english", "ielts", "language", "course"},
		},
		{
			ID:                 "6",
			Title:              "Studio Apartment in Sergeli",
			Description:        "Modern studio apartment, 25m², new building with parking. Great investment opportunity.",
			Category:           domain.CategoryRealEstate,
			OriginalPrice:      35000,
			DiscountedPrice:    28000,
			DiscountPercentage: 20,
			Location: domain.Location{
				Lat:      41.2031,
				Lng:      69.2228,
				Address:  "Sergeli District, Tashkent",
				District: "Sergeli",
			},
			Source: domain.Source{
				Platform:  domain.PlatformFacebook,
				Username:  "SergeligRealEstate",
				PostURL:   "https://facebook.com/SergeligRealEstate/posts/789",
				Timestamp: time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC),
			},
			Image:      "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=400",
			ExpiresAt:  time.Date(2024, 1, 30, 23, 59, 59, 0, time.UTC),
			IsVerified: true,
			Tags:       []string{"studio", "apartment", "new-building", "sergeli"},
		},
	}
}
