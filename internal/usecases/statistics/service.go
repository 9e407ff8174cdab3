// Package statistics derives summary counts from a filtered deal set.
package statistics

import (
	"math"
	"time"

	"github.com/topraklif/deals-api/internal/domain"
)

// recentWindow is how far back a deal's source timestamp may lie to count
// as recent.
const recentWindow = 24 * time.Hour

type Summarizer interface {
	Summarize(deals []domain.Deal) domain.DealStats
}

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// WithClock injects the evaluation instant; RecentCount is wall-clock
// relative, so tests pin it.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Summarize(deals []domain.Deal) domain.DealStats {
	stats := domain.DealStats{Count: len(deals)}
	if len(deals) == 0 {
		// Averaging an empty set is defined as 0, never NaN.
		return stats
	}

	now := s.now()
	total := 0
	for _, deal := range deals {
		total += deal.DiscountPercentage
		if now.Sub(deal.Source.Timestamp) < recentWindow {
			stats.RecentCount++
		}
	}

	stats.AvgDiscountPercent = int(math.Round(float64(total) / float64(len(deals))))

	return stats
}
