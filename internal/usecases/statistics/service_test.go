package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/topraklif/deals-api/internal/domain"
)

func dealWithDiscount(id string, discount int, sourcedAt time.Time) domain.Deal {
	return domain.Deal{
		ID:                 id,
		DiscountPercentage: discount,
		Source:             domain.Source{Timestamp: sourcedAt},
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		deals []domain.Deal
		want  domain.DealStats
	}{
		{
			name:  "empty set is all zeros",
			deals: nil,
			want:  domain.DealStats{},
		},
		{
			name: "average rounds half up",
			deals: []domain.Deal{
				dealWithDiscount("1", 23, now.Add(-48*time.Hour)),
				dealWithDiscount("2", 16, now.Add(-48*time.Hour)),
			},
			want: domain.DealStats{Count: 2, AvgDiscountPercent: 20},
		},
		{
			name: "average rounds down below half",
			deals: []domain.Deal{
				dealWithDiscount("1", 30, now.Add(-48*time.Hour)),
				dealWithDiscount("2", 30, now.Add(-48*time.Hour)),
				dealWithDiscount("3", 22, now.Add(-48*time.Hour)),
			},
			want: domain.DealStats{Count: 3, AvgDiscountPercent: 27},
		},
		{
			name: "recent counts only the last 24 hours",
			deals: []domain.Deal{
				dealWithDiscount("1", 20, now.Add(-time.Hour)),
				dealWithDiscount("2", 20, now.Add(-23*time.Hour)),
				dealWithDiscount("3", 20, now.Add(-25*time.Hour)),
			},
			want: domain.DealStats{Count: 3, AvgDiscountPercent: 20, RecentCount: 2},
		},
		{
			name: "exactly 24 hours old is not recent",
			deals: []domain.Deal{
				dealWithDiscount("1", 10, now.Add(-24*time.Hour)),
			},
			want: domain.DealStats{Count: 1, AvgDiscountPercent: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService().WithClock(func() time.Time { return now })
			assert.Equal(t, tt.want, service.Summarize(tt.deals))
		})
	}
}
