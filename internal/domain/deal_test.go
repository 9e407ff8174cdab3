package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeDiscountPercent(t *testing.T) {
	tests := []struct {
		name       string
		original   float64
		discounted float64
		want       int
	}{
		{name: "simple", original: 100, discounted: 70, want: 30},
		{name: "rounds to nearest", original: 15000000, discounted: 11500000, want: 23},
		{name: "zero original guards division", original: 0, discounted: 50, want: 0},
		{name: "negative original guards too", original: -10, discounted: 5, want: 0},
		{name: "no discount", original: 100, discounted: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDiscountPercent(tt.original, tt.discounted))
		})
	}
}

func TestTimeLeft(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	deal := Deal{ExpiresAt: now.Add(48 * time.Hour)}

	assert.Equal(t, 48*time.Hour, deal.TimeLeft(now))

	// Expired deals report negative time but stay in the collection.
	expired := Deal{ExpiresAt: now.Add(-time.Hour)}
	assert.Negative(t, expired.TimeLeft(now))
}

func TestIsKnownDistrict(t *testing.T) {
	assert.True(t, IsKnownDistrict("Chilanzar"))
	assert.True(t, IsKnownDistrict("Mirzo Ulugbek"))
	assert.False(t, IsKnownDistrict("chilanzar"))
	assert.False(t, IsKnownDistrict("Samarkand"))
}
