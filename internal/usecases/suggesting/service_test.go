package suggesting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/domain"
)

func TestSuggest(t *testing.T) {
	seed := repository.SeedDeals()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "blank query returns nothing",
			query: "   ",
			want:  nil,
		},
		{
			name:  "district match surfaces district and tag",
			query: "chilanzar",
			want:  []string{"2-Room Apartment in Chilanzar", "Chilanzar", "chilanzar"},
		},
		{
			name:  "title match",
			query: "macbook",
			want:  []string{"MacBook Pro M3 14\"", "macbook"},
		},
		{
			name:  "case-insensitive match keeps original casing",
			query: "SAMSUNG",
			want:  []string{"Samsung Galaxy S24 Ultra", "samsung"},
		},
		{
			name:  "no matches",
			query: "bicycle",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(seed, tt.query))
		})
	}
}

func TestSuggestCapsAtFive(t *testing.T) {
	deals := []domain.Deal{
		{Title: "deal one", Tags: []string{"deal-a", "deal-b"}},
		{Title: "deal two", Tags: []string{"deal-c", "deal-d"}},
		{Title: "deal three"},
	}

	got := Suggest(deals, "deal")

	assert.Len(t, got, 5)
	assert.Equal(t, []string{"deal one", "deal-a", "deal-b", "deal two", "deal-c"}, got)
}

func TestSuggestDedupIsCaseSensitive(t *testing.T) {
	deals := []domain.Deal{
		{Title: "Plov Master", Tags: []string{"plov"}},
		{Title: "plov master"},
	}

	got := Suggest(deals, "plov")

	// Different casings are distinct entries; exact repeats collapse.
	assert.Equal(t, []string{"Plov Master", "plov", "plov master"}, got)
}
