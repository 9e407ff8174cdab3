// Package suggesting produces the short search-suggestion list shown under
// the search box.
package suggesting

import (
	"strings"

	"github.com/samber/lo"

	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/domain"
)

const maxSuggestions = 5

type Suggester interface {
	Suggestions(query string) []string
}

type Service struct {
	repo repository.DealRepository
}

func NewService(repo repository.DealRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Suggestions(query string) []string {
	return Suggest(s.repo.List(), query)
}

// Suggest scans the collection in order and collects title, district and
// tag values containing the query (case-insensitive test, case-sensitive
// dedup), capped at five. A blank query returns nothing without scanning.
func Suggest(deals []domain.Deal, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var candidates []string
	for _, deal := range deals {
		if strings.Contains(strings.ToLower(deal.Title), q) {
			candidates = append(candidates, deal.Title)
		}
		if strings.Contains(strings.ToLower(deal.Location.District), q) {
			candidates = append(candidates, deal.Location.District)
		}
		for _, tag := range deal.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				candidates = append(candidates, tag)
			}
		}
	}

	suggestions := lo.Uniq(candidates)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return suggestions
}
