// Package filtering implements the deal filter/sort pipeline, the core of
// the marketplace.
package filtering

import (
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/pkg/metrics"
)

const (
	memoTTL     = 5 * time.Minute
	memoCleanup = 10 * time.Minute
)

// Filterer serves filtered views of the deal collection.
type Filterer interface {
	Filtered(query string, criteria domain.FilterOptions) []domain.Deal
}

// Service memoizes Apply against the repository snapshot version, so
// repeated renders of an unchanged view cost one cache lookup.
type Service struct {
	repo repository.DealRepository
	memo *cache.Cache
}

func NewService(repo repository.DealRepository) *Service {
	return &Service{
		repo: repo,
		memo: cache.New(memoTTL, memoCleanup),
	}
}

func (s *Service) Filtered(query string, criteria domain.FilterOptions) []domain.Deal {
	key := memoKey(s.repo.Version(), query, criteria)
	if key == "" {
		metrics.FilterEvaluationsTotal.Inc()
		return Apply(s.repo.List(), query, criteria)
	}

	if cached, ok := s.memo.Get(key); ok {
		metrics.FilterCacheHitsTotal.Inc()
		deals := cached.([]domain.Deal)
		// Copy so callers cannot poison the cached slice.
		out := make([]domain.Deal, len(deals))
		copy(out, deals)
		return out
	}

	metrics.FilterEvaluationsTotal.Inc()
	filtered := Apply(s.repo.List(), query, criteria)
	s.memo.Set(key, filtered, cache.DefaultExpiration)

	out := make([]domain.Deal, len(filtered))
	copy(out, filtered)
	return out
}

// Apply narrows deals stage by stage and sorts the survivors. It never
// mutates its input and is deterministic for identical inputs. The stages
// run in this documented order: free-text query, category, price ceiling,
// discount floor, district, sort.
func Apply(deals []domain.Deal, query string, criteria domain.FilterOptions) []domain.Deal {
	filtered := make([]domain.Deal, len(deals))
	copy(filtered, deals)

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered = lo.Filter(filtered, func(deal domain.Deal, _ int) bool {
			return matchesQuery(deal, q)
		})
	}

	if criteria.Category != nil {
		filtered = lo.Filter(filtered, func(deal domain.Deal, _ int) bool {
			return deal.Category == *criteria.Category
		})
	}

	if criteria.MaxPrice != nil {
		filtered = lo.Filter(filtered, func(deal domain.Deal, _ int) bool {
			return deal.DiscountedPrice <= *criteria.MaxPrice
		})
	}

	if criteria.MinDiscount != nil {
		filtered = lo.Filter(filtered, func(deal domain.Deal, _ int) bool {
			return deal.DiscountPercentage >= *criteria.MinDiscount
		})
	}

	if criteria.District != nil {
		filtered = lo.Filter(filtered, func(deal domain.Deal, _ int) bool {
			return deal.Location.District == *criteria.District
		})
	}

	sortDeals(filtered, criteria.SortBy)

	return filtered
}

// matchesQuery is the free-text stage: the deal passes if any of title,
// description, tags or district contains the lowercased query.
func matchesQuery(deal domain.Deal, query string) bool {
	if strings.Contains(strings.ToLower(deal.Title), query) ||
		strings.Contains(strings.ToLower(deal.Description), query) ||
		strings.Contains(strings.ToLower(deal.Location.District), query) {
		return true
	}

	for _, tag := range deal.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// sortDeals orders the slice in place. All comparators are stable: equal
// keys keep their input order.
func sortDeals(deals []domain.Deal, sortBy domain.SortBy) {
	if sortBy == "" {
		sortBy = domain.SortByNewest
	}

	switch sortBy {
	case domain.SortByNewest:
		sort.SliceStable(deals, func(i, j int) bool {
			return deals[i].Source.Timestamp.After(deals[j].Source.Timestamp)
		})
	case domain.SortByDiscount:
		sort.SliceStable(deals, func(i, j int) bool {
			return deals[i].DiscountPercentage > deals[j].DiscountPercentage
		})
	case domain.SortByPrice:
		sort.SliceStable(deals, func(i, j int) bool {
			return deals[i].DiscountedPrice < deals[j].DiscountedPrice
		})
	case domain.SortByDistance:
		// No geospatial ranking yet: input order is preserved. Known
		// limitation, kept deliberately.
	default:
		// Unrecognized sort keys leave the order unchanged.
	}
}

var keyCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// memoKeyInput canonicalizes the pipeline inputs. Radius is excluded
// because no computation reads it, so it must not fragment the cache.
type memoKeyInput struct {
	Version     uint64           `json:"v"`
	Query       string           `json:"q"`
	Category    *domain.Category `json:"c"`
	MaxPrice    *float64         `json:"p"`
	MinDiscount *int             `json:"d"`
	District    *string          `json:"t"`
	SortBy      domain.SortBy    `json:"s"`
}

// memoKey JSON-encodes the canonical inputs so user-supplied strings can
// never collide with field boundaries.
func memoKey(version uint64, query string, criteria domain.FilterOptions) string {
	raw, err := keyCodec.Marshal(memoKeyInput{
		Version:     version,
		Query:       strings.ToLower(strings.TrimSpace(query)),
		Category:    criteria.Category,
		MaxPrice:    criteria.MaxPrice,
		MinDiscount: criteria.MinDiscount,
		District:    criteria.District,
		SortBy:      criteria.SortBy,
	})
	if err != nil {
		// Plain strings and numbers cannot fail to encode; treat it as
		// uncacheable if they somehow do.
		return ""
	}
	return string(raw)
}
