package repository

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/pkg/log"
)

var (
	ErrDealNotFound  = errors.New("deal not found")
	ErrDuplicateDeal = errors.New("deal id already exists")
)

// DealRepository is the ordered deal collection. Static for the session
// apart from accepted submissions.
type DealRepository interface {
	List() []domain.Deal
	GetByID(dealID string) (*domain.Deal, error)
	Append(deal domain.Deal) error
	// Version increases on every mutation so derived computations can be
	// memoized against a snapshot of the collection.
	Version() uint64
}

type dealRepository struct {
	mu      sync.RWMutex
	deals   []domain.Deal
	byID    map[string]int
	version uint64
}

// NewDealRepository builds the in-memory collection from the seed. Seed
// records are trusted input: inconsistencies are logged, never corrected
// or rejected.
func NewDealRepository(seed []domain.Deal) DealRepository {
	repo := &dealRepository{
		deals:   make([]domain.Deal, 0, len(seed)),
		byID:    make(map[string]int, len(seed)),
		version: 1,
	}

	for _, deal := range seed {
		warnOnInconsistency(deal)
		repo.byID[deal.ID] = len(repo.deals)
		repo.deals = append(repo.deals, deal)
	}

	return repo
}

func (r *dealRepository) List() []domain.Deal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Deal, len(r.deals))
	copy(out, r.deals)
	return out
}

func (r *dealRepository) GetByID(dealID string) (*domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[dealID]
	if !ok {
		return nil, errors.Wrapf(ErrDealNotFound, "id %q", dealID)
	}

	deal := r.deals[idx]
	return &deal, nil
}

func (r *dealRepository) Append(deal domain.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[deal.ID]; ok {
		return errors.Wrapf(ErrDuplicateDeal, "id %q", deal.ID)
	}

	warnOnInconsistency(deal)
	r.byID[deal.ID] = len(r.deals)
	r.deals = append(r.deals, deal)
	r.version++

	return nil
}

func (r *dealRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// warnOnInconsistency surfaces trusted-input problems without touching the
// record: a discount percentage the price pair does not imply, or a
// district outside the enumerated list.
func warnOnInconsistency(deal domain.Deal) {
	if expected := domain.ComputeDiscountPercent(deal.OriginalPrice, deal.DiscountedPrice); expected != deal.DiscountPercentage {
		log.L.WithFields(log.Fields{
			"deal_id":  deal.ID,
			"declared": deal.DiscountPercentage,
			"derived":  expected,
		}).Warn("repository: discount percentage does not match price pair")
	}

	if !domain.IsKnownDistrict(deal.Location.District) {
		log.L.WithFields(log.Fields{
			"deal_id":  deal.ID,
			"district": deal.Location.District,
		}).Warn("repository: district not in the enumerated list")
	}
}
